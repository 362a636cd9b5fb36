package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
)

// snapshotRecord - формат записи в сохранённом снимке.
// Время хранится строкой ISO-8601.
type snapshotRecord struct {
	ID         string          `json:"id"`
	ImageURL   string          `json:"imageUrl"`
	Location   models.GeoPoint `json:"location"`
	Sector     string          `json:"sector"`
	UploadedBy string          `json:"uploadedBy"`
	UploadedAt string          `json:"uploadedAt"`
	IsRead     bool            `json:"isRead"`
}

// encodeSnapshot сериализует коллекцию целиком, порядок сохраняется
func encodeSnapshot(notifications []models.Notification) ([]byte, error) {
	records := make([]snapshotRecord, len(notifications))
	for i, n := range notifications {
		records[i] = snapshotRecord{
			ID:         n.ID.String(),
			ImageURL:   n.ImageRef,
			Location:   n.Location,
			Sector:     n.Sector,
			UploadedBy: n.UploadedBy,
			UploadedAt: n.UploadedAt.UTC().Format(time.RFC3339Nano),
			IsRead:     n.IsRead,
		}
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notifications snapshot: %w", err)
	}
	return blob, nil
}

func decodeSnapshot(blob []byte) ([]models.Notification, error) {
	var records []snapshotRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications snapshot: %w", err)
	}

	notifications := make([]models.Notification, len(records))
	for i, r := range records {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot record %d: invalid id %q: %w", i, r.ID, err)
		}
		uploadedAt, err := time.Parse(time.RFC3339Nano, r.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("snapshot record %d: invalid uploadedAt %q: %w", i, r.UploadedAt, err)
		}
		notifications[i] = models.Notification{
			ID:         id,
			ImageRef:   r.ImageURL,
			Location:   r.Location,
			Sector:     r.Sector,
			UploadedBy: r.UploadedBy,
			UploadedAt: uploadedAt,
			IsRead:     r.IsRead,
		}
	}
	return notifications, nil
}
