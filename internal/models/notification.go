package models

import (
	"time"

	"github.com/google/uuid"
)

// UnknownUploader подставляется, когда загрузивший не назвал себя
const UnknownUploader = "Unknown User"

type Notification struct {
	ID         uuid.UUID `json:"id"`
	ImageRef   string    `json:"image_ref"`
	Location   GeoPoint  `json:"location"`
	Sector     string    `json:"sector"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsRead     bool      `json:"is_read"`
}

// NotificationStats - счётчики для панели провайдера
type NotificationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}
