package v1

import (
	"time"

	"github.com/google/uuid"
)

// DispatchRequest DTO для загрузки изображения с геометкой
// @Description DTO для загрузки изображения с геометкой. Без координат используется точка по умолчанию.
type DispatchRequest struct {
	ImageRef   string   `json:"image_ref" validate:"required,max=2048"`
	UploadedBy string   `json:"uploaded_by,omitempty" validate:"max=255"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"required_with=Longitude"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"required_with=Latitude"`
}

// DispatchResponse DTO для ответа на загрузку
// @Description DTO для ответа на загрузку
type DispatchResponse struct {
	Status       string                `json:"status"`
	Sector       string                `json:"sector,omitempty"`
	ProviderID   string                `json:"provider_id,omitempty"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID         uuid.UUID `json:"id"`
	ImageRef   string    `json:"image_ref"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Sector     string    `json:"sector"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsRead     bool      `json:"is_read"`
}

// SectorResponse DTO для ответа с сектором
// @Description DTO для ответа с сектором
type SectorResponse struct {
	Name       string `json:"name"`
	ProviderID string `json:"provider_id"`
	Polygons   int    `json:"polygons"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Sector string `json:"sector,omitempty"`
	Total  int    `json:"total"`
	Unread int    `json:"unread"`
}

// ReloadResponse DTO для ответа на перезагрузку
// @Description DTO для ответа на перезагрузку
type ReloadResponse struct {
	Count int `json:"count"`
}
