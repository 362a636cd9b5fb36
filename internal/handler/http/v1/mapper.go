package v1

import "github.com/shenikar/geo_sector_dispatch/internal/models"

// DTOToDispatchModel преобразует DTO загрузки в доменный запрос,
// подставляя точку по умолчанию, если координаты не переданы
func DTOToDispatchModel(dto DispatchRequest, fallback models.GeoPoint) models.DispatchRequest {
	location := fallback
	if dto.Latitude != nil && dto.Longitude != nil {
		location = models.GeoPoint{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return models.DispatchRequest{
		Location:   location,
		ImageRef:   dto.ImageRef,
		UploadedBy: dto.UploadedBy,
	}
}

// ModelToNotificationResponse преобразует доменную модель в DTO для ответа
func ModelToNotificationResponse(model models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         model.ID,
		ImageRef:   model.ImageRef,
		Latitude:   model.Location.Latitude,
		Longitude:  model.Location.Longitude,
		Sector:     model.Sector,
		UploadedBy: model.UploadedBy,
		UploadedAt: model.UploadedAt,
		IsRead:     model.IsRead,
	}
}

// ModelsToNotificationResponses преобразует слайс моделей в слайс DTO
func ModelsToNotificationResponses(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ModelToNotificationResponse(n)
	}
	return responses
}

func ModelToDispatchResponse(result models.DispatchResult) DispatchResponse {
	resp := DispatchResponse{
		Status:     string(result.Status),
		Sector:     result.Sector,
		ProviderID: result.ProviderID,
	}
	if result.Notification != nil {
		n := ModelToNotificationResponse(*result.Notification)
		resp.Notification = &n
	}
	return resp
}

func ModelToSectorResponse(s models.Sector) SectorResponse {
	return SectorResponse{
		Name:       s.Name,
		ProviderID: s.ProviderID,
		Polygons:   len(s.Boundary),
	}
}

func ModelsToSectorResponses(sectors []models.Sector) []SectorResponse {
	responses := make([]SectorResponse, len(sectors))
	for i, s := range sectors {
		responses[i] = ModelToSectorResponse(s)
	}
	return responses
}
