package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/mock_dispatch.go -package=mocks

// SectorResolver находит сектор, которому принадлежит точка
type SectorResolver interface {
	Resolve(point models.GeoPoint) (models.Sector, bool)
}

// SectorCatalog - реестр секторов целиком, как его видит HTTP-слой
type SectorCatalog interface {
	SectorResolver
	Sectors() []models.Sector
}

// NotificationRecorder - единственный путь записи уведомлений
type NotificationRecorder interface {
	Create(sector string, location models.GeoPoint, imageRef, uploadedBy string) models.Notification
}

// DispatchService определяет контракт маршрутизации загрузок
type DispatchService interface {
	Dispatch(ctx context.Context, req models.DispatchRequest) (models.DispatchResult, error)
}

type dispatchService struct {
	resolver SectorResolver
	recorder NotificationRecorder
	logger   *logrus.Logger
	metrics  MetricsRecorder
}

func NewDispatchService(resolver SectorResolver, recorder NotificationRecorder, logger *logrus.Logger, metrics MetricsRecorder) DispatchService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &dispatchService{
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
		metrics:  metrics,
	}
}

// Dispatch определяет сектор точки загрузки и, если он найден, создаёт ровно
// одно уведомление. Для непокрытой точки ничего не записывается.
func (s *dispatchService) Dispatch(ctx context.Context, req models.DispatchRequest) (models.DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "Dispatch",
		"latitude":  req.Location.Latitude,
		"longitude": req.Location.Longitude,
	})

	if !req.Location.Valid() {
		log.Warn("Rejected dispatch with out-of-range coordinates")
		s.metrics.DispatchOutcome("invalid")
		return models.DispatchResult{}, fmt.Errorf("service: %w: latitude=%v longitude=%v",
			ErrInvalidLocation, req.Location.Latitude, req.Location.Longitude)
	}

	sector, ok := s.resolver.Resolve(req.Location)
	if !ok {
		log.Info("Location is not covered by any sector")
		s.metrics.DispatchOutcome(string(models.DispatchUncovered))
		return models.DispatchResult{Status: models.DispatchUncovered}, nil
	}

	uploadedBy := strings.TrimSpace(req.UploadedBy)
	if uploadedBy == "" {
		uploadedBy = models.UnknownUploader
	}

	n := s.recorder.Create(sector.Name, req.Location, req.ImageRef, uploadedBy)
	s.metrics.DispatchOutcome(string(models.DispatchNotified))

	log.WithFields(logrus.Fields{
		"sector":          sector.Name,
		"provider_id":     sector.ProviderID,
		"notification_id": n.ID,
	}).Info("Provider notified")

	return models.DispatchResult{
		Status:       models.DispatchNotified,
		Sector:       sector.Name,
		ProviderID:   sector.ProviderID,
		Notification: &n,
	}, nil
}
