package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_sector_dispatch/internal/config"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks

// SnapshotRepository определяет контракт хранилища снимков: один блоб на ключ
type SnapshotRepository interface {
	// Get возвращает ErrSnapshotNotFound, если по ключу ничего не сохранено
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, blob []byte) error
}

// NotificationService определяет контракт чтения уведомлений для панели провайдера
type NotificationService interface {
	All() []models.Notification
	ForSector(sector string) []models.Notification
	Stats(sector string) models.NotificationStats
	MarkAsRead(id uuid.UUID)
	Reload(ctx context.Context)
}

// NotificationStore - упорядоченная коллекция уведомлений процесса.
// Состояние в памяти авторитетно, снимок в репозитории нужен для холодного старта.
type NotificationStore struct {
	repo    SnapshotRepository
	logger  *logrus.Logger
	metrics MetricsRecorder
	writer  *snapshotWriter
	key     string
	timeout time.Duration

	now   func() time.Time
	newID func() (uuid.UUID, error)

	mu sync.RWMutex
	// records хранятся от старых к новым, наружу отдаются в обратном порядке
	records   []models.Notification
	byID      map[uuid.UUID]int
	lastStamp time.Time
}

var _ NotificationService = (*NotificationStore)(nil)

func NewNotificationStore(repo SnapshotRepository, logger *logrus.Logger, cfg *config.Config, metrics MetricsRecorder) *NotificationStore {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	timeout := cfg.PersistTimeout
	if timeout <= 0 {
		timeout = config.DefaultPersistTimeout
	}
	key := cfg.SnapshotKey
	if key == "" {
		key = config.DefaultSnapshotKey
	}

	return &NotificationStore{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		writer:  newSnapshotWriter(repo, logger, metrics, key, timeout),
		key:     key,
		timeout: timeout,
		now:     time.Now,
		newID:   uuid.NewV7,
		byID:    make(map[uuid.UUID]int),
	}
}

// Start запускает фоновую запись снимков
func (s *NotificationStore) Start(ctx context.Context) {
	s.writer.start(ctx)
}

// Flush синхронно записывает последний ожидающий снимок
func (s *NotificationStore) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// Create добавляет новое уведомление в начало коллекции и планирует запись снимка
func (s *NotificationStore) Create(sector string, location models.GeoPoint, imageRef, uploadedBy string) models.Notification {
	id, err := s.newID()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to generate time-ordered id, falling back to random")
		id = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uploadedAt := s.now()
	if uploadedAt.Before(s.lastStamp) {
		uploadedAt = s.lastStamp
	}
	s.lastStamp = uploadedAt

	n := models.Notification{
		ID:         id,
		ImageRef:   imageRef,
		Location:   location,
		Sector:     sector,
		UploadedBy: uploadedBy,
		UploadedAt: uploadedAt,
		IsRead:     false,
	}
	s.byID[id] = len(s.records)
	s.records = append(s.records, n)
	s.metrics.StoreSize(len(s.records))

	s.scheduleLocked()

	s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "Create",
		"notification_id": id,
		"sector":          sector,
	}).Info("Notification created")
	return n
}

// MarkAsRead отмечает уведомление прочитанным. Неизвестный id игнорируется.
func (s *NotificationStore) MarkAsRead(id uuid.UUID) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkAsRead",
		"notification_id": id,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		log.Debug("Unknown notification id, nothing to mark")
		return
	}
	if s.records[i].IsRead {
		return
	}

	s.records[i].IsRead = true
	s.scheduleLocked()
	log.Info("Notification marked as read")
}

// All возвращает копию всей коллекции, новые первыми
func (s *NotificationStore) All() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestFirstLocked(func(models.Notification) bool { return true })
}

// ForSector возвращает уведомления сектора, новые первыми
func (s *NotificationStore) ForSector(sector string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestFirstLocked(func(n models.Notification) bool { return n.Sector == sector })
}

// Stats считает уведомления сектора; пустой сектор - вся коллекция
func (s *NotificationStore) Stats(sector string) models.NotificationStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.NotificationStats
	for _, n := range s.records {
		if sector != "" && n.Sector != sector {
			continue
		}
		stats.Total++
		if !n.IsRead {
			stats.Unread++
		}
	}
	return stats
}

// Reload заменяет коллекцию сохранённым снимком. Перед чтением дописывается
// ожидающий снимок; если это не удалось, состояние в памяти не трогается.
// Ошибки чтения не возвращаются: коллекция остаётся как есть.
// Всё это время держится блокировка записи, поэтому Create, All и ForSector
// ждут до двух PERSIST_TIMEOUT (дозапись и чтение).
func (s *NotificationStore) Reload(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Reload",
		"key":     s.key,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writer.flush(ctx); err != nil {
		log.WithError(err).Warn("Pending snapshot not persisted, keeping in-memory notifications")
		return
	}

	readCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	blob, err := s.repo.Get(readCtx, s.key)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			log.Info("No persisted notifications snapshot, starting empty")
			s.replaceLocked(nil)
			return
		}
		s.metrics.PersistenceFailure("read")
		log.WithError(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).Warn("Failed to read notifications snapshot")
		return
	}

	notifications, err := decodeSnapshot(blob)
	if err != nil {
		s.metrics.PersistenceFailure("read")
		log.WithError(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).Warn("Failed to decode notifications snapshot")
		return
	}

	// в снимке новые первыми
	oldestFirst := make([]models.Notification, len(notifications))
	for i, n := range notifications {
		oldestFirst[len(notifications)-1-i] = n
	}
	s.replaceLocked(oldestFirst)

	log.WithField("count", len(oldestFirst)).Info("Notifications reloaded")
}

func (s *NotificationStore) replaceLocked(oldestFirst []models.Notification) {
	s.records = oldestFirst
	s.byID = make(map[uuid.UUID]int, len(oldestFirst))
	for i, n := range oldestFirst {
		s.byID[n.ID] = i
		if n.UploadedAt.After(s.lastStamp) {
			s.lastStamp = n.UploadedAt
		}
	}
	s.metrics.StoreSize(len(oldestFirst))
}

func (s *NotificationStore) newestFirstLocked(keep func(models.Notification) bool) []models.Notification {
	out := make([]models.Notification, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		if keep(s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out
}

// scheduleLocked ставит в очередь снимок текущего состояния; вызывается под s.mu
func (s *NotificationStore) scheduleLocked() {
	blob, err := encodeSnapshot(s.newestFirstLocked(func(models.Notification) bool { return true }))
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode notifications snapshot")
		s.metrics.PersistenceFailure("encode")
		return
	}
	s.writer.schedule(blob)
}
