package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// snapshotWriter пишет снимки коллекции в фоне. Хранится только последний
// ожидающий снимок: каждая запись несёт полное актуальное состояние, поэтому
// промежуточные можно пропускать.
type snapshotWriter struct {
	repo    SnapshotRepository
	logger  *logrus.Logger
	metrics MetricsRecorder
	key     string
	timeout time.Duration

	mu      sync.Mutex
	pending []byte

	// writeMu упорядочивает сами записи
	writeMu sync.Mutex
	wake    chan struct{}
}

func newSnapshotWriter(repo SnapshotRepository, logger *logrus.Logger, metrics MetricsRecorder, key string, timeout time.Duration) *snapshotWriter {
	return &snapshotWriter{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		key:     key,
		timeout: timeout,
		wake:    make(chan struct{}, 1),
	}
}

// schedule заменяет ожидающий снимок и будит воркер
func (w *snapshotWriter) schedule(blob []byte) {
	w.mu.Lock()
	w.pending = blob
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// start запускает горутину записи; при отмене ctx дописывает последний снимок
func (w *snapshotWriter) start(ctx context.Context) {
	w.logger.Info("Starting notification snapshot writer...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := w.flush(context.Background()); err != nil {
					w.logger.WithError(err).Error("Failed to write final notification snapshot")
				}
				w.logger.Info("Stopping notification snapshot writer.")
				return
			case <-w.wake:
				// ошибка уже залогирована в flush
				_ = w.flush(ctx)
			}
		}
	}()
}

// flush синхронно записывает ожидающий снимок, если он есть
func (w *snapshotWriter) flush(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	blob := w.pending
	w.pending = nil
	w.mu.Unlock()

	if blob == nil {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.repo.Set(writeCtx, w.key, blob); err != nil {
		w.logger.WithError(err).WithField("key", w.key).Error("Failed to persist notifications snapshot")
		w.metrics.PersistenceFailure("write")

		// повторим при следующей записи, если новее снимка ещё нет
		w.mu.Lock()
		if w.pending == nil {
			w.pending = blob
		}
		w.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}

	w.logger.WithFields(logrus.Fields{"key": w.key, "bytes": len(blob)}).Debug("Notifications snapshot persisted")
	return nil
}
