package service

// MetricsRecorder - счётчики, которые сервисы публикуют наружу
type MetricsRecorder interface {
	DispatchOutcome(status string)
	PersistenceFailure(op string)
	StoreSize(n int)
}

type noopMetrics struct{}

func (noopMetrics) DispatchOutcome(string)    {}
func (noopMetrics) PersistenceFailure(string) {}
func (noopMetrics) StoreSize(int)             {}
