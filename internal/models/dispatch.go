package models

// DispatchStatus - исход обработки одной загрузки
type DispatchStatus string

const (
	DispatchNotified  DispatchStatus = "notified"
	DispatchUncovered DispatchStatus = "uncovered"
)

// DispatchResult - результат диспетчеризации. Sector, ProviderID и Notification
// заполнены только при статусе DispatchNotified.
type DispatchResult struct {
	Status       DispatchStatus `json:"status"`
	Sector       string         `json:"sector,omitempty"`
	ProviderID   string         `json:"provider_id,omitempty"`
	Notification *Notification  `json:"notification,omitempty"`
}

// Notified сообщает, была ли создана запись
func (r DispatchResult) Notified() bool {
	return r.Status == DispatchNotified
}

// DispatchRequest - данные одной загрузки от клиента
type DispatchRequest struct {
	Location   GeoPoint
	ImageRef   string
	UploadedBy string
}
