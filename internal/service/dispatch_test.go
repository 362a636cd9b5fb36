package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/shenikar/geo_sector_dispatch/internal/sector"
	"github.com/shenikar/geo_sector_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) DispatchOutcome(status string) { m.outcomes = append(m.outcomes, status) }
func (m *recordingMetrics) PersistenceFailure(string)     {}
func (m *recordingMetrics) StoreSize(int)                 {}

func newTestDispatchService(t *testing.T) (DispatchService, *mocks.MockSectorResolver, *mocks.MockNotificationRecorder, *recordingMetrics) {
	ctrl := gomock.NewController(t)
	resolverMock := mocks.NewMockSectorResolver(ctrl)
	recorderMock := mocks.NewMockNotificationRecorder(ctrl)
	metrics := &recordingMetrics{}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewDispatchService(resolverMock, recorderMock, logger, metrics), resolverMock, recorderMock, metrics
}

var northSector = models.Sector{Name: "North", ProviderID: "NP"}

func TestDispatch_Notified(t *testing.T) {
	svc, resolverMock, recorderMock, metrics := newTestDispatchService(t)
	point := models.GeoPoint{Latitude: 5, Longitude: 5}
	created := models.Notification{ID: uuid.New(), Sector: "North", Location: point, ImageRef: "img://1", UploadedBy: "Alice"}

	resolverMock.EXPECT().Resolve(point).Return(northSector, true).Times(1)
	recorderMock.EXPECT().Create("North", point, "img://1", "Alice").Return(created).Times(1)

	result, err := svc.Dispatch(context.Background(), models.DispatchRequest{
		Location:   point,
		ImageRef:   "img://1",
		UploadedBy: "  Alice ",
	})

	require.NoError(t, err)
	assert.True(t, result.Notified())
	assert.Equal(t, "North", result.Sector)
	assert.Equal(t, "NP", result.ProviderID)
	require.NotNil(t, result.Notification)
	assert.Equal(t, created, *result.Notification)
	assert.Equal(t, []string{"notified"}, metrics.outcomes)
}

func TestDispatch_UnknownUploader(t *testing.T) {
	svc, resolverMock, recorderMock, _ := newTestDispatchService(t)
	point := models.GeoPoint{Latitude: 5, Longitude: 5}

	resolverMock.EXPECT().Resolve(point).Return(northSector, true)
	recorderMock.EXPECT().
		Create("North", point, "img://1", models.UnknownUploader).
		Return(models.Notification{ID: uuid.New(), UploadedBy: models.UnknownUploader})

	result, err := svc.Dispatch(context.Background(), models.DispatchRequest{Location: point, ImageRef: "img://1", UploadedBy: "   "})

	require.NoError(t, err)
	assert.Equal(t, "Unknown User", result.Notification.UploadedBy)
}

func TestDispatch_Uncovered(t *testing.T) {
	svc, resolverMock, recorderMock, metrics := newTestDispatchService(t)
	point := models.GeoPoint{Latitude: 50, Longitude: 50}

	resolverMock.EXPECT().Resolve(point).Return(models.Sector{}, false)
	recorderMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.Dispatch(context.Background(), models.DispatchRequest{Location: point, ImageRef: "img://1", UploadedBy: "Bob"})

	require.NoError(t, err)
	assert.Equal(t, models.DispatchUncovered, result.Status)
	assert.False(t, result.Notified())
	assert.Nil(t, result.Notification)
	assert.Equal(t, []string{"uncovered"}, metrics.outcomes)
}

func TestDispatch_InvalidLocation(t *testing.T) {
	tests := []struct {
		name  string
		point models.GeoPoint
	}{
		{"latitude too high", models.GeoPoint{Latitude: 91, Longitude: 0}},
		{"latitude too low", models.GeoPoint{Latitude: -90.5, Longitude: 0}},
		{"longitude too high", models.GeoPoint{Latitude: 0, Longitude: 180.1}},
		{"longitude too low", models.GeoPoint{Latitude: 0, Longitude: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, resolverMock, recorderMock, metrics := newTestDispatchService(t)

			resolverMock.EXPECT().Resolve(gomock.Any()).Times(0)
			recorderMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Dispatch(context.Background(), models.DispatchRequest{Location: tt.point, ImageRef: "img://1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLocation)
			assert.Equal(t, []string{"invalid"}, metrics.outcomes)
		})
	}
}

const northDataset = `{"type": "FeatureCollection", "features": [{
	"type": "Feature",
	"properties": {"Sector": "North", "Provider": "NP"},
	"geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,10],[10,10],[10,0],[0,0]]]}
}]}`

func TestDispatch_EndToEnd(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	registry, err := sector.Load(strings.NewReader(northDataset), sector.LoadOptions{Logger: logger})
	require.NoError(t, err)

	store, repoMock := newTestNotificationStore(t)
	repoMock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := NewDispatchService(registry, store, logger, nil)
	ctx := context.Background()

	result, err := svc.Dispatch(ctx, models.DispatchRequest{
		Location:   models.GeoPoint{Latitude: 5, Longitude: 5},
		ImageRef:   "https://cdn.example.com/a.jpg",
		UploadedBy: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DispatchNotified, result.Status)
	assert.Equal(t, "North", result.Sector)
	assert.Equal(t, "NP", result.ProviderID)

	north := store.ForSector("North")
	require.Len(t, north, 1)
	assert.Equal(t, "Alice", north[0].UploadedBy)
	assert.False(t, north[0].IsRead)
	assert.Equal(t, result.Notification.ID, north[0].ID)

	result, err = svc.Dispatch(ctx, models.DispatchRequest{
		Location: models.GeoPoint{Latitude: 50, Longitude: 50},
		ImageRef: "https://cdn.example.com/b.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DispatchUncovered, result.Status)
	assert.Len(t, store.All(), 1)

	require.NoError(t, store.Flush(ctx))
}
