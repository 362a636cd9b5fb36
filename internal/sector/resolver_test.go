package sector

import (
	"strings"
	"sync"
	"testing"

	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, features ...string) *Registry {
	t.Helper()
	opts, _ := quietOptions()
	reg, err := Load(strings.NewReader(collection(features...)), opts)
	require.NoError(t, err)
	return reg
}

func TestResolve_SquareScenario(t *testing.T) {
	reg := mustLoad(t, squareFeature)

	s, ok := Resolve(models.GeoPoint{Latitude: 5, Longitude: 5}, reg)
	require.True(t, ok)
	assert.Equal(t, "North", s.Name)
	assert.Equal(t, "NP", s.ProviderID)

	_, ok = Resolve(models.GeoPoint{Latitude: 50, Longitude: 50}, reg)
	assert.False(t, ok)
}

func TestResolve_FarOutside(t *testing.T) {
	reg := mustLoad(t, squareFeature)

	for _, p := range []models.GeoPoint{
		{Latitude: -80, Longitude: -170},
		{Latitude: 89, Longitude: 179},
		{Latitude: 5, Longitude: -5},
		{Latitude: -5, Longitude: 5},
	} {
		_, ok := reg.Resolve(p)
		assert.False(t, ok, "point %+v", p)
	}
}

func TestResolve_EdgesAreHalfOpen(t *testing.T) {
	reg := mustLoad(t, squareFeature)

	tests := []struct {
		name   string
		point  models.GeoPoint
		inside bool
	}{
		{"west edge", models.GeoPoint{Latitude: 5, Longitude: 0}, true},
		{"south edge", models.GeoPoint{Latitude: 0, Longitude: 5}, true},
		{"east edge", models.GeoPoint{Latitude: 5, Longitude: 10}, false},
		{"north edge", models.GeoPoint{Latitude: 10, Longitude: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := reg.Resolve(tt.point)
			assert.Equal(t, tt.inside, ok)
		})
	}
}

func TestResolve_OverlapUsesLoadOrder(t *testing.T) {
	first := `{
		"type": "Feature",
		"properties": {"Sector": "West", "Provider": "WP"},
		"geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,10],[6,10],[6,0]]]}
	}`
	second := `{
		"type": "Feature",
		"properties": {"Sector": "East", "Provider": "EP"},
		"geometry": {"type": "Polygon", "coordinates": [[[4,0],[4,10],[10,10],[10,0]]]}
	}`
	overlap := models.GeoPoint{Latitude: 5, Longitude: 5}

	reg := mustLoad(t, first, second)
	for i := 0; i < 10; i++ {
		s, ok := reg.Resolve(overlap)
		require.True(t, ok)
		assert.Equal(t, "West", s.Name)
	}

	reversed := mustLoad(t, second, first)
	s, ok := reversed.Resolve(overlap)
	require.True(t, ok)
	assert.Equal(t, "East", s.Name)
}

func TestResolve_MultiPolygonAnyPart(t *testing.T) {
	multi := `{
		"type": "Feature",
		"properties": {"Sector": "Islands", "Provider": "IP"},
		"geometry": {"type": "MultiPolygon", "coordinates": [
			[[[20,20],[20,21],[21,21],[21,20]]],
			[[[30,30],[30,31],[31,31],[31,30]]]
		]}
	}`
	reg := mustLoad(t, multi)

	s, ok := reg.Resolve(models.GeoPoint{Latitude: 30.5, Longitude: 30.5})
	require.True(t, ok)
	assert.Equal(t, "Islands", s.Name)

	_, ok = reg.Resolve(models.GeoPoint{Latitude: 25, Longitude: 25})
	assert.False(t, ok)
}

func TestResolve_HolesAreIgnored(t *testing.T) {
	donut := `{
		"type": "Feature",
		"properties": {"Sector": "Donut", "Provider": "DP"},
		"geometry": {"type": "Polygon", "coordinates": [
			[[0,0],[0,10],[10,10],[10,0],[0,0]],
			[[4,4],[4,6],[6,6],[6,4],[4,4]]
		]}
	}`
	reg := mustLoad(t, donut)

	s, ok := reg.Resolve(models.GeoPoint{Latitude: 5, Longitude: 5})
	require.True(t, ok)
	assert.Equal(t, "Donut", s.Name)
}

func TestResolve_ConcavePolygon(t *testing.T) {
	// буква U: провал между x=3..7 выше y=3
	u := `{
		"type": "Feature",
		"properties": {"Sector": "U", "Provider": "UP"},
		"geometry": {"type": "Polygon", "coordinates": [[[0,0],[10,0],[10,10],[7,10],[7,3],[3,3],[3,10],[0,10]]]}
	}`
	reg := mustLoad(t, u)

	_, ok := reg.Resolve(models.GeoPoint{Latitude: 8, Longitude: 5})
	assert.False(t, ok)
	_, ok = reg.Resolve(models.GeoPoint{Latitude: 8, Longitude: 1})
	assert.True(t, ok)
	_, ok = reg.Resolve(models.GeoPoint{Latitude: 1, Longitude: 5})
	assert.True(t, ok)
}

func TestResolve_NilRegistry(t *testing.T) {
	_, ok := Resolve(models.GeoPoint{Latitude: 5, Longitude: 5}, nil)
	assert.False(t, ok)
}

func TestResolve_Concurrent(t *testing.T) {
	reg := mustLoad(t, squareFeature)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s, ok := reg.Resolve(models.GeoPoint{Latitude: 5, Longitude: 5})
				if !ok || s.Name != "North" {
					t.Errorf("unexpected resolution: %v %v", s.Name, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
