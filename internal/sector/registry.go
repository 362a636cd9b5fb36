package sector

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSectorProperty   = "Sector"
	DefaultProviderProperty = "Provider"
)

// LoadOptions управляет разбором набора границ
type LoadOptions struct {
	// SectorProperty и ProviderProperty - имена свойств фичи
	SectorProperty   string
	ProviderProperty string
	// Permissive: некорректные фичи пропускаются с предупреждением,
	// иначе загрузка падает целиком
	Permissive bool
	Logger     *logrus.Logger
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.SectorProperty == "" {
		o.SectorProperty = DefaultSectorProperty
	}
	if o.ProviderProperty == "" {
		o.ProviderProperty = DefaultProviderProperty
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// Registry - неизменяемый после загрузки набор секторов в порядке загрузки
type Registry struct {
	sectors []indexedSector
	byName  map[string]int
}

type indexedSector struct {
	sector models.Sector
	// bounds[i] - рамка внешнего кольца i-го полигона
	bounds []orb.Bound
}

// rawCollection разбирает только оболочку документа, чтобы ошибка в одной
// фиче не ломала разбор остальных
type rawCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// LoadFile загружает реестр из GeoJSON-файла
func LoadFile(path string, opts LoadOptions) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open boundary file: %w", err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Load разбирает FeatureCollection и строит реестр секторов
func Load(r io.Reader, opts LoadOptions) (*Registry, error) {
	opts = opts.withDefaults()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read boundary dataset: %w", err)
	}

	var raw rawCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedBoundaryError{Feature: -1, Reason: err.Error()}
	}
	if raw.Type != "FeatureCollection" {
		return nil, &MalformedBoundaryError{Feature: -1, Reason: fmt.Sprintf("expected FeatureCollection, got %q", raw.Type)}
	}

	reg := &Registry{
		sectors: make([]indexedSector, 0, len(raw.Features)),
		byName:  make(map[string]int, len(raw.Features)),
	}

	for i, msg := range raw.Features {
		s, err := parseFeature(i, msg, opts)
		if err == nil {
			if _, dup := reg.byName[s.sector.Name]; dup {
				err = &MalformedBoundaryError{Feature: i, Sector: s.sector.Name, Reason: "duplicate sector name"}
			}
		}
		if err != nil {
			if !opts.Permissive {
				return nil, err
			}
			opts.Logger.WithError(err).WithField("feature", i).Warn("Skipping malformed boundary feature")
			continue
		}

		reg.byName[s.sector.Name] = len(reg.sectors)
		reg.sectors = append(reg.sectors, s)
	}

	opts.Logger.WithFields(logrus.Fields{
		"features": len(raw.Features),
		"sectors":  len(reg.sectors),
	}).Debug("Boundary dataset loaded")

	return reg, nil
}

func parseFeature(index int, msg json.RawMessage, opts LoadOptions) (indexedSector, error) {
	feature, err := geojson.UnmarshalFeature(msg)
	if err != nil {
		return indexedSector{}, &MalformedBoundaryError{Feature: index, Reason: err.Error()}
	}

	name, ok := feature.Properties[opts.SectorProperty].(string)
	if !ok || name == "" {
		return indexedSector{}, &MalformedBoundaryError{Feature: index, Reason: fmt.Sprintf("missing %q property", opts.SectorProperty)}
	}
	provider, ok := feature.Properties[opts.ProviderProperty].(string)
	if !ok || provider == "" {
		return indexedSector{}, &MalformedBoundaryError{Feature: index, Sector: name, Reason: fmt.Sprintf("missing %q property", opts.ProviderProperty)}
	}

	var boundary orb.MultiPolygon
	switch g := feature.Geometry.(type) {
	case nil:
		return indexedSector{}, &MalformedBoundaryError{Feature: index, Sector: name, Reason: "missing geometry"}
	case orb.Polygon:
		boundary = orb.MultiPolygon{g}
	case orb.MultiPolygon:
		boundary = g
	default:
		return indexedSector{}, &MalformedBoundaryError{Feature: index, Sector: name, Reason: fmt.Sprintf("unsupported geometry type %s", g.GeoJSONType())}
	}

	if len(boundary) == 0 {
		return indexedSector{}, &MalformedBoundaryError{Feature: index, Sector: name, Reason: "empty geometry"}
	}

	bounds := make([]orb.Bound, 0, len(boundary))
	for pi, poly := range boundary {
		if len(poly) == 0 {
			return indexedSector{}, &MalformedBoundaryError{Feature: index, Sector: name, Reason: fmt.Sprintf("polygon %d has no rings", pi)}
		}
		for ri, ring := range poly {
			if vertexCount(ring) < 3 {
				return indexedSector{}, &MalformedBoundaryError{Feature: index, Sector: name, Reason: fmt.Sprintf("polygon %d ring %d has fewer than 3 distinct vertices", pi, ri)}
			}
		}
		bounds = append(bounds, poly[0].Bound())
	}

	return indexedSector{
		sector: models.Sector{
			Name:       name,
			ProviderID: provider,
			Boundary:   boundary,
		},
		bounds: bounds,
	}, nil
}

// vertexCount считает различные вершины кольца
func vertexCount(ring orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// copySector отдаёт сектор с собственной копией полигонов
func (s indexedSector) copySector() models.Sector {
	out := s.sector
	out.Boundary = s.sector.Boundary.Clone()
	return out
}

// Sectors возвращает копии секторов в порядке загрузки
func (r *Registry) Sectors() []models.Sector {
	if r == nil {
		return nil
	}
	out := make([]models.Sector, len(r.sectors))
	for i, s := range r.sectors {
		out[i] = s.copySector()
	}
	return out
}

// Len возвращает число секторов
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.sectors)
}

// Lookup ищет сектор по имени
func (r *Registry) Lookup(name string) (models.Sector, bool) {
	if r == nil {
		return models.Sector{}, false
	}
	i, ok := r.byName[name]
	if !ok {
		return models.Sector{}, false
	}
	return r.sectors[i].copySector(), true
}
