package sector

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
)

// Resolve возвращает первый в порядке загрузки сектор, содержащий точку.
//
// Принадлежность определяется чётностью пересечений луча только с внешним
// кольцом каждого полигона: дырки не вычитаются. Для мультиполигона достаточно
// попасть в любой из полигонов. Точка на ребре обрабатывается полуоткрыто:
// у прямоугольника западная и южная стороны входят в сектор, восточная и
// северная - нет.
func Resolve(point models.GeoPoint, reg *Registry) (models.Sector, bool) {
	if reg == nil {
		return models.Sector{}, false
	}

	p := orb.Point{point.Longitude, point.Latitude}
	for _, s := range reg.sectors {
		if s.contains(p) {
			return s.copySector(), true
		}
	}
	return models.Sector{}, false
}

// Resolve - то же, что пакетная Resolve, для реестра r
func (r *Registry) Resolve(point models.GeoPoint) (models.Sector, bool) {
	return Resolve(point, r)
}

func (s indexedSector) contains(p orb.Point) bool {
	for i, poly := range s.sector.Boundary {
		if !s.bounds[i].Contains(p) {
			continue
		}
		if ringContains(poly[0], p) {
			return true
		}
	}
	return false
}

// ringContains - классический тест чётности пересечений горизонтального луча
func ringContains(ring orb.Ring, p orb.Point) bool {
	x, y := p[0], p[1]
	inside := false

	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
