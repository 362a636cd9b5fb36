package models

import "github.com/paulmach/orb"

// Sector - административный сектор и ответственный за него провайдер.
// Boundary хранит полигоны в порядке (lon, lat); внутренние кольца сохраняются,
// но при поиске учитывается только внешнее кольцо каждого полигона.
type Sector struct {
	Name       string           `json:"name"`
	ProviderID string           `json:"provider_id"`
	Boundary   orb.MultiPolygon `json:"-"`
}
