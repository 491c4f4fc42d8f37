package component

import "go-kingshot/pkg/geom"

// MissileSource — кто выпустил ракету.
type MissileSource int

const (
	SourcePlayer MissileSource = iota
	SourceTurret
)

func (s MissileSource) String() string {
	if s == SourceTurret {
		return "turret"
	}
	return "player"
}

// Missile летит по прямой; направление задаётся в момент выстрела и больше не меняется.
type Missile struct {
	Position  geom.Vec3
	Direction geom.Vec3 // единичный вектор
	Active    bool
	Speed     float64
	Lifetime  float64 // оставшееся время жизни, сек
	Source    MissileSource
}
