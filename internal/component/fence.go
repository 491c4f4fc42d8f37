package component

import "go-kingshot/pkg/geom"

// Fence — отрезок, который останавливает врагов, пока не износится.
type Fence struct {
	Start        geom.Vec3
	End          geom.Vec3
	Active       bool
	ContactTimer float64
	ContactLimit float64
	InContact    bool // касается ли забора хотя бы один враг в текущем кадре
}

// Wear — доля износа забора в диапазоне [0, 1].
func (f *Fence) Wear() float64 {
	if f.ContactLimit <= 0 {
		return 0
	}
	r := f.ContactTimer / f.ContactLimit
	if r > 1 {
		return 1
	}
	return r
}
