package component

import "go-kingshot/pkg/geom"

// Enemy представляет вражескую сущность, идущую по одному из путей к базе.
type Enemy struct {
	Position     geom.Vec3
	Radius       float64
	Active       bool
	Speed        float64 // единиц в секунду, фиксируется при появлении
	Waypoint     int     // индекс следующей точки пути
	Stopped      bool    // удерживается забором в текущем кадре
	Path         int     // индекс пути
	ContactTimer float64 // сколько подряд враг упирается в забор
	ContactLimit float64 // после этого враг погибает
}
