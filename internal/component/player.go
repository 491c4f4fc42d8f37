// internal/component/player.go
package component

import "go-kingshot/pkg/geom"

// CameraPose — положение камеры от первого лица: откуда и куда смотрит игрок.
// Выстрел игрока летит из Position в сторону Target.
type CameraPose struct {
	Position geom.Vec3
	Target   geom.Vec3
}

// Player хранит кошелёк игрока и последнюю известную позу камеры.
type Player struct {
	Coins  int
	Camera CameraPose
}
