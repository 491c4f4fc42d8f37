// internal/input/commands.go
package input

import (
	"go-kingshot/internal/component"
	"go-kingshot/pkg/geom"
)

// Commands — всё, что фронтенд передаёт в симуляцию за один кадр.
// Дискретные действия срабатывают по нажатию, не по удержанию.
type Commands struct {
	Fire        bool
	BuildTower  bool // постройка или улучшение
	BuildFence  bool
	TogglePause bool
	Reset       bool
	Start       bool // выход из меню

	// Поза камеры от первого лица; учитывается только при HasCamera.
	Camera    component.CameraPose
	HasCamera bool
}

// WithCamera returns a copy of c carrying the given camera pose.
func (c Commands) WithCamera(position, target geom.Vec3) Commands {
	c.Camera = component.CameraPose{Position: position, Target: target}
	c.HasCamera = true
	return c
}

// Any reports whether at least one discrete action is set.
func (c Commands) Any() bool {
	return c.Fire || c.BuildTower || c.BuildFence || c.TogglePause || c.Reset || c.Start
}
