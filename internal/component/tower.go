// component/tower.go
package component

import "go-kingshot/pkg/geom"

// Tower занимает отрезок между двумя турелями и стреляет с обоих концов.
type Tower struct {
	Start    geom.Vec3
	End      geom.Vec3
	Active   bool
	Cooldown float64 // время до следующего залпа
	Range    float64
	Level    int // уровень улучшения, 0..MaxLevel
}

// Turrets возвращает точки выстрела, поднятые на высоту турели.
func (t *Tower) Turrets(height float64) [2]geom.Vec3 {
	lift := geom.V(0, height, 0)
	return [2]geom.Vec3{t.Start.Add(lift), t.End.Add(lift)}
}
