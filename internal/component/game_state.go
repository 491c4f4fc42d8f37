package component

// GameState — глобальные флаги, разрешающие или запрещающие шаг симуляции.
type GameState struct {
	Paused   bool
	GameOver bool
}

// Running сообщает, должна ли симуляция продвигаться в этом кадре.
func (s GameState) Running() bool {
	return !s.Paused && !s.GameOver
}

// BaseContact — общий для всех врагов таймер касания базы.
type BaseContact struct {
	Timer     float64
	InContact bool
}
