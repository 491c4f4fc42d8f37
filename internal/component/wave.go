package component

// Wave хранит состояние текущей волны и сложность для следующих появлений.
type Wave struct {
	Number     int
	MaxEnemies int     // квота волны
	Spawned    int     // сколько уже появилось
	SpawnTimer float64 // накопленное время до следующего появления
	SpawnDelay float64
	DelayTimer float64 // отсчёт паузы между волнами
	Active     bool
	SecondPath bool    // второй путь открыт навсегда
	EnemySpeed float64 // скорость, с которой появляются новые враги
}

// Remaining — сколько врагов волны ещё не появилось.
func (w *Wave) Remaining() int {
	return w.MaxEnemies - w.Spawned
}

// QuotaReached — все враги волны уже выпущены.
func (w *Wave) QuotaReached() bool {
	return w.Spawned >= w.MaxEnemies
}
