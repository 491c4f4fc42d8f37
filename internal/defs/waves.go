package defs

// WaveRules определяет рост сложности от волны к волне.
type WaveRules struct {
	BaseEnemies     int     `yaml:"base_enemies"`      // врагов в первой волне
	EnemiesPerWave  int     `yaml:"enemies_per_wave"`  // прирост за каждую следующую волну
	SpawnDelay      float64 `yaml:"spawn_delay"`       // начальный интервал появления, сек
	SpawnDelayStep  float64 `yaml:"spawn_delay_step"`  // уменьшение интервала за волну
	MinSpawnDelay   float64 `yaml:"min_spawn_delay"`   // нижняя граница интервала
	WaveDelay       float64 `yaml:"wave_delay"`        // пауза между волнами, сек
	SecondPathWave  int     `yaml:"second_path_wave"`  // с какой волны открывается второй путь, 0 — никогда
	SecondPathBonus int     `yaml:"second_path_bonus"` // дополнительные враги при открытом втором пути
}

// MaxEnemies возвращает квоту волны с номером wave.
func (r WaveRules) MaxEnemies(wave int, secondPath bool) int {
	n := r.BaseEnemies + (wave-1)*r.EnemiesPerWave
	if secondPath {
		n += r.SecondPathBonus
	}
	return n
}

// NextSpawnDelay уменьшает интервал появления с учётом нижней границы.
func (r WaveRules) NextSpawnDelay(current float64) float64 {
	next := current - r.SpawnDelayStep
	if next <= r.MinSpawnDelay {
		next = r.MinSpawnDelay
	}
	return next
}
