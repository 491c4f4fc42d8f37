// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoPaths   = errors.New("level has no paths")
	ErrEmptyPath = errors.New("level path has no waypoints")
	ErrBadRules  = errors.New("invalid rules")
)

// LoadLevel читает описание уровня из YAML поверх DefaultLevel.
// Поля, которых нет в файле, сохраняют значения по умолчанию; список путей,
// если задан, заменяется целиком. Отсутствующий файл — не ошибка.
func LoadLevel(path string) (Level, error) {
	level := DefaultLevel()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return level, nil
		}
		return level, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	if err := ParseLevel(data, &level); err != nil {
		return DefaultLevel(), fmt.Errorf("failed to parse level file %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel разбирает YAML в level и проверяет результат.
func ParseLevel(data []byte, level *Level) error {
	if err := yaml.Unmarshal(data, level); err != nil {
		return err
	}
	return level.Validate()
}

// Validate проверяет инварианты, на которые опирается симуляция:
// хотя бы один непустой путь и осмысленные правила.
func (l Level) Validate() error {
	if len(l.Paths) == 0 {
		return ErrNoPaths
	}
	for i, p := range l.Paths {
		if len(p) == 0 {
			return fmt.Errorf("path %d: %w", i, ErrEmptyPath)
		}
	}
	if l.Rules.Wave.SecondPathWave > 0 && len(l.Paths) < 2 {
		return fmt.Errorf("%w: second path opens at wave %d but level has %d path(s)",
			ErrBadRules, l.Rules.Wave.SecondPathWave, len(l.Paths))
	}
	return l.Rules.Validate()
}

// Validate checks that timers and limits are usable.
func (r Rules) Validate() error {
	switch {
	case r.Wave.SpawnDelay <= 0:
		return fmt.Errorf("%w: wave.spawn_delay must be positive", ErrBadRules)
	case r.Wave.BaseEnemies < 0 || r.Wave.EnemiesPerWave < 0:
		return fmt.Errorf("%w: enemy counts must not be negative", ErrBadRules)
	case r.Enemy.ContactLimit <= 0 || r.Fence.ContactLimit <= 0 || r.Base.ContactLimit <= 0:
		return fmt.Errorf("%w: contact limits must be positive", ErrBadRules)
	case r.Tower.Max < 0 || r.Fence.Max < 0 || r.Tower.MaxLevel < 0:
		return fmt.Errorf("%w: limits must not be negative", ErrBadRules)
	case r.Missile.Lifetime <= 0:
		return fmt.Errorf("%w: missile.lifetime must be positive", ErrBadRules)
	}
	return nil
}
