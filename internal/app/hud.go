package app

import (
	"fmt"
	"strings"
)

// StatusLine — общая для всех фронтендов строка состояния.
func (s Snapshot) StatusLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Coins: %d  Wave: %d  Left: %d", s.Coins, s.Wave, s.Remaining)
	if !s.WaveActive {
		fmt.Fprintf(&b, "  Next wave in %.1fs", s.Countdown)
	}
	fmt.Fprintf(&b, "  Towers: %d/%d  Fences: %d/%d", s.TowerCount, s.MaxTowers, s.FenceCount, s.MaxFences)
	return b.String()
}

// HintLine подсказывает, какие покупки доступны прямо сейчас.
func (s Snapshot) HintLine() string {
	var parts []string
	if s.CanBuyTower {
		verb := "build tower"
		if s.TowerCount >= s.MaxTowers {
			verb = "upgrade tower"
		}
		parts = append(parts, fmt.Sprintf("[T] %s (%d)", verb, s.TowerCost))
	}
	if s.CanBuyFence {
		parts = append(parts, fmt.Sprintf("[F] fence (%d)", s.FenceCost))
	}
	parts = append(parts, "[P] pause")
	return strings.Join(parts, "  ")
}

// Banner — крупная надпись поверх сцены или пустая строка.
func (s Snapshot) Banner() string {
	switch {
	case s.GameOver:
		return fmt.Sprintf("GAME OVER - wave %d - press R to restart", s.Wave)
	case s.Paused:
		return "PAUSED"
	default:
		return ""
	}
}
