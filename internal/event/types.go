package event

import "go-kingshot/internal/component"

const (
	EnemySpawned     EventType = "EnemySpawned"     // Враг появился на пути
	EnemyKilled      EventType = "EnemyKilled"      // Враг убит ракетой или забором
	MissileFired     EventType = "MissileFired"     // Выстрел игрока или турели
	TowerBuilt       EventType = "TowerBuilt"       // Башня построена
	TowerUpgraded    EventType = "TowerUpgraded"    // Башня улучшена
	FenceBuilt       EventType = "FenceBuilt"       // Забор построен
	FenceDestroyed   EventType = "FenceDestroyed"   // Забор износился
	WaveEnded        EventType = "WaveEnded"        // Волна закончилась, пошёл отсчёт
	WaveStarted      EventType = "WaveStarted"      // Началась следующая волна
	SecondPathOpened EventType = "SecondPathOpened" // Открылся второй путь
	GameOver         EventType = "GameOver"
	GameReset        EventType = "GameReset"
	PauseToggled     EventType = "PauseToggled"
)

// AllTypes перечисляет все события симуляции.
var AllTypes = []EventType{
	EnemySpawned, EnemyKilled, MissileFired,
	TowerBuilt, TowerUpgraded, FenceBuilt, FenceDestroyed,
	WaveEnded, WaveStarted, SecondPathOpened,
	GameOver, GameReset, PauseToggled,
}

// KillCause — чем убит враг.
type KillCause string

const (
	KilledByMissile KillCause = "missile"
	KilledByFence   KillCause = "fence"
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	Cause  KillCause
	Bounty int
}

// MissileFiredData — данные события MissileFired.
type MissileFiredData struct {
	Source component.MissileSource
}

// TowerData — данные событий TowerBuilt и TowerUpgraded.
type TowerData struct {
	Index int
	Level int
	Cost  int
}

// FenceData — данные событий FenceBuilt и FenceDestroyed.
type FenceData struct {
	Cost int
}

// WaveData — данные волновых событий.
type WaveData struct {
	Number     int
	MaxEnemies int
}
