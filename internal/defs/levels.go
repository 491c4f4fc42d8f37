package defs

// DefaultRules returns the stock Kingshot balance.
func DefaultRules() Rules {
	return Rules{
		StartingCoins: 1000,
		Wave: WaveRules{
			BaseEnemies:     15,
			EnemiesPerWave:  5,
			SpawnDelay:      1.0,
			SpawnDelayStep:  0.1,
			MinSpawnDelay:   0.3,
			WaveDelay:       5.0,
			SecondPathWave:  10,
			SecondPathBonus: 10,
		},
		Enemy: EnemyRules{
			Radius:            0.5,
			Speed:             3.0,
			SpeedStep:         0.2,
			MaxSpeed:          7.0,
			ContactLimit:      3.0,
			WaypointTolerance: 0.5,
			BaseContactRadius: 0.25,
			Bounty:            1,
		},
		Tower: TowerRules{
			Cost:               50,
			Max:                4,
			Range:              7.0,
			Cooldown:           3.5,
			CooldownPerLevel:   0.5,
			MaxLevel:           3,
			UpgradeRange:       2.0,
			UpgradeCooldownCut: 0.5,
			MinUpgradeCooldown: 0.5,
			Length:             4.0,
			BaseDistance:       3.0,
			DistanceStep:       1.5,
			TurretHeight:       1.0,
		},
		Fence: FenceRules{
			Cost:         20,
			Max:          4,
			ContactLimit: 3.0,
			Width:        0.2,
		},
		Missile: MissileRules{
			Speed:     40.0,
			Lifetime:  2.0,
			HitRadius: 0.1,
		},
		Base: BaseRules{
			ContactLimit: 2.0,
		},
	}
}

// DefaultLevel — лунная карта с двумя дорогами, сходящимися к базе в центре.
func DefaultLevel() Level {
	return Level{
		Name: "moon",
		Base: Point{X: 0, Y: 0.1, Z: 0},
		Camera: Camera{
			Position: Point{X: 0, Y: 5, Z: -10},
			Target:   Point{X: 0, Y: 0, Z: 0},
		},
		Paths: [][]Point{
			{{X: -15, Y: 0.1, Z: -10}, {X: -5, Y: 0.1, Z: 0}, {X: 0, Y: 0.1, Z: 0}},
			{{X: 15, Y: 0.1, Z: -10}, {X: 5, Y: 0.1, Z: 0}, {X: 0, Y: 0.1, Z: 0}},
		},
		Rules: DefaultRules(),
	}
}
