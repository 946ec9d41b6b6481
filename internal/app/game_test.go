package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/save"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

func useTestLibraries(t *testing.T) {
	t.Helper()
	prevTowers, prevEnemies := defs.TowerLibrary, defs.EnemyLibrary
	defs.TowerLibrary = map[string]defs.TowerDefinition{
		"arrow": {
			ID: "arrow", Name: "Arrow", Cost: 50,
			Range: 160, FireRate: 1.0, Damage: 200, ProjectileSpeed: 420,
			Upgrades: []defs.UpgradeDefinition{
				{Cost: 40, RangeBonus: 20, FireRateBonus: 0.5, DamageBonus: 50},
			},
		},
	}
	defs.EnemyLibrary = map[string]defs.EnemyDefinition{
		"grunt": {ID: "grunt", Name: "Grunt", Reward: 5},
	}
	t.Cleanup(func() {
		defs.TowerLibrary, defs.EnemyLibrary = prevTowers, prevEnemies
	})
}

func testMap() defs.MapDefinition {
	return defs.MapDefinition{
		ID:         "test",
		Name:       "Test Map",
		Tileset:    "grass",
		Path:       []grid.Coord{{X: 0, Y: 0}, {X: 3, Y: 0}},
		SpawnDelay: 0.5,
	}
}

func testGameConfig() config.GameConfig {
	return config.GameConfig{StartingMoney: 150, StartingLives: 20}
}

func newTestGame(t *testing.T, blueprints []defs.WaveBlueprint) *Game {
	t.Helper()
	game, err := NewGame(testMap(), blueprints, defs.DefaultDifficultyCurve(), testGameConfig())
	require.NoError(t, err)
	return game
}

func singleGruntWave() []defs.WaveBlueprint {
	return []defs.WaveBlueprint{
		{Wave: 1, EnemyType: "grunt", Count: 1, BaseHealth: 100, BaseSpeed: 60},
	}
}

func TestNewGameRejectsEmptyInput(t *testing.T) {
	useTestLibraries(t)

	empty := testMap()
	empty.Path = nil
	_, err := NewGame(empty, singleGruntWave(), defs.DefaultDifficultyCurve(), testGameConfig())
	assert.Error(t, err)

	_, err = NewGame(testMap(), nil, defs.DefaultDifficultyCurve(), testGameConfig())
	assert.Error(t, err)
}

func TestGameEnemyLeaksCostLife(t *testing.T) {
	useTestLibraries(t)
	game := newTestGame(t, singleGruntWave())

	require.True(t, game.StartNextWave())
	for i := 0; i < 60; i++ {
		game.Update(0.1)
	}

	assert.Empty(t, game.ECS.Enemies)
	assert.Equal(t, 19, game.ECS.Player.Lives)
	assert.Equal(t, 150, game.ECS.Player.Money)
}

func TestGameTowerKillsEnemy(t *testing.T) {
	useTestLibraries(t)
	game := newTestGame(t, singleGruntWave())

	// Башня рядом с дорогой, до убийства врага она не успеет утечь.
	require.True(t, game.BeginBuild("arrow"))
	require.NotNil(t, game.UpdateBuildPreview(geom.Point{X: 96, Y: 96}))
	_, ok := game.ConfirmBuild()
	require.True(t, ok)
	assert.Equal(t, 100, game.ECS.Player.Money)

	require.True(t, game.StartNextWave())
	for i := 0; i < 60; i++ {
		game.Update(0.1)
	}

	assert.Empty(t, game.ECS.Enemies)
	assert.Empty(t, game.ECS.Projectiles)
	assert.Equal(t, 20, game.ECS.Player.Lives)
	assert.Equal(t, 105, game.ECS.Player.Money) // 150 - 50 башня + 5 награда
	assert.Equal(t, 1, game.ECS.Player.CurrentWave)
}

func TestGameProjectileFliesNextTick(t *testing.T) {
	useTestLibraries(t)
	def := defs.TowerLibrary["arrow"]
	def.ProjectileSpeed = 2000
	defs.TowerLibrary["arrow"] = def

	game := newTestGame(t, singleGruntWave())
	require.True(t, game.BeginBuild("arrow"))
	require.NotNil(t, game.UpdateBuildPreview(geom.Point{X: 96, Y: 96}))
	_, ok := game.ConfirmBuild()
	require.True(t, ok)

	require.True(t, game.StartNextWave())

	// Тик выстрела: снаряд создан, но ещё не двигался — урона нет,
	// даже если скорости хватило бы долететь.
	game.Update(0.1)
	require.Len(t, game.ECS.Projectiles, 1)
	require.Len(t, game.ECS.Enemies, 1)
	for id := range game.ECS.Enemies {
		assert.Equal(t, 100, game.ECS.Healths[id].Value)
	}

	// Следующий тик: снаряд долетает и убивает.
	game.Update(0.1)
	assert.Empty(t, game.ECS.Enemies)
	assert.Empty(t, game.ECS.Projectiles)
	assert.Equal(t, 105, game.ECS.Player.Money)
}

func TestGameBuildFlow(t *testing.T) {
	useTestLibraries(t)
	game := newTestGame(t, singleGruntWave())

	// Неизвестная башня отклоняется сразу.
	assert.False(t, game.BeginBuild("laser"))

	require.True(t, game.BeginBuild("arrow"))

	// Клетка дороги запрещена.
	preview := game.UpdateBuildPreview(geom.Point{X: 96, Y: 32})
	require.NotNil(t, preview)
	assert.False(t, preview.CanBuild)

	// Свободная клетка.
	preview = game.UpdateBuildPreview(geom.Point{X: 96, Y: 96})
	require.NotNil(t, preview)
	require.True(t, preview.CanBuild)

	id, ok := game.ConfirmBuild()
	require.True(t, ok)

	tower := game.ECS.Towers[id]
	require.NotNil(t, tower)
	assert.Equal(t, grid.Coord{X: 1, Y: 1}, tower.Tile)
	assert.Equal(t, 1, tower.Level)
	assert.True(t, game.OccupiedTiles().Contains(grid.Coord{X: 1, Y: 1}))

	pos := game.ECS.Positions[id]
	require.NotNil(t, pos)
	assert.Equal(t, geom.Point{X: 96, Y: 96}, pos.Point())

	// Та же клетка теперь занята.
	require.True(t, game.BeginBuild("arrow"))
	preview = game.UpdateBuildPreview(geom.Point{X: 96, Y: 96})
	require.NotNil(t, preview)
	assert.False(t, preview.CanBuild)
	game.CancelBuild()
}

func TestGameUpgradeTower(t *testing.T) {
	useTestLibraries(t)
	game := newTestGame(t, singleGruntWave())

	require.True(t, game.BeginBuild("arrow"))
	require.NotNil(t, game.UpdateBuildPreview(geom.Point{X: 96, Y: 96}))
	id, ok := game.ConfirmBuild()
	require.True(t, ok)

	require.True(t, game.UpgradeTower(id))
	tower := game.ECS.Towers[id]
	assert.Equal(t, 2, tower.Level)
	assert.Equal(t, 180.0, tower.Range)
	assert.Equal(t, 250, tower.Damage)
	assert.Equal(t, 60, game.ECS.Player.Money) // 150 - 50 - 40

	// Лестница исчерпана.
	assert.False(t, game.UpgradeTower(id))

	// Несуществующая башня.
	assert.False(t, game.UpgradeTower(9999))
}

func TestGameUpgradeRequiresFunds(t *testing.T) {
	useTestLibraries(t)
	cfg := testGameConfig()
	cfg.StartingMoney = 50
	game, err := NewGame(testMap(), singleGruntWave(), defs.DefaultDifficultyCurve(), cfg)
	require.NoError(t, err)

	require.True(t, game.BeginBuild("arrow"))
	require.NotNil(t, game.UpdateBuildPreview(geom.Point{X: 96, Y: 96}))
	id, ok := game.ConfirmBuild()
	require.True(t, ok)

	assert.False(t, game.UpgradeTower(id))
	assert.Equal(t, 0, game.ECS.Player.Money)
	assert.Equal(t, 1, game.ECS.Towers[id].Level)
}

func TestGameProgressRoundTrip(t *testing.T) {
	useTestLibraries(t)
	game := newTestGame(t, singleGruntWave())

	require.True(t, game.StartNextWave())
	game.Update(0.1)

	progress := game.SerializeProgress()
	assert.Equal(t, save.SnapshotVersion, progress.Version)
	assert.Equal(t, 0, progress.CurrentIndex)

	fresh := newTestGame(t, singleGruntWave())
	require.NoError(t, fresh.RestoreProgress(progress))
	assert.Equal(t, progress.CurrentIndex, fresh.WaveSystem.CurrentWaveIndex())

	bad := progress
	bad.CurrentIndex = 7
	assert.ErrorIs(t, fresh.RestoreProgress(bad), save.ErrInvalidState)
}

func TestGameLoopWaves(t *testing.T) {
	useTestLibraries(t)
	cfg := testGameConfig()
	cfg.LoopWaves = true
	game, err := NewGame(testMap(), singleGruntWave(), defs.DefaultDifficultyCurve(), cfg)
	require.NoError(t, err)

	require.True(t, game.StartNextWave())
	for i := 0; i < 60; i++ {
		game.Update(0.1)
	}

	// Единственная волна завершилась, но цикл позволяет начать заново.
	require.True(t, game.StartNextWave())
	assert.Equal(t, 0, game.WaveSystem.CurrentWaveIndex())
}
