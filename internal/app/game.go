// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/save"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

// Game holds the simulation state and logic for one map.
type Game struct {
	Map              defs.MapDefinition
	ECS              *entity.ECS
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem
	BuildManager     *BuildManager
	EventDispatcher  *event.Dispatcher

	waveConfigs   []defs.WaveConfig
	waypoints     []geom.Point
	occupiedTiles grid.TileSet
	gameTime      float64
}

// NewGame собирает симуляцию: масштабирует блюпринты, строит расписания
// спавнов и связывает системы. Блюпринты не должны быть пустыми.
func NewGame(mapDef defs.MapDefinition, blueprints []defs.WaveBlueprint, curve defs.DifficultyCurve, gameCfg config.GameConfig) (*Game, error) {
	if len(mapDef.Path) == 0 {
		return nil, fmt.Errorf("map %q has an empty path", mapDef.ID)
	}
	if len(blueprints) == 0 {
		return nil, fmt.Errorf("no waves defined for map %q", mapDef.ID)
	}

	waveConfigs, err := defs.ApplyDifficulty(blueprints, curve)
	if err != nil {
		return nil, err
	}

	player, err := component.NewPlayerStats(gameCfg.StartingMoney, gameCfg.StartingLives)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	ecs.Player = player
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		Map:             mapDef,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		waveConfigs:     waveConfigs,
		waypoints:       grid.Waypoints(mapDef.Path, config.TileSize),
		occupiedTiles:   grid.NewTileSet(),
	}

	schedules := system.SchedulesFromConfigs(waveConfigs, mapDef.SpawnDelay)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, schedules, g.SpawnEnemy, gameCfg.LoopWaves)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.EconomySystem = system.NewEconomySystem(ecs, eventDispatcher)

	g.BuildManager, err = NewBuildManager(config.TileSize, mapDef.Path)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Update progresses the simulation by one tick. Порядок проходов
// фиксированный: спавны → движение → снаряды → бой → очистка.
// Снаряды двигаются до выстрелов, поэтому свежевыпущенный снаряд
// начинает лететь только со следующего тика.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.cleanupDestroyedEntities()
}

// StartNextWave запускает следующую волну, если планировщик в простое.
func (g *Game) StartNextWave() bool {
	return g.WaveSystem.StartNextWave()
}

// SpawnEnemy — спавн-колбэк планировщика волн. Создаёт врага текущей
// волны в начале пути.
func (g *Game) SpawnEnemy(enemyType string) {
	cfg, ok := g.currentWaveConfig()
	if !ok {
		log.Printf("Error: no wave config for spawn of %q", enemyType)
		return
	}

	reward := config.DefaultKillReward
	if def, ok := defs.EnemyLibrary[enemyType]; ok {
		reward = def.Reward
	}

	id := g.ECS.NewEntity()
	start := g.waypoints[0]
	g.ECS.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	g.ECS.Velocities[id] = &component.Velocity{Speed: cfg.Speed}
	g.ECS.Paths[id] = &component.Path{Waypoints: g.waypoints}
	g.ECS.Healths[id] = &component.Health{Value: int(math.Round(cfg.Health))}
	g.ECS.Enemies[id] = &component.Enemy{
		DefID:            enemyType,
		Reward:           reward,
		ArrivalTolerance: config.ArrivalTolerance,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

func (g *Game) currentWaveConfig() (defs.WaveConfig, bool) {
	index := g.WaveSystem.CurrentWaveIndex()
	if index < 0 || index >= len(g.waveConfigs) {
		return defs.WaveConfig{}, false
	}
	return g.waveConfigs[index], true
}

// WaveConfigs возвращает масштабированные конфигурации волн карты.
func (g *Game) WaveConfigs() []defs.WaveConfig {
	return g.waveConfigs
}

// OccupiedTiles — клетки, занятые башнями.
func (g *Game) OccupiedTiles() grid.TileSet {
	return g.occupiedTiles
}

// BeginBuild начинает размещение башни указанного типа.
func (g *Game) BeginBuild(defID string) bool {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return false
	}
	button := TowerButton{DefID: def.ID, Cost: def.Cost}
	return g.BuildManager.BeginBuild(button, g.ECS.Player.Money)
}

// UpdateBuildPreview пересчитывает превью размещения под позицией мыши.
func (g *Game) UpdateBuildPreview(mouse geom.Point) *BuildPreview {
	return g.BuildManager.UpdatePreview(mouse, g.occupiedTiles, g.ECS.Player.Money)
}

// ConfirmBuild достраивает башню по текущему превью: списывает деньги,
// занимает клетку и создаёт сущность башни.
func (g *Game) ConfirmBuild() (types.EntityID, bool) {
	preview := g.BuildManager.Preview()
	button, ok := g.BuildManager.ConfirmBuild(g.occupiedTiles, g.ECS.Player.Money)
	if !ok {
		return 0, false
	}

	spent, err := g.ECS.Player.SpendMoney(button.Cost)
	if err != nil || !spent {
		// Подтверждение уже проверило баланс; сюда попадать не должны.
		log.Printf("Error: failed to charge tower cost %d: %v", button.Cost, err)
		return 0, false
	}

	id := g.createTowerEntity(button.DefID, preview.GridPosition)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, true
}

// CancelBuild прерывает размещение.
func (g *Game) CancelBuild() {
	g.BuildManager.Cancel()
}

func (g *Game) createTowerEntity(defID string, tile grid.Coord) types.EntityID {
	def := defs.TowerLibrary[defID]

	id := g.ECS.NewEntity()
	center := tile.Center(config.TileSize)
	g.ECS.Positions[id] = &component.Position{X: center.X, Y: center.Y}

	projectileSpeed := def.ProjectileSpeed
	if projectileSpeed <= 0 {
		projectileSpeed = config.DefaultProjectileSpeed
	}

	g.ECS.Towers[id] = &component.Tower{
		DefID:           defID,
		Tile:            tile,
		Range:           def.Range,
		FireRate:        def.FireRate,
		Damage:          def.Damage,
		ProjectileSpeed: projectileSpeed,
		Level:           1,
	}
	return id
}

// UpgradeTower покупает следующую ступень улучшения башни.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}

	cost, ok := system.UpgradeCost(tower)
	if !ok || !g.ECS.Player.CanAfford(cost) {
		return false
	}

	spent, err := g.ECS.Player.SpendMoney(cost)
	if err != nil || !spent {
		return false
	}
	system.ApplyUpgrade(tower)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return true
}

// SerializeProgress снимает снапшот прогресса волн.
func (g *Game) SerializeProgress() save.WaveProgress {
	return g.WaveSystem.Serialize()
}

// RestoreProgress восстанавливает прогресс волн из снапшота.
func (g *Game) RestoreProgress(progress save.WaveProgress) error {
	return g.WaveSystem.Restore(progress)
}

// GameTime возвращает суммарное симулированное время.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// cleanupDestroyedEntities убирает мёртвых и дошедших до конца врагов
// и завершённые снаряды. Награда за убийство зачисляется здесь, через
// событие EnemyKilled.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range g.ECS.SortedEnemyIDs() {
		enemy := g.ECS.Enemies[id]

		health, hasHealth := g.ECS.Healths[id]
		noHealth := hasHealth && health.Value <= 0

		if noHealth && !enemy.ReachedEnd {
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.KillInfo{ID: id, Reward: enemy.Reward},
			})
		}

		if noHealth || enemy.ReachedEnd {
			delete(g.ECS.Positions, id)
			delete(g.ECS.Velocities, id)
			delete(g.ECS.Paths, id)
			delete(g.ECS.Healths, id)
			delete(g.ECS.Enemies, id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: id})
		}
	}

	for _, id := range g.ECS.SortedProjectileIDs() {
		if g.ECS.Projectiles[id].Finished {
			delete(g.ECS.Positions, id)
			delete(g.ECS.Projectiles, id)
		}
	}
}
