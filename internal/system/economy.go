// internal/system/economy.go
package system

import (
	"log"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
)

// EconomySystem ведёт деньги и жизни игрока, реагируя на события боя.
type EconomySystem struct {
	ecs *entity.ECS
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{ecs: ecs}
	eventDispatcher.Subscribe(s, event.EnemyKilled, event.EnemyLeaked, event.WaveStarted)
	return s
}

// OnEvent реализует интерфейс event.Listener.
func (s *EconomySystem) OnEvent(e event.Event) {
	player := s.ecs.Player
	if player == nil {
		return
	}

	switch e.Type {
	case event.EnemyKilled:
		info, ok := e.Data.(event.KillInfo)
		if !ok {
			return
		}
		if err := player.GainMoney(info.Reward); err != nil {
			log.Printf("Error: invalid kill reward for enemy %d: %v", info.ID, err)
		}
	case event.EnemyLeaked:
		_ = player.LoseLives(config.LivesPerLeak)
	case event.WaveStarted:
		if number, ok := e.Data.(int); ok {
			player.StartWave(number)
		}
	}
}
