// internal/event/types.go
package event

import "go-tower-sim/internal/types"

const (
	WaveStarted   EventType = "WaveStarted"   // Волна началась, Data: номер волны
	WaveEnded     EventType = "WaveEnded"     // Очередь спавнов волны опустела
	EnemySpawned  EventType = "EnemySpawned"  // Враг создан, Data: EntityID
	EnemyKilled   EventType = "EnemyKilled"   // Враг убит, Data: KillInfo
	EnemyLeaked   EventType = "EnemyLeaked"   // Враг дошёл до конца пути, Data: EntityID
	EnemyRemoved  EventType = "EnemyRemoved"  // Враг убран из мира, Data: EntityID
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена, Data: EntityID
	TowerUpgraded EventType = "TowerUpgraded" // Башня улучшена, Data: EntityID
)

// KillInfo сопровождает EnemyKilled.
type KillInfo struct {
	ID     types.EntityID
	Reward int
}
