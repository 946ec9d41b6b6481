// internal/component/wave.go
package component

// EnemySpawn — одно запланированное появление врага.
// SpawnTime отсчитывается от начала волны.
type EnemySpawn struct {
	EnemyType string  `json:"enemy_type"`
	SpawnTime float64 `json:"spawn_time"`
}

// Wave — состояние активной волны. Существует только пока волна идёт;
// когда очередь спавнов пустеет, волна завершается.
type Wave struct {
	Number  int          // 1-based номер волны
	Pending []EnemySpawn // Отсортированы по времени, стабильно
	Elapsed float64
}
