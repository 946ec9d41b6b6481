// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Идентификаторы выдаются монотонно, поэтому порядок ID — это порядок появления.
type EntityID uint64
