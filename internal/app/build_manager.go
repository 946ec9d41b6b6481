// internal/app/build_manager.go
package app

import (
	"errors"
	"image/color"

	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

// Цвета превью для внешнего рендера.
var (
	PreviewOKColor        = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	PreviewForbiddenColor = color.RGBA{R: 210, G: 80, B: 80, A: 255}
)

// TowerButton — кнопка башни, выбранная игроком в HUD.
type TowerButton struct {
	DefID string
	Cost  int
}

// BuildPreview описывает текущее спекулятивное размещение.
type BuildPreview struct {
	GridPosition  grid.Coord
	PixelPosition geom.Point
	Color         color.RGBA
	CanBuild      bool
}

// BuildManager — машина состояний размещения башен.
// Idle → BeginBuild → Selecting → ConfirmBuild/Cancel → Idle.
type BuildManager struct {
	tileSize     int
	blockedTiles grid.TileSet
	selected     *TowerButton
	preview      *BuildPreview
}

// NewBuildManager создаёт менеджер. blockedTiles — клетки пути врагов,
// строить на них нельзя.
func NewBuildManager(tileSize int, blockedTiles []grid.Coord) (*BuildManager, error) {
	if tileSize <= 0 {
		return nil, errors.New("tile size must be positive")
	}
	return &BuildManager{
		tileSize:     tileSize,
		blockedTiles: grid.NewTileSet(blockedTiles...),
	}, nil
}

// IsBuilding сообщает, выбрана ли кнопка башни.
func (b *BuildManager) IsBuilding() bool {
	return b.selected != nil
}

// Preview возвращает текущее превью, если оно есть.
func (b *BuildManager) Preview() *BuildPreview {
	return b.preview
}

// BeginBuild начинает размещение. При нехватке денег состояние
// не меняется и возвращается false.
func (b *BuildManager) BeginBuild(button TowerButton, money int) bool {
	if money < button.Cost {
		return false
	}
	b.selected = &button
	b.preview = nil
	return true
}

// Cancel прерывает размещение из любого состояния.
func (b *BuildManager) Cancel() {
	b.selected = nil
	b.preview = nil
}

func (b *BuildManager) canPlace(cell grid.Coord, occupied grid.TileSet, money int) bool {
	if b.selected == nil {
		return false
	}
	if money < b.selected.Cost {
		return false
	}
	if b.blockedTiles.Contains(cell) {
		return false
	}
	return !occupied.Contains(cell)
}

// UpdatePreview прилепляет позицию мыши к сетке и пересчитывает,
// можно ли строить в этой клетке.
func (b *BuildManager) UpdatePreview(mouse geom.Point, occupied grid.TileSet, money int) *BuildPreview {
	if b.selected == nil {
		b.preview = nil
		return nil
	}

	cell := grid.Snap(mouse, b.tileSize)
	canBuild := b.canPlace(cell, occupied, money)
	previewColor := PreviewOKColor
	if !canBuild {
		previewColor = PreviewForbiddenColor
	}

	b.preview = &BuildPreview{
		GridPosition:  cell,
		PixelPosition: cell.ToPixel(b.tileSize),
		Color:         previewColor,
		CanBuild:      canBuild,
	}
	return b.preview
}

// ConfirmBuild завершает размещение. Деньги перепроверяются: баланс мог
// измениться после расчёта превью. На успехе клетка добавляется в
// occupied, менеджер возвращается в Idle.
func (b *BuildManager) ConfirmBuild(occupied grid.TileSet, money int) (TowerButton, bool) {
	if b.preview == nil || b.selected == nil {
		return TowerButton{}, false
	}
	if !b.preview.CanBuild {
		return TowerButton{}, false
	}
	if money < b.selected.Cost {
		return TowerButton{}, false
	}

	occupied.Add(b.preview.GridPosition)
	button := *b.selected
	b.Cancel()
	return button, true
}
