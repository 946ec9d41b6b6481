package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tower-sim/pkg/geom"
	"go-tower-sim/pkg/grid"
)

func newBuildManager(t *testing.T) *BuildManager {
	t.Helper()
	bm, err := NewBuildManager(64, []grid.Coord{{X: 0, Y: 3}, {X: 1, Y: 3}})
	require.NoError(t, err)
	return bm
}

func TestNewBuildManagerRejectsBadTileSize(t *testing.T) {
	_, err := NewBuildManager(0, nil)
	assert.Error(t, err)
}

func TestBeginBuildRequiresFunds(t *testing.T) {
	bm := newBuildManager(t)
	button := TowerButton{DefID: "arrow", Cost: 50}

	assert.False(t, bm.BeginBuild(button, 49))
	assert.False(t, bm.IsBuilding())

	assert.True(t, bm.BeginBuild(button, 50))
	assert.True(t, bm.IsBuilding())
}

func TestUpdatePreviewSnapsToGrid(t *testing.T) {
	bm := newBuildManager(t)
	require.True(t, bm.BeginBuild(TowerButton{DefID: "arrow", Cost: 50}, 100))

	preview := bm.UpdatePreview(geom.Point{X: 130, Y: 70}, grid.NewTileSet(), 100)
	require.NotNil(t, preview)

	assert.Equal(t, grid.Coord{X: 2, Y: 1}, preview.GridPosition)
	assert.Equal(t, geom.Point{X: 128, Y: 64}, preview.PixelPosition)
	assert.True(t, preview.CanBuild)
	assert.Equal(t, PreviewOKColor, preview.Color)
}

func TestUpdatePreviewForbidden(t *testing.T) {
	bm := newBuildManager(t)
	require.True(t, bm.BeginBuild(TowerButton{DefID: "arrow", Cost: 50}, 100))

	// Клетка пути врагов.
	preview := bm.UpdatePreview(geom.Point{X: 10, Y: 200}, grid.NewTileSet(), 100)
	require.NotNil(t, preview)
	assert.False(t, preview.CanBuild)
	assert.Equal(t, PreviewForbiddenColor, preview.Color)

	// Занятая клетка.
	occupied := grid.NewTileSet(grid.Coord{X: 5, Y: 5})
	preview = bm.UpdatePreview(geom.Point{X: 330, Y: 330}, occupied, 100)
	require.NotNil(t, preview)
	assert.False(t, preview.CanBuild)

	// Деньги кончились после выбора башни.
	preview = bm.UpdatePreview(geom.Point{X: 400, Y: 400}, grid.NewTileSet(), 10)
	require.NotNil(t, preview)
	assert.False(t, preview.CanBuild)
}

func TestConfirmBuild(t *testing.T) {
	bm := newBuildManager(t)
	occupied := grid.NewTileSet()
	require.True(t, bm.BeginBuild(TowerButton{DefID: "arrow", Cost: 50}, 100))
	require.NotNil(t, bm.UpdatePreview(geom.Point{X: 400, Y: 400}, occupied, 100))

	button, ok := bm.ConfirmBuild(occupied, 100)
	require.True(t, ok)
	assert.Equal(t, "arrow", button.DefID)
	assert.True(t, occupied.Contains(grid.Coord{X: 6, Y: 6}))
	assert.Len(t, occupied, 1)

	// Менеджер вернулся в Idle: повторное подтверждение отклоняется.
	_, ok = bm.ConfirmBuild(occupied, 100)
	assert.False(t, ok)
	assert.False(t, bm.IsBuilding())
}

func TestConfirmBuildRechecksFunds(t *testing.T) {
	bm := newBuildManager(t)
	occupied := grid.NewTileSet()
	require.True(t, bm.BeginBuild(TowerButton{DefID: "arrow", Cost: 50}, 100))
	require.NotNil(t, bm.UpdatePreview(geom.Point{X: 400, Y: 400}, occupied, 100))

	// Баланс упал между превью и подтверждением.
	_, ok := bm.ConfirmBuild(occupied, 30)
	assert.False(t, ok)
	assert.Empty(t, occupied)
}

func TestConfirmBuildWithoutPreview(t *testing.T) {
	bm := newBuildManager(t)
	require.True(t, bm.BeginBuild(TowerButton{DefID: "arrow", Cost: 50}, 100))

	_, ok := bm.ConfirmBuild(grid.NewTileSet(), 100)
	assert.False(t, ok)
}

func TestCancelClearsState(t *testing.T) {
	bm := newBuildManager(t)
	require.True(t, bm.BeginBuild(TowerButton{DefID: "arrow", Cost: 50}, 100))
	require.NotNil(t, bm.UpdatePreview(geom.Point{X: 400, Y: 400}, grid.NewTileSet(), 100))

	bm.Cancel()
	assert.False(t, bm.IsBuilding())
	assert.Nil(t, bm.Preview())
}
