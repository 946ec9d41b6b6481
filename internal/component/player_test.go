package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerStats(t *testing.T) {
	player, err := NewPlayerStats(150, 20)
	require.NoError(t, err)
	assert.Equal(t, 150, player.Money)
	assert.Equal(t, 20, player.Lives)

	_, err = NewPlayerStats(-1, 20)
	assert.Error(t, err)

	_, err = NewPlayerStats(100, 0)
	assert.Error(t, err)
}

func TestGainMoney(t *testing.T) {
	player, err := NewPlayerStats(100, 10)
	require.NoError(t, err)

	require.NoError(t, player.GainMoney(25))
	assert.Equal(t, 125, player.Money)

	assert.ErrorIs(t, player.GainMoney(-5), ErrNegativeAmount)
	assert.Equal(t, 125, player.Money)
}

func TestSpendMoney(t *testing.T) {
	player, err := NewPlayerStats(100, 10)
	require.NoError(t, err)

	ok, err := player.SpendMoney(60)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 40, player.Money)

	ok, err = player.SpendMoney(50)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 40, player.Money)

	_, err = player.SpendMoney(-1)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestLoseLivesFloorsAtZero(t *testing.T) {
	player, err := NewPlayerStats(0, 3)
	require.NoError(t, err)

	require.NoError(t, player.LoseLives(2))
	assert.Equal(t, 1, player.Lives)
	assert.True(t, player.IsAlive())

	require.NoError(t, player.LoseLives(5))
	assert.Equal(t, 0, player.Lives)
	assert.False(t, player.IsAlive())

	assert.ErrorIs(t, player.LoseLives(-1), ErrNegativeAmount)
}
