package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerCentered(t *testing.T) {
	p := NewPlayer(testScreen)
	assert.Equal(t, 240.0, p.X)
	assert.Equal(t, 576.0, p.Y)
	assert.True(t, p.CanFire())
}

func TestPlayerAdvance(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		elapsed     float64
		wantX       float64
	}{
		{"idle", false, false, 0, 240},
		{"left", true, false, 0, 240 - 32},
		{"right", false, true, 0, 240 + 32},
		{"both cancel", true, true, 0, 240},
		{"ramped", false, true, 60, 240 + 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testScreen)
			p.Advance(tick(0.1, tt.elapsed), tt.left, tt.right)
			assert.InDelta(t, tt.wantX, p.X, 1e-9)
		})
	}
}

func TestPlayerStaysInsidePlayfield(t *testing.T) {
	p := NewPlayer(testScreen)
	for i := 0; i < 200; i++ {
		p.Advance(tick(0.05, float64(i)), true, false)
		require.GreaterOrEqual(t, p.X, PlayerWidth/2)
	}
	assert.Equal(t, PlayerWidth/2, p.X)

	for i := 0; i < 200; i++ {
		p.Advance(tick(0.05, float64(i)), false, true)
		require.LessOrEqual(t, p.X, testScreen.Width-PlayerWidth/2)
	}
	assert.Equal(t, testScreen.Width-PlayerWidth/2, p.X)
}

func TestPlayerCooldown(t *testing.T) {
	p := NewPlayer(testScreen)
	p.Cooldown = PlayerFireCooldown

	p.DecayCooldown(0.1)
	assert.InDelta(t, 0.12, p.Cooldown, 1e-9)
	assert.False(t, p.CanFire())

	p.DecayCooldown(1)
	assert.Equal(t, 0.0, p.Cooldown)
	assert.True(t, p.CanFire())
}

func TestPlayerNoseAndBounds(t *testing.T) {
	p := NewPlayer(testScreen)

	x, y := p.Nose()
	assert.Equal(t, 240.0, x)
	assert.Equal(t, 564.0, y)

	b := p.Bounds()
	assert.Equal(t, 222.0, b.Left)
	assert.Equal(t, 258.0, b.Right)
	assert.Equal(t, 564.0, b.Top)
	assert.Equal(t, 588.0, b.Bottom)
}
