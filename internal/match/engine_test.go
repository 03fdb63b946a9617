package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPointIncrement(t *testing.T) {
	tests := []struct {
		name         string
		p1, p2       int
		player       int
		maxPoints    int
		deuce        bool
		wantP1       int
		wantP2       int
		wantComplete bool
	}{
		{
			name: "early rally point", p1: 5, p2: 3, player: 1,
			maxPoints: 21, deuce: true,
			wantP1: 6, wantP2: 3, wantComplete: false,
		},
		{
			name: "reaching 21 with two point lead completes", p1: 20, p2: 19, player: 1,
			maxPoints: 21, deuce: true,
			wantP1: 21, wantP2: 19, wantComplete: true,
		},
		{
			name: "reaching 21 at deuce does not complete", p1: 20, p2: 20, player: 1,
			maxPoints: 21, deuce: true,
			wantP1: 21, wantP2: 20, wantComplete: false,
		},
		{
			name: "two point lead past 21 completes", p1: 21, p2: 20, player: 1,
			maxPoints: 21, deuce: true,
			wantP1: 22, wantP2: 20, wantComplete: true,
		},
		{
			name: "deuce extends indefinitely", p1: 28, p2: 28, player: 2,
			maxPoints: 21, deuce: true,
			wantP1: 28, wantP2: 29, wantComplete: false,
		},
		{
			name: "deuce disabled completes at max regardless of margin", p1: 20, p2: 20, player: 1,
			maxPoints: 21, deuce: false,
			wantP1: 21, wantP2: 20, wantComplete: true,
		},
		{
			name: "deuce disabled normal win", p1: 20, p2: 15, player: 1,
			maxPoints: 21, deuce: false,
			wantP1: 21, wantP2: 15, wantComplete: true,
		},
		{
			name: "custom max points", p1: 10, p2: 8, player: 1,
			maxPoints: 11, deuce: true,
			wantP1: 11, wantP2: 8, wantComplete: true,
		},
		{
			name: "player two scoring", p1: 3, p2: 20, player: 2,
			maxPoints: 21, deuce: true,
			wantP1: 3, wantP2: 21, wantComplete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2, completed, err := ApplyPoint(tt.p1, tt.p2, false, tt.player, ActionIncrement, tt.maxPoints, tt.deuce)
			require.NoError(t, err)
			assert.Equal(t, tt.wantP1, p1)
			assert.Equal(t, tt.wantP2, p2)
			assert.Equal(t, tt.wantComplete, completed)
		})
	}
}

func TestApplyPointDecrement(t *testing.T) {
	t.Run("decrement takes a point back", func(t *testing.T) {
		p1, p2, completed, err := ApplyPoint(5, 3, false, 1, ActionDecrement, 21, true)
		require.NoError(t, err)
		assert.Equal(t, 4, p1)
		assert.Equal(t, 3, p2)
		assert.False(t, completed)
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		p1, p2, completed, err := ApplyPoint(0, 5, false, 1, ActionDecrement, 21, true)
		require.NoError(t, err)
		assert.Equal(t, 0, p1)
		assert.Equal(t, 5, p2)
		assert.False(t, completed)
	})

	t.Run("decrement below win threshold leaves set open", func(t *testing.T) {
		p1, p2, completed, err := ApplyPoint(20, 10, false, 1, ActionDecrement, 21, true)
		require.NoError(t, err)
		assert.Equal(t, 19, p1)
		assert.Equal(t, 10, p2)
		assert.False(t, completed)
	})
}

func TestApplyPointRejections(t *testing.T) {
	t.Run("completed set rejects further scoring", func(t *testing.T) {
		p1, p2, completed, err := ApplyPoint(21, 19, true, 1, ActionIncrement, 21, true)
		require.ErrorIs(t, err, ErrSetCompleted)
		assert.Equal(t, 21, p1)
		assert.Equal(t, 19, p2)
		assert.True(t, completed)
	})

	t.Run("invalid player", func(t *testing.T) {
		_, _, _, err := ApplyPoint(0, 0, false, 3, ActionIncrement, 21, true)
		require.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("invalid action", func(t *testing.T) {
		_, _, _, err := ApplyPoint(0, 0, false, 1, ScoreAction("reset"), 21, true)
		require.ErrorIs(t, err, ErrInvalidAction)
	})
}
