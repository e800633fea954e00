package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerChargeShot(t *testing.T) {
	t.Parallel()

	t.Run("entry and exit each cost one", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 1)
		assert.Equal(t, 2, l.ChargeShot(C(0, 5), ExitedAt(C(9, 5))))
		assert.Equal(t, 23, l.Score())
	})

	t.Run("same pair again is free", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 1)
		l.ChargeShot(C(0, 5), ExitedAt(C(9, 5)))
		assert.Zero(t, l.ChargeShot(C(0, 5), ExitedAt(C(9, 5))))
		assert.Zero(t, l.ChargeShot(C(9, 5), ExitedAt(C(0, 5))), "reverse direction uses the same cells")
		assert.Equal(t, 23, l.Score())
	})

	t.Run("absorbed charges entry only", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 1)
		assert.Equal(t, 1, l.ChargeShot(C(0, 2), AbsorbedOutcome()))
		assert.Equal(t, 24, l.Score())
	})

	t.Run("reflection charges once", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 1)
		assert.Equal(t, 1, l.ChargeShot(C(0, 5), ExitedAt(C(0, 5))))
		assert.Equal(t, 24, l.Score())
	})

	t.Run("exit shared with earlier entry", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 1)
		l.ChargeShot(C(0, 3), AbsorbedOutcome())
		assert.Equal(t, 1, l.ChargeShot(C(3, 0), ExitedAt(C(0, 3))))
		assert.Equal(t, 23, l.Score())
		assert.Equal(t, []Coord{C(0, 3), C(3, 0)}, l.ChargedBorders())
		assert.True(t, l.IsCharged(C(3, 0)))
		assert.False(t, l.IsCharged(C(9, 3)))
	})
}

func TestLedgerChargeGuess(t *testing.T) {
	t.Parallel()

	t.Run("wrong guess charged once", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 2)
		assert.Equal(t, 5, l.ChargeGuess(C(5, 5), false))
		assert.Zero(t, l.ChargeGuess(C(5, 5), false))
		assert.Equal(t, 20, l.Score())
		assert.Equal(t, []Coord{C(5, 5)}, l.WrongGuesses())
	})

	t.Run("correct guess is free and reveals an atom", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 2)
		assert.Zero(t, l.ChargeGuess(C(3, 2), true))
		assert.Equal(t, 25, l.Score())
		assert.Equal(t, 1, l.AtomsRemaining())
	})

	t.Run("repeated correct guess is idempotent", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 2)
		l.ChargeGuess(C(3, 2), true)
		l.ChargeGuess(C(3, 2), true)
		assert.Equal(t, 1, l.AtomsRemaining())
		assert.Equal(t, []Coord{C(3, 2)}, l.Found())
	})

	t.Run("remaining never below zero", func(t *testing.T) {
		l := NewLedger(DefaultRules(), 1)
		l.ChargeGuess(C(3, 2), true)
		l.ChargeGuess(C(4, 4), true)
		assert.Zero(t, l.AtomsRemaining())
	})
}

func TestLedgerScoreHasNoFloor(t *testing.T) {
	t.Parallel()

	l := NewLedger(DefaultRules(), 1)
	for col := 1; col <= 6; col++ {
		l.ChargeGuess(C(4, col), false)
	}
	assert.Equal(t, -5, l.Score())
}

func TestLedgerCustomRules(t *testing.T) {
	t.Parallel()

	l := NewLedger(Rules{StartingScore: 100, BorderCost: 2, WrongGuessCost: 10}, 1)
	l.ChargeShot(C(0, 5), ExitedAt(C(9, 5)))
	l.ChargeGuess(C(5, 5), false)
	assert.Equal(t, 86, l.Score())
}

func TestRulesValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultRules().Validate())
	assert.Error(t, Rules{StartingScore: 25, BorderCost: -1, WrongGuessCost: 5}.Validate())
	assert.Error(t, Rules{StartingScore: 25, BorderCost: 1, WrongGuessCost: -5}.Validate())
}
