package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/delve/internal/game/equipment"
)

func TestEquipment_IsUpgradeFrom_EmptySlot(t *testing.T) {
	sword := equipment.NewSword(1)
	assert.True(t, sword.IsUpgradeFrom(nil))
}

func TestEquipment_IsUpgradeFrom_StrictlyGreater(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		candidate int
		want      bool
	}{
		{name: "higher level upgrades", current: 5, candidate: 6, want: true},
		{name: "equal level does not upgrade", current: 5, candidate: 5, want: false},
		{name: "lower level does not upgrade", current: 5, candidate: 4, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := equipment.NewShield(tt.candidate)
			current := equipment.NewShield(tt.current)
			assert.Equal(t, tt.want, candidate.IsUpgradeFrom(current))
		})
	}
}

func TestEquipment_String(t *testing.T) {
	assert.Equal(t, "sword[12]", equipment.NewSword(12).String())
	assert.Equal(t, "shield[3]", equipment.NewShield(3).String())
}

func TestUpgrade_FillsEmptySlot(t *testing.T) {
	var held *equipment.Equipment
	candidate := equipment.NewSword(5)

	upgraded := equipment.Upgrade(&held, &candidate)

	require.True(t, upgraded)
	require.NotNil(t, held)
	assert.Equal(t, 5, held.Level)
	assert.Nil(t, candidate, "candidate slot must be emptied")
}

func TestUpgrade_ReplacesWeakerPiece(t *testing.T) {
	held := equipment.NewShield(2)
	candidate := equipment.NewShield(9)

	upgraded := equipment.Upgrade(&held, &candidate)

	require.True(t, upgraded)
	assert.Equal(t, 9, held.Level)
	assert.Nil(t, candidate)
}

func TestUpgrade_DiscardsEqualPiece(t *testing.T) {
	held := equipment.NewSword(7)
	candidate := equipment.NewSword(7)

	upgraded := equipment.Upgrade(&held, &candidate)

	require.False(t, upgraded)
	assert.Equal(t, 7, held.Level)
	assert.Nil(t, candidate, "losing candidate is consumed, not returned")
}

func TestUpgrade_DiscardsWeakerPiece(t *testing.T) {
	held := equipment.NewSword(7)
	candidate := equipment.NewSword(3)

	upgraded := equipment.Upgrade(&held, &candidate)

	require.False(t, upgraded)
	assert.Equal(t, 7, held.Level)
	assert.Nil(t, candidate)
}

func TestUpgrade_EmptyCandidateIsNoOp(t *testing.T) {
	held := equipment.NewShield(4)
	var candidate *equipment.Equipment

	upgraded := equipment.Upgrade(&held, &candidate)

	require.False(t, upgraded)
	assert.Equal(t, 4, held.Level)
}
