package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/delve/internal/game/item"
)

// recorder captures every Receiver mutation so item effects can be
// asserted without a live game session.
type recorder struct {
	healthRestored int
	magicRestored  int
	cured          bool
	wentHome       bool
	maxHealthRaise int
	maxMagicRaise  int
	strengthRaise  int
	speedRaise     int
	levelsGained   int
	equipped       []item.Ring
}

func (r *recorder) RestoreHealth(points int) { r.healthRestored += points }
func (r *recorder) RestoreMagic(points int)  { r.magicRestored += points }
func (r *recorder) Cure()                    { r.cured = true }
func (r *recorder) ReturnHome()              { r.wentHome = true }
func (r *recorder) RaiseMaxHealth(points int) {
	r.maxHealthRaise += points
}
func (r *recorder) RaiseMaxMagic(points int) { r.maxMagicRaise += points }
func (r *recorder) RaiseStrength(points int) { r.strengthRaise += points }
func (r *recorder) RaiseSpeed(points int)    { r.speedRaise += points }
func (r *recorder) GainLevel()               { r.levelsGained++ }
func (r *recorder) EquipRing(ring item.Ring) {
	r.equipped = append(r.equipped, ring)
}

func TestPotion_Apply_ScalesWithLevel(t *testing.T) {
	r := &recorder{}
	item.Potion{Level: 5}.Apply(r)
	assert.Equal(t, 125, r.healthRestored)
}

func TestEther_Apply_ScalesWithLevel(t *testing.T) {
	r := &recorder{}
	item.Ether{Level: 4}.Apply(r)
	assert.Equal(t, 60, r.magicRestored)
}

func TestRemedy_Apply_Cures(t *testing.T) {
	r := &recorder{}
	item.Remedy{}.Apply(r)
	assert.True(t, r.cured)
}

func TestEscape_Apply_ReturnsHome(t *testing.T) {
	r := &recorder{}
	item.Escape{}.Apply(r)
	assert.True(t, r.wentHome)
}

func TestStones_Apply_GrantPermanentBonuses(t *testing.T) {
	r := &recorder{}

	item.HealthStone{}.Apply(r)
	item.MagicStone{}.Apply(r)
	item.PowerStone{}.Apply(r)
	item.SpeedStone{}.Apply(r)
	item.LevelStone{}.Apply(r)

	assert.Equal(t, 25, r.maxHealthRaise)
	assert.Equal(t, 15, r.maxMagicRaise)
	assert.Equal(t, 3, r.strengthRaise)
	assert.Equal(t, 3, r.speedRaise)
	assert.Equal(t, 1, r.levelsGained)
}

func TestNew_ConstructsEveryVariant(t *testing.T) {
	keys := []item.Key{
		item.KeyPotion,
		item.KeyRemedy,
		item.KeyEscape,
		item.KeyEther,
		item.KeyHealthStone,
		item.KeyMagicStone,
		item.KeyPowerStone,
		item.KeySpeedStone,
		item.KeyLevelStone,
	}
	for _, kind := range item.RingKinds() {
		keys = append(keys, item.Ring{Kind: kind}.Key())
	}

	for _, key := range keys {
		it, err := item.New(key, 1)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, key, it.Key())
	}
}

func TestNew_RejectsUnknownKeys(t *testing.T) {
	for _, key := range []item.Key{"elixir", "doom-ring", item.KeySword, item.KeyShield} {
		_, err := item.New(key, 1)
		assert.ErrorIs(t, err, item.ErrUnknownKey, "key %q", key)
	}
}

func TestSnapshot_PreservesLevels(t *testing.T) {
	rec := item.Snapshot(item.Potion{Level: 10})
	assert.Equal(t, item.Record{Key: item.KeyPotion, Level: 10}, rec)

	rec = item.Snapshot(item.Ether{Level: 3})
	assert.Equal(t, item.Record{Key: item.KeyEther, Level: 3}, rec)

	rec = item.Snapshot(item.Remedy{})
	assert.Equal(t, item.Record{Key: item.KeyRemedy}, rec)

	restored, err := item.New(rec.Key, rec.Level)
	require.NoError(t, err)
	assert.Equal(t, item.Remedy{}, restored)
}
