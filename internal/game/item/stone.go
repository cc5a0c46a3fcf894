package item

// Stones grant a small permanent bonus and are consumed on use. Unlike
// potions they never scale with level; scarcity does the balancing.
const (
	healthStoneBonus = 25
	magicStoneBonus  = 15
	powerStoneBonus  = 3
	speedStoneBonus  = 3
)

var (
	_ Item = HealthStone{}
	_ Item = MagicStone{}
	_ Item = PowerStone{}
	_ Item = SpeedStone{}
	_ Item = LevelStone{}
)

// HealthStone permanently raises the health maximum.
type HealthStone struct{}

func (HealthStone) Key() Key { return KeyHealthStone }

func (HealthStone) Apply(r Receiver) {
	r.RaiseMaxHealth(healthStoneBonus)
}

// MagicStone permanently raises the magic maximum.
type MagicStone struct{}

func (MagicStone) Key() Key { return KeyMagicStone }

func (MagicStone) Apply(r Receiver) {
	r.RaiseMaxMagic(magicStoneBonus)
}

// PowerStone permanently raises strength.
type PowerStone struct{}

func (PowerStone) Key() Key { return KeyPowerStone }

func (PowerStone) Apply(r Receiver) {
	r.RaiseStrength(powerStoneBonus)
}

// SpeedStone permanently raises speed.
type SpeedStone struct{}

func (SpeedStone) Key() Key { return KeySpeedStone }

func (SpeedStone) Apply(r Receiver) {
	r.RaiseSpeed(speedStoneBonus)
}

// LevelStone advances the hero a whole level.
type LevelStone struct{}

func (LevelStone) Key() Key { return KeyLevelStone }

func (LevelStone) Apply(r Receiver) {
	r.GainLevel()
}
