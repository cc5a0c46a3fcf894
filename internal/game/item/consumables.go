package item

const (
	healthPerPotionLevel = 25
	magicPerEtherLevel   = 15
)

var (
	_ Item = Potion{}
	_ Item = Remedy{}
	_ Item = Escape{}
	_ Item = Ether{}
)

// Potion restores health in proportion to its level.
type Potion struct {
	Level int
}

func (p Potion) Key() Key { return KeyPotion }

func (p Potion) Apply(r Receiver) {
	r.RestoreHealth(p.Level * healthPerPotionLevel)
}

// Remedy cures whatever ailment the hero currently suffers.
type Remedy struct{}

func (Remedy) Key() Key { return KeyRemedy }

func (Remedy) Apply(r Receiver) {
	r.Cure()
}

// Escape pulls the expedition straight back to the surface.
type Escape struct{}

func (Escape) Key() Key { return KeyEscape }

func (Escape) Apply(r Receiver) {
	r.ReturnHome()
}

// Ether recovers magic in proportion to its level.
type Ether struct {
	Level int
}

func (e Ether) Key() Key { return KeyEther }

func (e Ether) Apply(r Receiver) {
	r.RestoreMagic(e.Level * magicPerEtherLevel)
}
