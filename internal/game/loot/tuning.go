package loot

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/delve/internal/game/dice"
)

// Tuning holds the declared balance knobs: the four chance curves and
// the gold scaling range. The equipment and item reward tables are fixed
// and deliberately not tunable.
type Tuning struct {
	Gold      dice.Odds `yaml:"gold"`
	Equipment dice.Odds `yaml:"equipment"`
	Ring      dice.Odds `yaml:"ring"`
	Item      dice.Odds `yaml:"item"`

	// Gold amounts roll uniformly in [min*(level+distance), max*(level+distance)].
	GoldPerLevelMin int `yaml:"gold_per_level_min"`
	GoldPerLevelMax int `yaml:"gold_per_level_max"`
}

// DefaultTuning returns the shipped balance values.
func DefaultTuning() *Tuning {
	return &Tuning{
		Gold:            dice.Odds{Base: 0.25, Cap: 0.75, Midpoint: 10},
		Equipment:       dice.Odds{Base: 0.10, Cap: 0.40, Midpoint: 15},
		Ring:            dice.Odds{Base: 0.05, Cap: 0.25, Midpoint: 20},
		Item:            dice.Odds{Base: 0.30, Cap: 0.80, Midpoint: 8},
		GoldPerLevelMin: 20,
		GoldPerLevelMax: 60,
	}
}

// LoadTuning reads a YAML tuning file. Missing fields keep their default
// values, so a file may override a single curve. The result is
// validated.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning file: %w", err)
	}

	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("parsing tuning file %s: %w", path, err)
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return tuning, nil
}

// Validate checks every curve and the gold range, reporting all problems
// at once.
func (t *Tuning) Validate() error {
	var errs []string

	curves := []struct {
		name string
		odds dice.Odds
	}{
		{name: "gold", odds: t.Gold},
		{name: "equipment", odds: t.Equipment},
		{name: "ring", odds: t.Ring},
		{name: "item", odds: t.Item},
	}
	for _, c := range curves {
		if err := c.odds.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("%s odds: %s", c.name, err))
		}
	}

	if t.GoldPerLevelMin <= 0 {
		errs = append(errs, fmt.Sprintf("gold_per_level_min must be positive, got %d", t.GoldPerLevelMin))
	}
	if t.GoldPerLevelMax < t.GoldPerLevelMin {
		errs = append(errs, fmt.Sprintf("gold_per_level_max %d is below gold_per_level_min %d",
			t.GoldPerLevelMax, t.GoldPerLevelMin))
	}

	if len(errs) > 0 {
		return fmt.Errorf("tuning validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
