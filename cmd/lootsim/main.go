// Package main provides the loot simulation binary that drives the delve
// engine end to end: expeditions, battles, deaths, and session saves.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/delve/internal/config"
	"github.com/cory-johannsen/delve/internal/game/dice"
	"github.com/cory-johannsen/delve/internal/game/item"
	"github.com/cory-johannsen/delve/internal/game/loot"
	"github.com/cory-johannsen/delve/internal/game/session"
	"github.com/cory-johannsen/delve/internal/observability"
	"github.com/cory-johannsen/delve/internal/storage"
	"github.com/cory-johannsen/delve/internal/storage/postgres"
	"github.com/cory-johannsen/delve/internal/storage/sqlite"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	heroName := flag.String("hero", "Wanderer", "name of the simulated hero")
	expeditions := flag.Int("expeditions", 0, "number of expeditions (0 = config value)")
	maxDepth := flag.Int("max-depth", 0, "deepest room per expedition (0 = config value)")
	seed := flag.Int64("seed", 0, "dice seed override (0 = config value)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *expeditions > 0 {
		cfg.Game.Expeditions = *expeditions
	}
	if *maxDepth > 0 {
		cfg.Game.MaxDepth = *maxDepth
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	tuning := loot.DefaultTuning()
	if cfg.Game.TuningPath != "" {
		tuning, err = loot.LoadTuning(cfg.Game.TuningPath)
		if err != nil {
			logger.Fatal("loading tuning", zap.String("path", cfg.Game.TuningPath), zap.Error(err))
		}
		logger.Info("tuning loaded", zap.String("path", cfg.Game.TuningPath))
	}

	var src dice.Source
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
		logger.Info("dice seeded", zap.Int64("seed", cfg.Game.Seed))
	} else {
		src = dice.NewCryptoSource()
	}

	repoStart := time.Now()
	repo, cleanup, err := openRepository(ctx, cfg)
	if err != nil {
		logger.Fatal("opening save repository", zap.Error(err))
	}
	defer cleanup()
	logger.Info("save repository ready",
		zap.String("driver", cfg.Storage.Driver),
		zap.Duration("elapsed", time.Since(repoStart)),
	)

	generator := loot.NewGenerator(src, tuning)
	mgr := session.NewManager(generator, logger)
	game := mgr.Create(*heroName)

	sim := &simulator{game: game, src: src, logger: logger}
	for i := 1; i <= cfg.Game.Expeditions; i++ {
		sim.runExpedition(i, cfg.Game.MaxDepth)
		if err := repo.Save(ctx, game.Snapshot()); err != nil {
			logger.Fatal("saving session", zap.Error(err))
		}
		logger.Info("save written",
			zap.String("session", game.ID.String()),
			zap.Int("expedition", i),
			zap.Int("hero_level", game.Hero.Level),
			zap.Int("gold", game.Hero.Gold),
		)
	}

	// Read the save back and rebuild a session from it.
	snap, err := repo.Load(ctx, game.ID.String())
	if err != nil {
		logger.Fatal("loading save", zap.Error(err))
	}
	restored, err := session.Restore(snap, generator, logger)
	if err != nil {
		logger.Fatal("restoring session", zap.Error(err))
	}

	// The restored session replaces the live one in the registry.
	if err := mgr.Remove(game.ID); err != nil {
		logger.Fatal("retiring session", zap.Error(err))
	}
	if err := mgr.Adopt(restored); err != nil {
		logger.Fatal("adopting restored session", zap.Error(err))
	}
	logger.Info("save verified",
		zap.String("session", restored.ID.String()),
		zap.Int("hero_level", restored.Hero.Level),
		zap.Int("tombstones", restored.TombstoneCount()),
		zap.Int("active_sessions", mgr.Count()),
	)

	summaries, err := repo.List(ctx)
	if err != nil {
		logger.Fatal("listing saves", zap.Error(err))
	}

	elapsed := time.Since(start)
	fmt.Fprintf(os.Stdout, "simulation complete: hero=%s level=%d gold=%d [%s]\n",
		game.Hero.Name, game.Hero.Level, game.Hero.Gold, elapsed)
	fmt.Fprintf(os.Stdout, "  expeditions=%d chests=%d items=%d battles=%d deaths=%d\n",
		cfg.Game.Expeditions, sim.chests, sim.items, sim.battles, sim.deaths)
	fmt.Fprintf(os.Stdout, "  tombstones=%d rings_undiscovered=%d\n",
		game.TombstoneCount(), game.RingsRemaining())
	for _, s := range summaries {
		fmt.Fprintf(os.Stdout, "  save %s: hero=%s level=%d depth=%d gold=%d\n",
			s.ID, s.Hero, s.Level, s.Depth, s.Gold)
	}
}

// openRepository builds the configured SaveRepository and its cleanup function.
func openRepository(ctx context.Context, cfg config.Config) (storage.SaveRepository, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		return postgres.NewSaveRepository(pool.DB()), pool.Close, nil
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// simulator walks one hero through repeated expeditions, tallying results.
type simulator struct {
	game   *session.Game
	src    dice.Source
	logger *zap.Logger

	chests  int
	items   int
	battles int
	deaths  int
}

// runExpedition descends toward a rolled target depth, inspecting each room
// and fighting along the way. Defeat ends the expedition at the surface.
func (s *simulator) runExpedition(n, maxDepth int) {
	g := s.game
	target := 1 + s.src.Intn(maxDepth)
	s.logger.Info("expedition started",
		zap.Int("expedition", n),
		zap.Int("target_depth", target),
	)

	for g.Depth < target {
		g.Descend()

		if pickup, found := g.Inspect(); found {
			s.chests++
			s.items += pickup.TotalItems()
			s.useFindings(pickup)
		}

		// A fight breaks out in roughly one room of every three.
		if s.src.Intn(3) == 0 && !s.fight() {
			return
		}

		s.quaffIfHurt()
	}

	// Tear an escape scroll when one is on hand, otherwise walk home.
	if err := g.UseItem(item.KeyEscape); err != nil {
		for g.Depth > 0 {
			g.Ascend()
		}
	}
	s.logger.Info("expedition complete",
		zap.Int("expedition", n),
		zap.Int("hero_level", g.Hero.Level),
		zap.Int("gold", g.Hero.Gold),
	)
}

// fight plays one battle. Returns false when the hero is defeated; the
// session buries the inventory in a tombstone and respawns the hero.
func (s *simulator) fight() bool {
	g := s.game
	s.battles++

	damage := s.src.Intn(g.Hero.MaxHP/2 + 1)
	if damage >= g.Hero.CurrentHP {
		s.deaths++
		g.Die()
		return false
	}
	g.Hero.CurrentHP -= damage

	if pickup, found := g.BattleSpoils(); found {
		s.items += pickup.TotalItems()
		s.useFindings(pickup)
	}
	g.Hero.GainExperience(10 + g.Depth*2)
	return true
}

// useFindings equips newly found rings and uses stat stones on the spot.
// The evade band stays in the pack; wearing it suppresses every future chest.
func (s *simulator) useFindings(pickup *loot.Pickup) {
	for _, kind := range item.RingKinds() {
		if kind == item.RingEvade {
			continue
		}
		key := item.Ring{Kind: kind}.Key()
		if pickup.Items[key] > 0 {
			_ = s.game.UseItem(key)
		}
	}
	stones := []item.Key{
		item.KeyHealthStone, item.KeyMagicStone, item.KeyPowerStone,
		item.KeySpeedStone, item.KeyLevelStone,
	}
	for _, key := range stones {
		for n := pickup.Items[key]; n > 0; n-- {
			if err := s.game.UseItem(key); err != nil {
				break
			}
		}
	}
}

// quaffIfHurt drinks a potion below half health. Holding none is fine.
func (s *simulator) quaffIfHurt() {
	g := s.game
	if g.Hero.CurrentHP*2 < g.Hero.MaxHP {
		_ = g.UseItem(item.KeyPotion)
	}
}
