package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/maxludovicohofer/act-by-belief/brain"
	"github.com/maxludovicohofer/act-by-belief/need"
	"github.com/maxludovicohofer/act-by-belief/react"
)

const (
	chaosKey    = "chaos"
	reactionKey = "reaction"
	stepsKey    = "steps"
	seedKey     = "seed"
	validateKey = "validate"
)

func main() {
	cmd := &cli.Command{
		Name:  "simulate",
		Usage: "Walk a forager through a few rounds of its world",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  chaosKey,
				Usage: "Personality chaos factor for motive offsets",
				Value: 0.02,
			},
			&cli.DurationFlag{
				Name:  reactionKey,
				Usage: "Minimum reaction time of the most urgent motive",
				Value: 200 * time.Millisecond,
			},
			&cli.UintFlag{
				Name:  stepsKey,
				Usage: "Number of world steps to simulate",
				Value: 8,
			},
			&cli.UintFlag{
				Name:  seedKey,
				Usage: "Seed for the personality draw",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  validateKey,
				Usage: "Validate ranges while wiring the brain",
				Value: true,
			},
		},
		Action: simulate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func simulate(ctx context.Context, cmd *cli.Command) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	sched := react.NewManualScheduler()
	forager, err := brain.New(brain.Config{
		Name:      "forager",
		Scheduler: sched,
		Reaction:  cmd.Duration(reactionKey),
		Chaos:     cmd.Float(chaosKey),
		Rand:      rand.New(rand.NewSource(int64(cmd.Uint(seedKey)))),
		Observer:  brain.SlogObserver(logger),
		Validate:  cmd.Bool(validateKey),
	})
	if err != nil {
		return err
	}
	defer forager.Die()

	// Raw world readings, pushed in by the loop below. predator is the
	// distance to the nearest one.
	energy := react.New(func(s *react.Signal) float64 {
		return react.SensedOr(s, 100.0)
	})
	predator := react.New(func(s *react.Signal) float64 {
		return react.SensedOr(s, 60.0)
	})
	alone := react.New(func(s *react.Signal) float64 {
		return react.SensedOr(s, 0.0)
	})

	// Derived needs. hunger and fatigue both watch energy, and the forage
	// urge reads hunger against danger, so a single energy reading fans out
	// through a diamond before settling.
	hunger := react.New(func(s *react.Signal) need.Need {
		return need.WhenDecreasing(react.Get(s, energy), 100, 0)
	})
	fatigue := react.New(func(s *react.Signal) need.Need {
		return need.WhenDecreasing(react.Get(s, energy), 80, 20).Min(need.Urgent)
	})
	danger := react.New(func(s *react.Signal) need.Need {
		return need.Near(0, react.Get(s, predator), 50)
	})
	forage := react.New(func(s *react.Signal) need.Need {
		// hungry, but not while something is looming
		return react.Get(s, hunger).Sub(react.Get(s, danger))
	})
	lonely := react.New(func(s *react.Signal) need.Need {
		return need.WhenIncreasing(react.Get(s, alone), 7, 0)
	})

	for name, reg := range map[string]struct {
		belief *react.Belief[need.Need]
		motive brain.Motive
	}{
		"flee":   {danger, brain.Survival},
		"eat":    {forage, brain.Safety},
		"belong": {lonely, brain.Belonging},
		"rest":   {fatigue, brain.Esteem},
		"wander": {nil, brain.Purpose},
	} {
		if _, err := forager.Need(name, reg.belief, reg.motive); err != nil {
			return err
		}
	}

	var sightings []string
	forager.Watch("energy", func() any { return energy.Value() })
	forager.Watch("seen", func() any { return sightings })

	steps := int(cmd.Uint(stepsKey))
	for i := 0; i < steps; i++ {
		energy.Sense(100 - 12*float64(i))
		predator.Sense(max(60-10*float64(i), 0))
		alone.Sense(float64(i))
		if i%3 == 2 {
			sightings = append(sightings, "wolf tracks")
		}

		if i == steps/2 {
			logger.Info("adrenaline kicks in, halving reaction time")
			if err := forager.SetReactionTime(cmd.Duration(reactionKey) / 2); err != nil {
				return err
			}
		}

		sched.Advance(250 * time.Millisecond)

		logger.Info("round complete", "step", i, "energy", energy.Value())
		renderView(forager.View())
	}

	return nil
}

func renderView(view map[string]string) {
	keys := make([]string, 0, len(view))
	for k := range view {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"belief", "value"})
	for _, k := range keys {
		tbl.Append([]string{k, view[k]})
	}
	tbl.Render()
}
