package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/results"
	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/strategy"
)

type CLI struct {
	Rounds   int    `help:"Rounds per strategy run (overrides config file)"`
	Seed     int64  `default:"1" help:"RNG seed for reproducible runs"`
	Output   string `default:"results" help:"Directory for result records"`
	Config   string `default:"sim.hcl" help:"HCL configuration file (optional)"`
	Parallel bool   `help:"Run strategy simulations concurrently"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

// runSpec names one simulation run and how to build its strategy. The card
// counter plays a penetrated shoe; every other run reshuffles per the table
// settings.
type runSpec struct {
	seedOffset     int64
	usePenetration bool
	factory        func(shoe *deck.Shoe) (strategy.Strategy, error)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Run blackjack strategy simulations and write summary records"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cli.Rounds > 0 {
		cfg.Table.Rounds = cli.Rounds
	}

	specs := buildRuns(cfg)
	logger.Info("starting simulations",
		"runs", len(specs),
		"rounds", cfg.Table.Rounds,
		"seed", cli.Seed,
		"output", cli.Output,
	)

	runOne := func(spec runSpec) error {
		simCfg := simulator.Config{
			Rounds:             cfg.Table.Rounds,
			Decks:              cfg.Table.Decks,
			Penetration:        cfg.Table.Penetration,
			ReshuffleEachRound: *cfg.Table.ReshuffleEachRound && !spec.usePenetration,
			BlackjackPayout:    cfg.Table.BlackjackPayout,
			Seed:               cli.Seed + spec.seedOffset,
			Logger:             logger,
		}
		sim := simulator.New(simCfg)

		summary, name, err := sim.RunStrategy(spec.factory)
		if err != nil {
			return err
		}
		if err := results.Write(cli.Output, summary.Record(name)); err != nil {
			return err
		}

		logger.Info("run complete",
			"strategy", name,
			"games", summary.Games,
			"profit", fmt.Sprintf("%.2f", summary.Profit),
			"win_rate", fmt.Sprintf("%.4f", summary.WinRate()),
			"loss_rate", fmt.Sprintf("%.4f", summary.LossRate()),
			"push_rate", fmt.Sprintf("%.4f", summary.PushRate()),
			"avg_bet", fmt.Sprintf("%.2f", summary.AvgBet()),
			"max_bet", summary.MaxBet,
		)
		return nil
	}

	if cli.Parallel {
		// Each run owns its shoe and strategy state, so runs only share the
		// results directory and the logger.
		var g errgroup.Group
		for _, spec := range specs {
			g.Go(func() error { return runOne(spec) })
		}
		return g.Wait()
	}

	for _, spec := range specs {
		if err := runOne(spec); err != nil {
			return err
		}
	}
	return nil
}

// buildRuns assembles the full study: the four named strategies, the
// martingale bettor, and the fixed-threshold sweep.
func buildRuns(cfg *config.SimConfig) []runSpec {
	baseBet := cfg.Table.BaseBet

	specs := []runSpec{
		{
			factory: func(_ *deck.Shoe) (strategy.Strategy, error) {
				return strategy.NewMimicDealer(baseBet)
			},
		},
		{
			factory: func(_ *deck.Shoe) (strategy.Strategy, error) {
				return strategy.NewDealerWeakness(baseBet)
			},
		},
		{
			factory: func(_ *deck.Shoe) (strategy.Strategy, error) {
				return strategy.NewBasic(baseBet)
			},
		},
		{
			// The counter reads the running count off the shoe it plays, and
			// its shoe shuffles on penetration instead of every round.
			usePenetration: true,
			factory: func(shoe *deck.Shoe) (strategy.Strategy, error) {
				return strategy.NewCardCounter(shoe, cfg.Counter.MinBet, cfg.Counter.MaxBet)
			},
		},
		{
			factory: func(_ *deck.Shoe) (strategy.Strategy, error) {
				return strategy.NewMartingale(baseBet, cfg.Martingale.MaxDoublings)
			},
		},
	}

	for threshold := cfg.Sweep.From; threshold <= cfg.Sweep.To; threshold++ {
		specs = append(specs, runSpec{
			factory: func(_ *deck.Shoe) (strategy.Strategy, error) {
				return strategy.NewFixedThreshold(threshold, baseBet)
			},
		})
	}

	for i := range specs {
		specs[i].seedOffset = int64(i)
	}
	return specs
}
