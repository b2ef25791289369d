package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-core/game"
	"github.com/lox/holdem-core/internal/randutil"
	"github.com/lox/holdem-core/internal/render"
	"github.com/lox/holdem-core/internal/tablecfg"
)

type CLI struct {
	Config     string `short:"c" default:"table.hcl" help:"Table configuration file (HCL)"`
	Hands      int    `help:"Number of hands to play (overrides config)"`
	Seed       int64  `help:"RNG seed, 0 for random (overrides config)"`
	SmallBlind int    `help:"Small blind (overrides config)"`
	BigBlind   int    `help:"Big blind (overrides config)"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := tablecfg.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if cli.Hands > 0 {
		cfg.Table.Hands = cli.Hands
	}
	if cli.Seed != 0 {
		cfg.Table.Seed = cli.Seed
	}
	if cli.BigBlind > 0 {
		cfg.Table.SmallBlind = cli.SmallBlind
		cfg.Table.BigBlind = cli.BigBlind
	}
	if cfg.Table.Seed == 0 {
		cfg.Table.Seed = time.Now().UnixNano()
	}

	level, err := log.ParseLevel(cfg.Table.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	if err := run(cfg, logger); err != nil {
		log.Fatal("Game failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cfg *tablecfg.Config, logger *log.Logger) error {
	r := render.New()
	fmt.Println(r.Title())
	fmt.Println()

	rng := randutil.New(cfg.Table.Seed)
	logger.Info("starting session",
		"hands", cfg.Table.Hands, "players", len(cfg.Players), "seed", cfg.Table.Seed)

	stacks := make(map[string]int, len(cfg.Players))
	for _, p := range cfg.Players {
		stacks[p.Name] = p.Chips
	}

	button := 0
	for n := 0; n < cfg.Table.Hands; n++ {
		// Busted players leave the table; stacks carry between hands.
		var seats []game.Seat
		var agents []game.Agent
		for _, p := range cfg.Players {
			if stacks[p.Name] <= 0 {
				continue
			}
			seats = append(seats, game.Seat{Name: p.Name, Chips: stacks[p.Name]})
			agents = append(agents, newAgent(p.Strategy, rng))
		}
		if len(seats) < 2 {
			logger.Info("session over, one stack left")
			break
		}

		hand, err := game.NewHand(rng, seats,
			game.WithBlinds(cfg.Table.SmallBlind, cfg.Table.BigBlind),
			game.WithButton(button%len(seats)),
			game.WithLogger(logger),
			game.WithEventSink(func(e game.Event) {
				if a, ok := e.(game.PlayerActionEvent); ok {
					fmt.Println(r.Action(a))
				}
			}),
		)
		if err != nil {
			return err
		}

		engine, err := game.NewEngine(hand, agents,
			game.WithEngineLogger(logger),
			game.WithDecisionTimeout(time.Duration(cfg.Table.TimeoutSeconds)*time.Second))
		if err != nil {
			return err
		}

		fmt.Printf("--- hand %d ---\n", n+1)
		result, err := engine.Run()
		if err != nil {
			return err
		}
		fmt.Print(r.Result(hand, result))
		fmt.Println()

		for _, p := range hand.Players {
			stacks[p.Name] = p.Chips
		}
		button++
	}

	fmt.Println(r.Title())
	for _, p := range cfg.Players {
		fmt.Printf("%-10s %5d chips\n", p.Name, stacks[p.Name])
	}
	return nil
}

func newAgent(strategy string, rng *rand.Rand) game.Agent {
	switch strategy {
	case "random":
		return game.RandomAgent{Rng: rng}
	default:
		return game.CallingAgent{}
	}
}
