package main

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-core/game"
	"github.com/lox/holdem-core/internal/randutil"
)

type CLI struct {
	Hands      int    `default:"10000" help:"Number of hands to simulate"`
	Players    int    `default:"3" help:"Players per hand (2-9)"`
	Chips      int    `default:"200" help:"Starting stack per player"`
	SmallBlind int    `default:"1" help:"Small blind"`
	BigBlind   int    `default:"2" help:"Big blind"`
	Strategy   string `default:"random" enum:"random,call" help:"Strategy for every seat"`
	Workers    int    `default:"0" help:"Parallel workers (0 = GOMAXPROCS)"`
	Seed       int64  `default:"0" help:"RNG seed (0 for random)"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

// HandOutcome summarises one simulated hand
type HandOutcome struct {
	Seed           int64
	Pot            int
	WentToShowdown bool
	WinnerSeats    []int
}

// Statistics aggregates outcomes across the run
type Statistics struct {
	Hands     int
	SumPot    float64
	SumPot2   float64
	MaxPot    int
	Showdowns int
	FoldOuts  int
	SeatWins  []int
}

func NewStatistics(players int) *Statistics {
	return &Statistics{SeatWins: make([]int, players)}
}

func (s *Statistics) Add(o HandOutcome) {
	s.Hands++
	pot := float64(o.Pot)
	s.SumPot += pot
	s.SumPot2 += pot * pot
	if o.Pot > s.MaxPot {
		s.MaxPot = o.Pot
	}
	if o.WentToShowdown {
		s.Showdowns++
	} else {
		s.FoldOuts++
	}
	for _, seat := range o.WinnerSeats {
		s.SeatWins[seat]++
	}
}

func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumPot += other.SumPot
	s.SumPot2 += other.SumPot2
	if other.MaxPot > s.MaxPot {
		s.MaxPot = other.MaxPot
	}
	s.Showdowns += other.Showdowns
	s.FoldOuts += other.FoldOuts
	for i, wins := range other.SeatWins {
		s.SeatWins[i] += wins
	}
}

func (s *Statistics) MeanPot() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumPot / float64(s.Hands)
}

func (s *Statistics) StdDevPot() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.MeanPot()
	return math.Sqrt((s.SumPot2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.Players < 2 || cli.Players > 9 {
		log.Fatal("Players must be between 2 and 9", "players", cli.Players)
	}
	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}
	if cli.Workers <= 0 {
		cli.Workers = runtime.GOMAXPROCS(0)
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	fmt.Printf("Simulating %d hands (%d players, %s strategy, %d workers, seed %d)\n\n",
		cli.Hands, cli.Players, cli.Strategy, cli.Workers, cli.Seed)

	start := time.Now()
	stats, err := runSimulation(cli, logger)
	if err != nil {
		log.Fatal("Simulation failed", "error", err)
	}
	printResults(stats, time.Since(start))

	ctx.Exit(0)
}

func runSimulation(cli CLI, logger *log.Logger) (*Statistics, error) {
	master := randutil.New(cli.Seed)

	handsPerWorker := cli.Hands / cli.Workers
	remainder := cli.Hands % cli.Workers

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan *Statistics, cli.Workers)

	for w := 0; w < cli.Workers; w++ {
		workerHands := handsPerWorker
		if w < remainder {
			workerHands++
		}
		workerSeed := int64(master.Uint64())

		g.Go(func() error {
			stats, err := runWorker(cli, workerSeed, workerHands, logger)
			if err != nil {
				return err
			}
			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	total := NewStatistics(cli.Players)
	for stats := range results {
		total.Merge(stats)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}

// runWorker plays its share of hands sequentially on an independent RNG
func runWorker(cli CLI, seed int64, hands int, logger *log.Logger) (*Statistics, error) {
	rng := randutil.New(seed)
	stats := NewStatistics(cli.Players)

	for i := 0; i < hands; i++ {
		handSeed := int64(rng.Uint64())
		outcome, err := playHand(cli, handSeed, logger)
		if err != nil {
			return nil, fmt.Errorf("hand with seed %d: %w", handSeed, err)
		}
		stats.Add(outcome)
	}
	return stats, nil
}

func playHand(cli CLI, seed int64, logger *log.Logger) (HandOutcome, error) {
	rng := randutil.New(seed)

	seats := make([]game.Seat, cli.Players)
	agents := make([]game.Agent, cli.Players)
	for i := range seats {
		seats[i] = game.Seat{Name: fmt.Sprintf("Bot-%d", i+1), Chips: cli.Chips}
		agents[i] = newAgent(cli.Strategy, rng)
	}

	hand, err := game.NewHand(rng, seats,
		game.WithBlinds(cli.SmallBlind, cli.BigBlind),
		game.WithLogger(logger),
	)
	if err != nil {
		return HandOutcome{}, err
	}

	engine, err := game.NewEngine(hand, agents, game.WithEngineLogger(logger))
	if err != nil {
		return HandOutcome{}, err
	}

	result, err := engine.Run()
	if err != nil {
		return HandOutcome{}, err
	}

	outcome := HandOutcome{
		Seed:           seed,
		Pot:            result.Pot,
		WentToShowdown: !result.WonByFold,
	}
	for _, w := range result.Winners {
		outcome.WinnerSeats = append(outcome.WinnerSeats, w.Seat)
	}
	return outcome, nil
}

func newAgent(strategy string, rng *rand.Rand) game.Agent {
	if strategy == "call" {
		return game.CallingAgent{}
	}
	return game.RandomAgent{Rng: rng}
}

func printResults(stats *Statistics, duration time.Duration) {
	handsPerSec := float64(stats.Hands) / duration.Seconds()

	fmt.Printf("=== RESULTS ===\n")
	fmt.Printf("Hands:      %d in %s (%.0f hands/sec)\n", stats.Hands, duration.Round(time.Millisecond), handsPerSec)
	fmt.Printf("Showdowns:  %d (%.1f%%)\n", stats.Showdowns, percent(stats.Showdowns, stats.Hands))
	fmt.Printf("Fold-outs:  %d (%.1f%%)\n", stats.FoldOuts, percent(stats.FoldOuts, stats.Hands))
	fmt.Printf("Pot size:   mean %.2f, stddev %.2f, max %d\n", stats.MeanPot(), stats.StdDevPot(), stats.MaxPot)
	fmt.Printf("\nWins by seat:\n")
	for seat, wins := range stats.SeatWins {
		fmt.Printf("  seat %d: %6d (%.1f%%)\n", seat, wins, percent(wins, stats.Hands))
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
