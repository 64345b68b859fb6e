package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"

	"github.com/lixenwraith/slime-arena/config"
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/episode"
	"github.com/lixenwraith/slime-arena/store"
)

func main() {
	cfg := config.LoadConfig()

	episodes := flag.Int("episodes", 100, "number of bot episodes to run")
	difficulty := flag.Int("difficulty", cfg.Difficulty, "bot movement tuning, 0-10")
	dbPath := flag.String("db", cfg.DBPath, "sqlite file for episode records")
	seed := flag.Int64("seed", cfg.Seed, "seed of the first episode, later ones count up")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	verbose := flag.Bool("v", false, "log each episode")
	flag.Parse()

	cfg.Difficulty = *difficulty
	cfg.DBPath = *dbPath
	cfg.Seed = *seed

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *episodes, *workers); err != nil {
		fmt.Fprintln(os.Stderr, chalk.Red.Color(fmt.Sprintf("slime-bench: %v", err)))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, episodes, workers int) error {
	if episodes < 1 {
		return errors.Errorf("episodes must be positive, got %d", episodes)
	}
	if workers < 1 {
		workers = 1
	}

	runner, err := episode.NewRunner(cfg)
	if err != nil {
		return err
	}

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return err
	}

	results := simulate(ctx, runner, cfg.Seed, episodes, workers)

	bar := pb.New(episodes)
	bar.SetWidth(80)
	bar.Output = os.Stderr
	bar.Start()

	var sum summary
	var firstErr error
	for res := range results {
		bar.Increment()
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		if err := record(db, res.ep, cfg.Difficulty); err != nil && firstErr == nil {
			firstErr = err
		}
		sum.add(res.ep)
	}
	bar.Finish()

	if firstErr != nil && firstErr != context.Canceled {
		return firstErr
	}

	sum.print(os.Stdout)

	st, err := db.Stats()
	if err != nil {
		return err
	}
	fmt.Println(chalk.Cyan.Color(fmt.Sprintf("%s: %d episodes on record, avg %.1f ticks, avg %.2f touches",
		cfg.DBPath, st.Episodes, st.AvgTicks, st.AvgTouches)))
	return nil
}

type outcome struct {
	ep  *episode.Result
	err error
}

// simulate fans episodes out over workers; results arrive in completion order
func simulate(ctx context.Context, runner *episode.Runner, seed int64, episodes, workers int) <-chan outcome {
	seeds := make(chan int64)
	out := make(chan outcome)

	go func() {
		defer close(seeds)
		for i := 0; i < episodes; i++ {
			select {
			case seeds <- seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range seeds {
				ep, err := runner.Run(ctx, s)
				out <- outcome{ep: ep, err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func record(db store.DB, res *episode.Result, difficulty int) error {
	rec := res.Record(difficulty)
	if err := db.SaveEpisode(rec); err != nil {
		return err
	}
	return db.SaveEvents(rec.ID, res.Events)
}

// summary tallies this run's outcomes
type summary struct {
	episodes  int
	points    map[core.Side]int
	truncated int
	ticks     int
	touches   int
	longest   int
}

func (s *summary) add(res *episode.Result) {
	if s.points == nil {
		s.points = make(map[core.Side]int)
	}
	s.episodes++
	s.ticks += res.Ticks
	s.touches += res.Touches()
	if res.Ticks > s.longest {
		s.longest = res.Ticks
	}
	switch {
	case res.Truncated:
		s.truncated++
	case res.ScoringSide != core.SideNone:
		s.points[res.ScoringSide]++
	}
}

func (s *summary) print(w io.Writer) {
	if s.episodes == 0 {
		fmt.Fprintln(w, chalk.Yellow.Color("no episodes finished"))
		return
	}
	fmt.Fprintln(w, chalk.Green.Color(fmt.Sprintf("left %d  right %d", s.points[core.SideLeft], s.points[core.SideRight])))
	fmt.Fprintln(w, chalk.Blue.Color(fmt.Sprintf("rallies: avg %.1f ticks, longest %d, avg %.2f touches",
		float64(s.ticks)/float64(s.episodes), s.longest, float64(s.touches)/float64(s.episodes))))
	if s.truncated > 0 {
		fmt.Fprintln(w, chalk.Yellow.Color(fmt.Sprintf("%d truncated", s.truncated)))
	}
}
