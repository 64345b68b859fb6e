package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-arena/audio"
	"github.com/lixenwraith/slime-arena/config"
	"github.com/lixenwraith/slime-arena/core"
)

func main() {
	cfg := config.LoadConfig()

	difficulty := flag.Int("difficulty", cfg.Difficulty, "bot movement tuning, 0-10")
	debugLog := flag.Bool("debug", false, "write logs/"+logFileName)
	seed := flag.Int64("seed", cfg.Seed, "serve randomization seed")
	human := flag.Bool("human", false, "drive the left slime with the keyboard")
	mute := flag.Bool("mute", !cfg.AudioEnabled, "disable sound cues")
	flag.Parse()

	cfg.Difficulty = *difficulty
	cfg.Seed = *seed
	cfg.AudioEnabled = !*mute
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "slime-arena: %v\n", err)
		os.Exit(1)
	}

	if f := setupLogging(*debugLog); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	sound := audio.NewSoundManager(audio.FromConfig(cfg))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the court plays silently
		log.Printf("Audio initialization failed: %v", err)
	}

	game, err := NewGame(screen, sound, cfg.Difficulty, cfg.Seed, *human)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "slime-arena: %v\n", err)
		os.Exit(1)
	}

	game.run()

	sound.Cleanup()
	core.SetCrashScreen(nil)
	screen.Fini()
	log.Printf("slime-arena exit after %d frames, score L%d R%d", game.frameCount, game.score.Left, game.score.Right)
}
