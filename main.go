package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/ui"
	"gridsnake/ui/terminal"
)

// Process exit codes.
const (
	exitOK       = 0
	exitCollided = 1
	exitError    = 2
)

type frontend interface {
	game.Frontend
	Close() error
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	frontendName := flag.String("frontend", "window", "frontend to play in: window or terminal")
	speed := flag.Int("speed", 0, "Movement interval in milliseconds (lower = faster); 0 keeps the configured value")
	seed := flag.Uint64("seed", 0, "Food placement seed; 0 seeds from the clock")
	flag.Parse()
	defer glog.Flush()

	g, cfg, err := setup(*configPath, *speed, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	fe, err := openFrontend(*frontendName, cfg)
	if err != nil {
		glog.Errorf("open %s frontend: %v", *frontendName, err)
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	glog.Infof("seed %d, moving every %v", cfg.Seed, cfg.MoveInterval)

	outcome := g.Run(fe, game.SystemTime{})
	if err := fe.Close(); err != nil {
		glog.Warningf("close frontend: %v", err)
	}

	fmt.Printf("%s: length %d, %d eaten\n", outcome, g.GetSnake().Len(), g.Eaten)
	if outcome == game.Collided {
		return exitCollided
	}
	return exitOK
}

// setup resolves the configuration and builds the game. Failures are
// logged before they are returned.
func setup(configPath string, speed int, seed uint64) (*game.Game, config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			glog.Errorf("load config: %v", err)
			return nil, cfg, err
		}
	}
	if speed > 0 {
		cfg.MoveInterval = time.Duration(speed) * time.Millisecond
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	g, err := game.NewGame(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		glog.Errorf("new game: %v", err)
		return nil, cfg, err
	}
	return g, cfg, nil
}

func openFrontend(name string, cfg config.Config) (frontend, error) {
	switch name {
	case "window":
		return ui.NewWindow(cfg)
	case "terminal":
		return terminal.New(cfg)
	default:
		return nil, fmt.Errorf("unknown frontend %q", name)
	}
}
