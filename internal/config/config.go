// Package config holds the tuning constants of the game and loads overrides
// from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the YAML path.
const EnvConfigPath = "SPHEREPUZZLE_CONFIG"

type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
}

type Physics struct {
	Gravity  float32 `yaml:"gravity"`
	Step     float32 `yaml:"step"`
	MaxSpeed float32 `yaml:"maxSpeed"`
}

type Player struct {
	Radius         float32 `yaml:"radius"`
	Mass           float32 `yaml:"mass"`
	AngularDamping float32 `yaml:"angularDamping"`
	MoveForce      float32 `yaml:"moveForce"`
	ReachDistance  float32 `yaml:"reachDistance"`
}

type Puzzle struct {
	ButtonRadius float32 `yaml:"buttonRadius"`
	GoalRadius   float32 `yaml:"goalRadius"`
}

type Balance struct {
	Frequency     float32 `yaml:"frequency"`
	Growth        float32 `yaml:"growth"`
	Push          float32 `yaml:"push"`
	UIScale       float32 `yaml:"uiScale"`
	WarnPercent   float32 `yaml:"warnPercent"`
	DangerPercent float32 `yaml:"dangerPercent"`
	RespawnY      float32 `yaml:"respawnY"`
}

type Camera struct {
	Distance    float32 `yaml:"distance"`
	Sensitivity float32 `yaml:"sensitivity"`
	Pitch       float32 `yaml:"pitch"`
	FovY        float32 `yaml:"fovy"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Puzzle  Puzzle  `yaml:"puzzle"`
	Balance Balance `yaml:"balance"`
	Camera  Camera  `yaml:"camera"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Sphere Puzzle", FPS: 60},
		Physics: Physics{
			Gravity:  -9.82,
			Step:     1.0 / 60.0,
			MaxSpeed: 7,
		},
		Player: Player{
			Radius:         0.5,
			Mass:           3,
			AngularDamping: 0.3,
			MoveForce:      2,
			ReachDistance:  3,
		},
		Puzzle: Puzzle{ButtonRadius: 0.7, GoalRadius: 1.0},
		Balance: Balance{
			Frequency:     4,
			Growth:        0.25,
			Push:          0.1,
			UIScale:       2000,
			WarnPercent:   40,
			DangerPercent: 70,
			RespawnY:      -5,
		},
		Camera: Camera{Distance: 12, Sensitivity: 0.005, Pitch: -0.3, FovY: 75},
	}
}

// Load overlays the YAML file at path on the defaults. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads an optional .env file and then the YAML file named by
// SPHEREPUZZLE_CONFIG. A missing .env is fine, a malformed one is not.
func FromEnv() (Config, error) {
	err := godotenv.Load()
	switch {
	case err == nil:
		log.Println("Config: loaded .env")
	case !errors.Is(err, os.ErrNotExist):
		return Default(), fmt.Errorf("config: load .env: %w", err)
	}
	return Load(os.Getenv(EnvConfigPath))
}

func (c Config) Validate() error {
	switch {
	case c.Physics.MaxSpeed <= 0:
		return errors.New("physics.maxSpeed must be positive")
	case c.Physics.Step <= 0:
		return errors.New("physics.step must be positive")
	case c.Player.ReachDistance <= 0:
		return errors.New("player.reachDistance must be positive")
	case c.Player.Mass <= 0 || c.Player.Radius <= 0:
		return errors.New("player mass and radius must be positive")
	case c.Balance.WarnPercent >= c.Balance.DangerPercent:
		return fmt.Errorf("balance.warnPercent (%v) must be below dangerPercent (%v)",
			c.Balance.WarnPercent, c.Balance.DangerPercent)
	}
	return nil
}
