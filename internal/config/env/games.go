package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lotostats_backend/internal/config"
)

type gameYAML struct {
	Name              string `yaml:"name"`
	Slug              string `yaml:"slug"`
	APISlug           string `yaml:"api_slug"`
	BallCount         int    `yaml:"ball_count"`
	MinNumber         int    `yaml:"min_number"`
	MaxNumber         int    `yaml:"max_number"`
	TotalCombinations int64  `yaml:"total_combinations"`
}

type gamesFileYAML struct {
	Games []gameYAML `yaml:"games"`
}

type gameConfig struct {
	name              string
	slug              string
	apiSlug           string
	ballCount         int
	minNumber         int
	maxNumber         int
	totalCombinations int64
}

// NewGameConfigsFromYAML loads the supported lottery profiles from a YAML file
// and validates that each profile can actually form a combination.
func NewGameConfigsFromYAML(path string) ([]config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var file gamesFileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}

	if len(file.Games) == 0 {
		return nil, fmt.Errorf("games config %s defines no games", path)
	}

	cfgs := make([]config.GameConfig, 0, len(file.Games))
	for _, g := range file.Games {
		if g.Slug == "" {
			return nil, fmt.Errorf("game %q has no slug", g.Name)
		}
		if g.BallCount <= 0 {
			return nil, fmt.Errorf("game %q: ball count must be positive", g.Slug)
		}
		if g.MinNumber >= g.MaxNumber {
			return nil, fmt.Errorf("game %q: min number must be below max number", g.Slug)
		}
		// The pool has to be at least large enough for one combination.
		if g.MaxNumber-g.MinNumber+1 < g.BallCount {
			return nil, fmt.Errorf("game %q: number range smaller than ball count", g.Slug)
		}

		cfgs = append(cfgs, &gameConfig{
			name:              g.Name,
			slug:              g.Slug,
			apiSlug:           g.APISlug,
			ballCount:         g.BallCount,
			minNumber:         g.MinNumber,
			maxNumber:         g.MaxNumber,
			totalCombinations: g.TotalCombinations,
		})
	}

	return cfgs, nil
}

func (g *gameConfig) Name() string             { return g.name }
func (g *gameConfig) Slug() string             { return g.slug }
func (g *gameConfig) APISlug() string          { return g.apiSlug }
func (g *gameConfig) BallCount() int           { return g.ballCount }
func (g *gameConfig) MinNumber() int           { return g.minNumber }
func (g *gameConfig) MaxNumber() int           { return g.maxNumber }
func (g *gameConfig) TotalCombinations() int64 { return g.totalCombinations }
