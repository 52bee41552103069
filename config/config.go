package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"event-agent/models"
)

// Defaults. Every value can be overridden by config.yaml or an
// EVENT_AGENT_* environment variable.
const (
	DefaultAddr          = ":8090"
	DefaultEventsCSV     = "events.csv"
	DefaultRatingsDB     = "ratings.db"
	DefaultKeywordWeight = 1.0
	DefaultRatingWeight  = 0.5
	DefaultMinScore      = 1
	DefaultMaxScore      = 5
)

// Config holds the full runtime configuration of the service.
type Config struct {
	Addr      string
	EventsCSV string
	RatingsDB string
	Scoring   Scoring
	Synonyms  models.SynonymTable
}

// Scoring tunes recommendation weighting and the accepted rating range.
// The source material ships no fixed values for the weights, so they are
// configuration rather than constants.
type Scoring struct {
	KeywordWeight float64
	RatingWeight  float64
	MinScore      int
	MaxScore      int
}

// defaultSynonyms covers common ways users phrase volunteer interests.
// Override or extend via the synonyms key in config.yaml.
var defaultSynonyms = map[string][]string{
	"dogs":        {"dog", "puppies", "canine", "animal shelter"},
	"kids":        {"children", "youth", "teens", "after-school"},
	"environment": {"cleanup", "park", "garden", "green", "climate"},
	"food":        {"meal", "pantry", "hunger", "kitchen"},
	"seniors":     {"elderly", "older adults"},
}

// Load reads configuration from defaults, an optional YAML file, and the
// environment, in increasing order of precedence. An empty path means
// "config.yaml in the working directory, if present"; a non-empty path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("events_csv", DefaultEventsCSV)
	v.SetDefault("ratings_db", DefaultRatingsDB)
	v.SetDefault("scoring.keyword_weight", DefaultKeywordWeight)
	v.SetDefault("scoring.rating_weight", DefaultRatingWeight)
	v.SetDefault("scoring.min_score", DefaultMinScore)
	v.SetDefault("scoring.max_score", DefaultMaxScore)
	v.SetDefault("synonyms", defaultSynonyms)

	v.SetEnvPrefix("EVENT_AGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Addr:      v.GetString("addr"),
		EventsCSV: v.GetString("events_csv"),
		RatingsDB: v.GetString("ratings_db"),
		Scoring: Scoring{
			KeywordWeight: v.GetFloat64("scoring.keyword_weight"),
			RatingWeight:  v.GetFloat64("scoring.rating_weight"),
			MinScore:      v.GetInt("scoring.min_score"),
			MaxScore:      v.GetInt("scoring.max_score"),
		},
		Synonyms: v.GetStringMapStringSlice("synonyms"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the scorer and the rating store cannot
// operate with.
func (c *Config) Validate() error {
	if c.EventsCSV == "" {
		return errors.New("events_csv must not be empty")
	}
	if c.RatingsDB == "" {
		return errors.New("ratings_db must not be empty")
	}
	if c.Scoring.KeywordWeight < 0 || c.Scoring.RatingWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative, got keyword=%.2f rating=%.2f",
			c.Scoring.KeywordWeight, c.Scoring.RatingWeight)
	}
	if c.Scoring.MinScore >= c.Scoring.MaxScore {
		return fmt.Errorf("scoring range invalid: min_score %d must be below max_score %d",
			c.Scoring.MinScore, c.Scoring.MaxScore)
	}
	return nil
}
