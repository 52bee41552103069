package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"event-agent/catalog"
	"event-agent/config"
	"event-agent/database"
	"event-agent/handlers"
	"event-agent/ratings"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Getenv("EVENT_AGENT_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// The event table is read once per process; a missing file or column
	// is fatal, with no partial-load recovery.
	cat, err := catalog.Load(cfg.EventsCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.EventsCSV).Msg("Failed to load events")
	}
	log.Info().Int("events", cat.Len()).Str("path", cfg.EventsCSV).Msg("Loaded event catalog")

	if err := database.InitDB(cfg.RatingsDB); err != nil {
		log.Fatal().Err(err).Str("path", cfg.RatingsDB).Msg("Failed to open ratings database")
	}

	store := ratings.NewStore(database.GetDB(), cfg.Scoring.MinScore, cfg.Scoring.MaxScore)
	h := handlers.New(cat, store, cfg)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/events", h.GetEvents)
		api.GET("/events/:key", h.GetEvent)
		api.GET("/events/:key/ratings", h.GetRatings)
		api.POST("/events/:key/ratings", h.SubmitRating)
		api.GET("/stats", h.GetStats)
		api.GET("/filters", h.GetFilters)
	}

	log.Info().Str("addr", cfg.Addr).Msg("Starting event agent")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}
