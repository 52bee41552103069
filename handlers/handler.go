package handlers

import (
	"event-agent/catalog"
	"event-agent/config"
	"event-agent/models"
	"event-agent/ratings"
	"event-agent/search"
)

// Handler serves the event API over the loaded catalog and rating store.
type Handler struct {
	catalog  *catalog.Catalog
	store    *ratings.Store
	synonyms models.SynonymTable
	weights  search.Weights
}

// New wires a handler from the loaded catalog, the rating store, and the
// scoring configuration.
func New(cat *catalog.Catalog, store *ratings.Store, cfg *config.Config) *Handler {
	return &Handler{
		catalog:  cat,
		store:    store,
		synonyms: cfg.Synonyms,
		weights: search.Weights{
			Keyword: cfg.Scoring.KeywordWeight,
			Rating:  cfg.Scoring.RatingWeight,
		},
	}
}
