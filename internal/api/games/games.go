// Package games resolves the {game} URL segment against the configured
// profiles and serves the profile listing.
package games

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	dto "lotostats_backend/internal/api/dto/game"
	"lotostats_backend/internal/config"
	"lotostats_backend/internal/converter"
	"lotostats_backend/pkg/resp"
)

// Registry maps game slugs onto their configured profiles.
type Registry map[string]config.GameConfig

func NewRegistry(configs []config.GameConfig) Registry {
	r := make(Registry, len(configs))
	for _, cfg := range configs {
		r[cfg.Slug()] = cfg
	}
	return r
}

// FromRequest resolves the {game} URL parameter. Writes a 400 and returns
// false when the slug is unknown.
func (r Registry) FromRequest(w http.ResponseWriter, req *http.Request) (config.GameConfig, bool) {
	slug := chi.URLParam(req, "game")
	cfg, ok := r[slug]
	if !ok {
		resp.WriteError(w, http.StatusBadRequest, "unknown game: "+slug)
		return nil, false
	}
	return cfg, true
}

type HandlerDeps struct {
	Games Registry
}

type Handler struct {
	games Registry
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{games: deps.Games}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	slugs := make([]string, 0, len(h.games))
	for slug := range h.games {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	response := dto.GamesResponse{Games: make([]dto.GameInfo, 0, len(slugs))}
	for _, slug := range slugs {
		response.Games = append(response.Games, converter.ToGameInfo(h.games[slug]))
	}

	resp.WriteJSONResponse(w, http.StatusOK, response)
}
