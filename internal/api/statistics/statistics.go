package statistics

import (
	"net/http"
	"strconv"

	"lotostats_backend/internal/api/games"
	"lotostats_backend/internal/converter"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/resp"
)

type HandlerDeps struct {
	Games games.Registry
	Serv  service.StatisticsService
}

type Handler struct {
	games games.Registry
	serv  service.StatisticsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{games: deps.Games, serv: deps.Serv}
}

// Summary runs both randomness checks over the stored history.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	chi, err := h.serv.ChiSquare(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	runs, err := h.serv.RunsTest(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatisticsResponse(*chi, *runs))
}

func (h *Handler) MonteCarlo(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	simulations := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "n must be an integer")
			return
		}
		simulations = parsed
	}

	result, err := h.serv.MonteCarlo(r.Context(), cfg, simulations)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMonteCarloResponse(*result))
}
