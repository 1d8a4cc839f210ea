package analytics

import (
	"net/http"
	"strconv"

	dto "lotostats_backend/internal/api/dto/analytics"
	"lotostats_backend/internal/api/games"
	"lotostats_backend/internal/converter"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/req"
	"lotostats_backend/pkg/resp"
)

type HandlerDeps struct {
	Games games.Registry
	Serv  service.AnalyticsService
}

type Handler struct {
	games games.Registry
	serv  service.AnalyticsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{games: deps.Games, serv: deps.Serv}
}

func (h *Handler) Frequency(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.serv.Frequency(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFrequencyResponse(entries))
}

func (h *Handler) Delay(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.serv.Delay(r.Context(), cfg, topN(r))
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDelayResponse(entries))
}

func (h *Handler) Parity(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	buckets, err := h.serv.Parity(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToParityResponse(buckets))
}

func (h *Handler) Sum(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.serv.SumStats(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSumStatsResponse(*stats))
}

func (h *Handler) Pairs(w http.ResponseWriter, r *http.Request) {
	h.groups(w, r, 2)
}

func (h *Handler) Trios(w http.ResponseWriter, r *http.Request) {
	h.groups(w, r, 3)
}

func (h *Handler) groups(w http.ResponseWriter, r *http.Request, size int) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	groups, err := h.serv.FrequentGroups(r.Context(), cfg, size, topN(r))
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGroupsResponse(groups))
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CompareRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	cmp, err := h.serv.Compare(r.Context(), cfg, payload.Numbers)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCompareResponse(*cmp))
}

func topN(r *http.Request) int {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
