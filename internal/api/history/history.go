package history

import (
	"net/http"
	"strconv"

	dto "lotostats_backend/internal/api/dto/game"
	"lotostats_backend/internal/api/games"
	"lotostats_backend/internal/converter"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/req"
	"lotostats_backend/pkg/resp"
)

type HandlerDeps struct {
	Games  games.Registry
	Serv   service.HistoryService
	Export service.ExportService
}

type Handler struct {
	games  games.Registry
	serv   service.HistoryService
	export service.ExportService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		games:  deps.Games,
		serv:   deps.Serv,
		export: deps.Export,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	draws, err := h.serv.Draws(r.Context(), cfg, limit)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(draws))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AddDrawRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	inserted, err := h.serv.AddDraw(r.Context(), cfg, converter.ToDraw(payload))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusCreated
	if !inserted {
		status = http.StatusOK
	}
	resp.WriteJSONResponse(w, status, dto.AddDrawResponse{Inserted: inserted})
}

func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	kpis, err := h.serv.KPIs(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToKPIResponse(*kpis))
}

// Export streams the stored history as a spreadsheet attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	data, err := h.export.HistoryXLSX(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+cfg.Slug()+`_history.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
