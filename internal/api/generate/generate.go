package generate

import (
	"net/http"

	dto "lotostats_backend/internal/api/dto/generate"
	"lotostats_backend/internal/api/games"
	"lotostats_backend/internal/converter"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/req"
	"lotostats_backend/pkg/resp"
)

type HandlerDeps struct {
	Games   games.Registry
	Serv    service.GeneratorService
	History service.HistoryService
	Export  service.ExportService
}

type Handler struct {
	games   games.Registry
	serv    service.GeneratorService
	history service.HistoryService
	export  service.ExportService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		games:   deps.Games,
		serv:    deps.Serv,
		history: deps.History,
		export:  deps.Export,
	}
}

// Generate produces a batch of games under the requested filters. Restrictive
// filters yield fewer games than asked; the response carries both counts so
// the client can tell.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GenerateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	hctx, err := h.history.Context(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filters := converter.ToGenerationFilters(payload, cfg)
	result, err := h.serv.Generate(r.Context(), cfg, hctx, filters, payload.Count, payload.AllowDuplicates)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGenerateResponse(payload.Count, result))
}

// Export renders a previously generated batch as a downloadable file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ExportRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}
	if len(payload.Games) == 0 {
		resp.WriteError(w, http.StatusBadRequest, "no games to export")
		return
	}

	batch := converter.ToGeneratedGames(payload.Games)

	var (
		data        []byte
		contentType string
		filename    string
	)
	switch payload.Format {
	case "csv":
		data, err = h.export.GamesCSV(cfg, batch)
		contentType = "text/csv"
		filename = cfg.Slug() + "_games.csv"
	case "", "xlsx":
		data, err = h.export.GamesXLSX(cfg, batch)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = cfg.Slug() + "_games.xlsx"
	default:
		resp.WriteError(w, http.StatusBadRequest, "format must be xlsx or csv")
		return
	}
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
