package sync

import (
	"net/http"

	dto "lotostats_backend/internal/api/dto/game"
	"lotostats_backend/internal/api/games"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/resp"
)

type HandlerDeps struct {
	Games games.Registry
	Serv  service.SyncService
}

type Handler struct {
	games games.Registry
	serv  service.SyncService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{games: deps.Games, serv: deps.Serv}
}

// Sync pulls contests missing locally from the results provider. Provider
// failures surface as 502: the service itself is healthy.
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.games.FromRequest(w, r)
	if !ok {
		return
	}

	stored, err := h.serv.SyncProvider(r.Context(), cfg)
	if err != nil {
		resp.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SyncResponse{NewDraws: stored})
}
