package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/nba-projection/internal/usecase"
)

func (h *Handler) GetTeamDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamDashboard")
	defer span.End()

	teamID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("teamID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: team id must be an integer", usecase.ErrInvalidInput))
		return
	}

	var lastN *int
	if raw := strings.TrimSpace(r.URL.Query().Get("last_n_games")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: last_n_games must be an integer", usecase.ErrInvalidInput))
			return
		}
		lastN = &n
	}
	window, err := usecase.ResolveDashboardWindow(lastN)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.dashboardService.Get(ctx, teamID, window)
	if err != nil {
		h.logger.WarnContext(ctx, "get team dashboard failed", "team_id", teamID, "last_n_games", window, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, table)
}
