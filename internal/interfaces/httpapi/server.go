package httpapi

import (
	"net/http"

	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerStatRoutes(mux, handler)
	registerProjectionRoutes(mux, handler)

	return chain(mux,
		RequestTracing,
		RequestLogging(logger),
		CORS(corsAllowedOrigins),
		recoverPanic(logger),
	)
}
