package agent

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID binds a trace id to the request context and logger. The
// remote adapter forwards the same id, so one UI action can be followed in
// the agent and server logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(utils.WithTraceID(r.Context(), traceID)))

		w.Header().Set(traceIDHeader, traceID)

		start := time.Now()
		next.ServeHTTP(w, r)
		l.Debug().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Dur("duration", time.Since(start)).
			Msg("agent request served")
	})
}
