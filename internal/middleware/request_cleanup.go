package middleware

import (
	"io"
	"net/http"
)

// landmark frames can get big, cap how much of a leftover body gets drained
const maxDrainBytes = 1 << 20

// DrainAndCloseRequest drains whatever is left of the request body and closes
// it, so the underlying connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
				_ = r.Body.Close()
			}
		})
	}
}
