package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes is plenty for any JSON payload of the API.
const DefaultMaxBodyBytes = 1 << 20

// RequestBody caps the request body at maxBytes, then drains and closes
// whatever the handler left unread so the connection can be reused.
func RequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			r.Body = http.MaxBytesReader(w, body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBytes))
			_ = body.Close()
		})
	}
}
