package gallery

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/louisbranch/iconselect/internal/platform/id"
	"github.com/louisbranch/iconselect/internal/platform/requestctx"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// statusRecorder captures the status and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(body)
	r.bytes += n
	return n, err
}

// RequestLogger logs one line per request with method, path, status, size,
// latency and request id. A usable X-Request-ID from the caller is kept;
// otherwise a new id is generated. The id is echoed in the response header
// and stored in the request context.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			requestID := requestIDFor(r)
			if requestID != "" {
				w.Header().Set(RequestIDHeader, requestID)
				r = r.WithContext(requestctx.WithRequestID(r.Context(), requestID))
			}
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)
			if recorder.status == 0 {
				recorder.status = http.StatusOK
			}

			line := []string{
				"method=" + r.Method,
				"path=" + r.URL.Path,
				"status=" + strconv.Itoa(recorder.status),
				"bytes=" + strconv.Itoa(recorder.bytes),
				"latency=" + time.Since(started).String(),
			}
			if requestID != "" {
				line = append(line, "request_id="+requestID)
			}
			logger.Print(strings.Join(line, " "))
		})
	}
}

func requestIDFor(r *http.Request) string {
	incoming := strings.TrimSpace(r.Header.Get(RequestIDHeader))
	if incoming != "" && len(incoming) <= maxRequestIDLength && strings.IndexFunc(incoming, invalidRequestIDRune) < 0 {
		return incoming
	}
	generated, err := id.NewID()
	if err != nil {
		return ""
	}
	return generated
}

func invalidRequestIDRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r > unicode.MaxASCII
}
