package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to capture the status
// code and body size for the logging middleware. WriteHeader forwards
// to the underlying writer exactly once; later calls are ignored,
// matching the stdlib contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly reports 200 when WriteHeader was never called, the
// same as the stdlib writer, and accumulates the byte count.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
