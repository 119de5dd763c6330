package api

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Message:   "All systems operational",
			Timestamp: time.Now().UTC(),
		})
	})

	// Analysis endpoints
	mux.HandleFunc("/api/analyze/resume", a.AnalyzeResumeHandler)
	mux.HandleFunc("/api/analyze/match", a.MatchHandler)
	mux.HandleFunc("/api/analyze/extract-skills", a.ExtractSkillsHandler)
	mux.HandleFunc("/api/cv/upload", a.UploadHandler)

	// Root status endpoint
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "online",
			Message:   "Resume Analyzer API is running",
			Timestamp: time.Now().UTC(),
		})
	})

	return corsMiddleware(mux, allowedOrigins)
}

// corsMiddleware reflects allowed origins and answers preflight requests.
func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
