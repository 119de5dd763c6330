package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/document"
	"resume-analyzer/internal/match"
	"resume-analyzer/internal/resume"
	"resume-analyzer/internal/skills"
)

// API holds the shared, read-only service handles. Requests are stateless
// computations over their own inputs; nothing here is mutated after startup.
type API struct {
	taxonomy *skills.Taxonomy
	parser   *resume.Parser
	scorer   *match.Scorer
}

func NewAPI(cfg *config.Config) *API {
	taxonomy := skills.NewTaxonomy()
	docs := document.NewExtractor()

	var embedder match.Embedder
	if cfg.OpenAIAPIKey != "" {
		embedder = match.NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingTimeout)
		log.Info().Str("model", cfg.EmbeddingModel).Msg("embedding collaborator configured")
	} else {
		log.Info().Msg("no embedding API key, semantic similarity will use word overlap")
	}

	return &API{
		taxonomy: taxonomy,
		parser:   resume.NewParser(taxonomy, docs),
		scorer:   match.NewScorer(embedder),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Status: "error", Message: msg})
}
