package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type feedSource interface {
	Latest() (doc []byte, builtAt time.Time, ok bool)
}
type Handler struct {
	log  *slog.Logger
	feed feedSource
}

func NewHandler(log *slog.Logger, feed feedSource) *Handler {
	return &Handler{
		log:  log,
		feed: feed,
	}
}

// getFeed - хендлер для эндпоинта GET /feed.xml
func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/getFeed"
	log := h.log.With(slog.String("op", op))
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		log.Warn("method not allowed", slog.String("method", r.Method))
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	doc, builtAt, ok := h.feed.Latest()
	if !ok {
		log.Warn("feed requested before first successful build")
		w.Header().Set("Retry-After", "60")
		respondWithError(w, http.StatusServiceUnavailable, "Feed is not built yet")
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Header().Set("Last-Modified", builtAt.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(doc); err != nil {
		log.Error("Failed to write feed", slog.Any("error", err))
	}
}

// healthCheck - хендлер для проверки состояния сервиса
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if _, builtAt, ok := h.feed.Latest(); ok {
		status["built_at"] = builtAt.UTC().Format(time.RFC3339)
	} else {
		status["status"] = "starting"
	}
	respondWithJSON(w, http.StatusOK, status)
}

// Вспомогательные функции для ответов
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
