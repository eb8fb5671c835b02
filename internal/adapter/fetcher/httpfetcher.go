package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// HTTPFetcher реализует интерфейс PageFetcher для загрузки HTML-страниц по HTTP.
// Содержит HTTP-клиент для выполнения запросов и логгер для записи событий.
// Любой статус кроме 200 считается ошибкой, повторных попыток нет.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	log       *slog.Logger
}

// NewHTTPFetcher создает новый экземпляр HTTPFetcher.
// timeout ограничивает весь запрос, включая чтение тела; 0 - без ограничения.
func NewHTTPFetcher(log *slog.Logger, timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		log:       log.With(slog.String("component", "fetcher")),
	}
}

type decodedBody struct {
	io.Reader
	io.Closer
}

// Fetch выполняет GET-запрос по указанному URL.
// Возвращает тело ответа в UTF-8 (кодировка определяется по Content-Type и содержимому),
// которое должно быть закрыто после использования.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	log := f.log.With(slog.String("url", url))
	log.Info("Fetching URL")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create HTTP request", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error(
			"HTTP request failed",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to fetch url %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		log.Error(
			"Unexpected status code",
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d for url %s", resp.StatusCode, url)
	}
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		resp.Body.Close()
		log.Error("Failed to detect page encoding", slog.Any("error", err))
		return nil, fmt.Errorf("failed to decode body of %s: %w", url, err)
	}
	log.Info("Successfully fetched URL", slog.String("content_type", resp.Header.Get("Content-Type")))
	return decodedBody{Reader: body, Closer: resp.Body}, nil
}
