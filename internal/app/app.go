package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"pointerrss/internal/adapter/extractor"
	"pointerrss/internal/adapter/fetcher"
	"pointerrss/internal/adapter/rsswriter"
	"pointerrss/internal/config"
	"pointerrss/internal/pointer"
	"pointerrss/internal/pubdate"
	server "pointerrss/internal/transport/http"
	"pointerrss/internal/usecase"
	"pointerrss/internal/worker"

	"golang.org/x/sync/errgroup"
)

// NewFeedBuilder собирает конвейер загрузка → извлечение → нормализация дат.
func NewFeedBuilder(cfg *config.Config, log *slog.Logger) (*usecase.FeedBuildingUseCase, error) {
	httpFetcher := fetcher.NewHTTPFetcher(log, cfg.FetchTimeout(), cfg.Fetch.UserAgent)

	archiveExtractor, err := extractor.NewArchiveExtractor(pointer.BaseURL, pointer.ArticlePrefix, log)
	if err != nil {
		return nil, fmt.Errorf("failed to setup extractor: %w", err)
	}

	normalizer, err := pubdate.New()
	if err != nil {
		return nil, fmt.Errorf("failed to setup date normalizer: %w", err)
	}

	return usecase.NewFeedBuildingUseCase(httpFetcher, archiveExtractor, normalizer, log), nil
}

// WriteFeed строит ленту один раз и записывает RSS-документ в w.
// При любой ошибке в w ничего не записывается.
func WriteFeed(ctx context.Context, cfg *config.Config, log *slog.Logger, w io.Writer) error {
	builder, err := NewFeedBuilder(cfg, log)
	if err != nil {
		return err
	}
	feed, err := builder.BuildFeed(ctx)
	if err != nil {
		return err
	}
	log.Info("Writing RSS feed", slog.Int("items", feed.Len()))
	return rsswriter.NewXMLWriter(log).Write(ctx, w, feed)
}

// App представляет режим serve: HTTP-сервер, отдающий ленту,
// и воркер, периодически ее пересобирающий.
type App struct {
	config *config.Config
	logger *slog.Logger
	server *http.Server
	worker *worker.Worker
}

// New создает и инициализирует приложение режима serve.
func New(cfg *config.Config, appLogger *slog.Logger) (*App, error) {
	builder, err := NewFeedBuilder(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	publisher := usecase.NewFeedPublishingUseCase(builder, rsswriter.NewXMLWriter(appLogger), appLogger)

	handler := server.NewHandler(appLogger, publisher)

	router := server.NewServer(appLogger, handler)

	w := worker.New(publisher, cfg.RefreshInterval(), cfg.FetchTimeout(), appLogger)

	return &App{
		config: cfg,
		logger: appLogger,
		server: &http.Server{
			Addr:              cfg.Server.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		worker: w,
	}, nil
}

// Run запускает воркер и HTTP-сервер и блокируется до отмены ctx
// или ошибки сервера. После отмены выполняет graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting pointerrss server",
		slog.String("component", "app"),
		slog.String("refresh_interval", a.worker.GetInterval().String()),
	)
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	a.logger.Info("HTTP server ready",
		slog.String("component", "server"),
		slog.String("address", listener.Addr().String()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.worker.Run(gctx)
	})
	g.Go(func() error {
		if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})
	err = g.Wait()
	a.logger.Info("Application stopped", slog.String("component", "app"))
	return err
}

// shutdown завершает HTTP-сервер с таймаутом 10 секунд.
func (a *App) shutdown() error {
	a.logger.Info("Starting graceful shutdown", slog.String("component", "app"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
