package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pointerrss/internal/domain"
	"pointerrss/internal/metrics"
	"pointerrss/internal/pointer"
)

// FeedBuildingUseCase реализует бизнес-логику построения RSS-ленты.
// Координирует загрузку страницы архива, извлечение статей,
// нормализацию дат и сборку ленты.
type FeedBuildingUseCase struct {
	fetcher     PageFetcher
	extractor   ArticleExtractor
	normalizer  DateNormalizer
	log         *slog.Logger
	archivesURL string
	now         func() time.Time
}

// NewFeedBuildingUseCase создает новый экземпляр UseCase для построения ленты.
// Принимает зависимости: загрузчик, экстрактор, нормализатор дат и логгер.
func NewFeedBuildingUseCase(
	fetcher PageFetcher,
	extractor ArticleExtractor,
	normalizer DateNormalizer,
	log *slog.Logger,
) *FeedBuildingUseCase {
	return &FeedBuildingUseCase{
		fetcher:     fetcher,
		extractor:   extractor,
		normalizer:  normalizer,
		log:         log,
		archivesURL: pointer.ArchivesURL(),
		now:         time.Now,
	}
}

// BuildFeed выполняет полный цикл: загрузка, извлечение и сборка ленты.
// Любая ошибка прерывает построение целиком, частичная лента не возвращается.
func (uc *FeedBuildingUseCase) BuildFeed(ctx context.Context) (*domain.Feed, error) {
	start := time.Now()
	log := uc.log.With(
		slog.String("component", "feed-builder"),
		slog.String("url", uc.archivesURL),
	)

	log.Info("Building feed started")

	reader, err := uc.fetcher.Fetch(ctx, uc.archivesURL)
	if err != nil {
		log.Error("Archive fetch failed",
			slog.String("stage", "fetch"),
			slog.Any("error", err),
		)
		metrics.RecordFailure("fetch", time.Since(start))
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer reader.Close()

	log.Debug("Archive fetched successfully", slog.String("stage", "fetch"))

	listing, err := uc.extractor.Extract(ctx, reader)
	if err != nil {
		log.Error("Archive extraction failed",
			slog.String("stage", "extract"),
			slog.Any("error", err),
		)
		metrics.RecordFailure("extract", time.Since(start))
		return nil, fmt.Errorf("extract failed: %w", err)
	}

	log.Debug("Archive extracted successfully",
		slog.String("stage", "extract"),
		slog.Int("items_found", len(listing.Articles)),
		slog.Int("skipped", listing.Skipped),
	)

	items, err := uc.toItems(listing.Articles)
	if err != nil {
		log.Error("Item build failed",
			slog.String("stage", "build"),
			slog.Any("error", err),
		)
		metrics.RecordFailure("build", time.Since(start))
		return nil, err
	}

	feed, err := newPointerFeed(items, uc.now().UTC())
	if err != nil {
		log.Error("Feed build failed",
			slog.String("stage", "build"),
			slog.Any("error", err),
		)
		metrics.RecordFailure("build", time.Since(start))
		return nil, fmt.Errorf("build failed: %w", err)
	}

	duration := time.Since(start)
	metrics.RecordSuccess(duration, feed.Len(), listing.Skipped)
	log.Info("Feed built successfully",
		slog.Int("items_found", feed.Len()),
		slog.Duration("duration", duration),
	)

	return feed, nil
}

func (uc *FeedBuildingUseCase) toItems(articles []domain.Article) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(articles))
	for _, a := range articles {
		pubDate, err := uc.normalizer.Normalize(a.RawPubDate)
		if err != nil {
			return nil, fmt.Errorf("article %s: %w", a.Link, err)
		}
		item, err := domain.NewItem(a.Title, a.Link, "", pubDate)
		if err != nil {
			return nil, fmt.Errorf("article %s: %w", a.Link, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// newPointerFeed собирает канал с фиксированными метаданными pointer.io.
func newPointerFeed(items []domain.Item, buildDate time.Time) (*domain.Feed, error) {
	img, err := domain.NewImage(pointer.ImageURL, pointer.ImageTitle, pointer.BaseURL)
	if err != nil {
		return nil, err
	}
	return domain.NewFeed(
		pointer.FeedTitle,
		pointer.BaseURL,
		pointer.FeedDescription,
		items,
		domain.WithImage(img),
		domain.WithLastBuildDate(buildDate),
	)
}
