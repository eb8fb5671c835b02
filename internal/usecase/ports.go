package usecase

import (
	"context"
	"io"
	"time"

	"pointerrss/internal/domain"
)

// PageFetcher определяет интерфейс для загрузки HTML-страницы архива.
// Возвращает io.ReadCloser который должен быть закрыт после использования.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// ArticleExtractor определяет интерфейс для извлечения статей из HTML.
type ArticleExtractor interface {
	Extract(ctx context.Context, reader io.Reader) (*domain.ArchiveListing, error)
}

// DateNormalizer переводит дату со страницы в момент времени с часовым поясом.
type DateNormalizer interface {
	Normalize(raw string) (time.Time, error)
}

// FeedWriter определяет интерфейс для сериализации ленты в RSS-документ.
type FeedWriter interface {
	Write(ctx context.Context, w io.Writer, feed *domain.Feed) error
}
