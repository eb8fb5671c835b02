package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pointerrss/internal/domain"
)

// FeedBuilder определяет интерфейс для построения ленты.
type FeedBuilder interface {
	BuildFeed(ctx context.Context) (*domain.Feed, error)
}

// FeedPublishingUseCase хранит последний успешно построенный RSS-документ
// и отдает его HTTP-слою. Неудачное обновление не затирает опубликованный документ.
type FeedPublishingUseCase struct {
	builder FeedBuilder
	writer  FeedWriter
	log     *slog.Logger

	mu      sync.RWMutex
	doc     []byte
	builtAt time.Time
}

// NewFeedPublishingUseCase создает новый экземпляр UseCase для публикации ленты.
func NewFeedPublishingUseCase(builder FeedBuilder, writer FeedWriter, log *slog.Logger) *FeedPublishingUseCase {
	return &FeedPublishingUseCase{
		builder: builder,
		writer:  writer,
		log:     log.With(slog.String("component", "publisher")),
	}
}

// Refresh строит ленту заново и публикует ее.
func (uc *FeedPublishingUseCase) Refresh(ctx context.Context) error {
	feed, err := uc.builder.BuildFeed(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := uc.writer.Write(ctx, &buf, feed); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	uc.mu.Lock()
	uc.doc = buf.Bytes()
	uc.builtAt = time.Now()
	uc.mu.Unlock()
	uc.log.Info("Feed published", slog.Int("bytes", buf.Len()))
	return nil
}

// Latest возвращает последний опубликованный документ и время его сборки.
// ok равен false, пока не было ни одной успешной сборки.
func (uc *FeedPublishingUseCase) Latest() (doc []byte, builtAt time.Time, ok bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.doc == nil {
		return nil, time.Time{}, false
	}
	return uc.doc, uc.builtAt, true
}
