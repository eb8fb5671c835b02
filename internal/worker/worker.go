package worker

import (
	"context"
	"log/slog"
	"time"
)

// FeedRefresher определяет интерфейс для пересборки ленты.
// Используется для внедрения зависимости в воркер.
type FeedRefresher interface {
	Refresh(ctx context.Context) error
}

// Worker реализует фонового воркера для периодической пересборки ленты.
type Worker struct {
	refresher FeedRefresher
	interval  time.Duration
	timeout   time.Duration
	log       *slog.Logger
}

// New создает нового воркера.
// Принимает обработчик, интервал обновления, таймаут одной сборки и логгер.
func New(refresher FeedRefresher, interval, timeout time.Duration, log *slog.Logger) *Worker {
	return &Worker{
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		log:       log.With(slog.String("component", "worker")),
	}
}

// Run выполняет сборку сразу и затем по расписанию, пока не отменен ctx.
// Ошибки сборки логируются и не останавливают воркер.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Info("Feed refresh worker started",
		slog.String("interval", w.interval.String()),
	)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)
		case <-ctx.Done():
			w.log.Info("Worker stopping")
			return nil
		}
	}
}

// refresh выполняет одну сборку с ограничением по времени.
func (w *Worker) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	opCtx := ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	if err := w.refresher.Refresh(opCtx); err != nil {
		w.log.Error("Feed refresh failed",
			slog.Any("error", err),
			slog.Duration("duration", time.Since(start)),
		)
		return
	}
	w.log.Info("Feed refresh completed",
		slog.Duration("duration", time.Since(start)),
	)
}

// GetInterval возвращает интервал обновления ленты.
func (w *Worker) GetInterval() time.Duration { return w.interval }
