package pubdate

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	// Layout - формат даты на странице архива, например "March 14, 2024".
	Layout = "January 2, 2006"
	// SourceZone - часовой пояс издателя.
	SourceZone = "America/New_York"
	// PublishHour - час выхода выпуска в часовом поясе издателя.
	PublishHour = 9
)

// ErrDateFormat возвращается, если строка не соответствует Layout.
var ErrDateFormat = errors.New("unexpected date format")

// FormatError описывает строку даты, которую не удалось разобрать.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("date %q does not match %q: %v", e.Value, Layout, e.Err)
}

func (e *FormatError) Is(target error) bool { return target == ErrDateFormat }

func (e *FormatError) Unwrap() error { return e.Err }

// Normalizer переводит календарную дату в момент времени
// с фиксированным часом в заданном часовом поясе.
type Normalizer struct {
	loc  *time.Location
	hour int
}

// New создает Normalizer для часового пояса издателя и часа публикации.
func New() (*Normalizer, error) {
	loc, err := time.LoadLocation(SourceZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %s: %w", SourceZone, err)
	}
	return &Normalizer{loc: loc, hour: PublishHour}, nil
}

// Normalize разбирает строку вида "March 14, 2024" и возвращает
// 2024-03-14 09:00:00 в часовом поясе издателя.
func (n *Normalizer) Normalize(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(Layout, raw, n.loc)
	if err != nil {
		return time.Time{}, &FormatError{Value: raw, Err: err}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), n.hour, 0, 0, 0, n.loc), nil
}
