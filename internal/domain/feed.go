package domain

import (
	"errors"
	"fmt"
	"time"
)

// URL - абсолютная или относительная ссылка, выводится в XML как есть.
type URL string

// DefaultDocsURL используется для элемента docs, если не задано иное.
const DefaultDocsURL URL = "http://blogs.law.harvard.edu/tech/rss"

var (
	// ErrMissingField возвращается, если не задано обязательное поле ленты или картинки.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidItem возвращается, если у элемента нет ни заголовка, ни описания.
	ErrInvalidItem = errors.New("at least one of title or description must be set")
)

// Image представляет картинку канала. Все три поля обязательны.
type Image struct {
	url   URL
	title string
	link  URL
}

// NewImage создает картинку канала и проверяет, что заданы url, title и link.
func NewImage(url URL, title string, link URL) (Image, error) {
	switch {
	case url == "":
		return Image{}, fmt.Errorf("image url: %w", ErrMissingField)
	case title == "":
		return Image{}, fmt.Errorf("image title: %w", ErrMissingField)
	case link == "":
		return Image{}, fmt.Errorf("image link: %w", ErrMissingField)
	}
	return Image{url: url, title: title, link: link}, nil
}

func (i Image) URL() URL { return i.url }
func (i Image) Title() string { return i.title }
func (i Image) Link() URL { return i.link }

// Item представляет отдельную статью в RSS-ленте.
// Пустая строка или нулевое время означают отсутствие поля.
type Item struct {
	title       string
	link        URL
	description string
	pubDate     time.Time
}

// NewItem создает элемент ленты.
// Возвращает ErrInvalidItem, если пусты одновременно title и description.
func NewItem(title string, link URL, description string, pubDate time.Time) (Item, error) {
	if title == "" && description == "" {
		return Item{}, ErrInvalidItem
	}
	return Item{
		title:       title,
		link:        link,
		description: description,
		pubDate:     pubDate,
	}, nil
}

func (i Item) Title() string { return i.title }
func (i Item) Link() URL { return i.link }
func (i Item) Description() string { return i.description }
func (i Item) PubDate() time.Time { return i.pubDate }

// Feed представляет полную RSS-ленту с метаданными и списком статей.
// После создания не изменяется.
type Feed struct {
	title         string
	link          URL
	description   string
	items         []Item
	pubDate       time.Time
	lastBuildDate time.Time
	docs          URL
	image         *Image
}

// FeedOption задает необязательное поле ленты.
type FeedOption func(*Feed)

// WithPubDate задает pubDate канала.
func WithPubDate(t time.Time) FeedOption {
	return func(f *Feed) { f.pubDate = t }
}

// WithLastBuildDate задает lastBuildDate канала.
func WithLastBuildDate(t time.Time) FeedOption {
	return func(f *Feed) { f.lastBuildDate = t }
}

// WithDocs заменяет ссылку docs. Пустая строка убирает элемент из вывода.
func WithDocs(docs URL) FeedOption {
	return func(f *Feed) { f.docs = docs }
}

// WithImage задает картинку канала.
func WithImage(img Image) FeedOption {
	return func(f *Feed) { f.image = &img }
}

// NewFeed создает ленту. title, link и description обязательны,
// items может быть пустым. Порядок items сохраняется.
func NewFeed(title string, link URL, description string, items []Item, opts ...FeedOption) (*Feed, error) {
	switch {
	case title == "":
		return nil, fmt.Errorf("feed title: %w", ErrMissingField)
	case link == "":
		return nil, fmt.Errorf("feed link: %w", ErrMissingField)
	case description == "":
		return nil, fmt.Errorf("feed description: %w", ErrMissingField)
	}
	f := &Feed{
		title:       title,
		link:        link,
		description: description,
		items:       append([]Item(nil), items...),
		docs:        DefaultDocsURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Feed) Title() string { return f.title }
func (f *Feed) Link() URL { return f.link }
func (f *Feed) Description() string { return f.description }
func (f *Feed) PubDate() time.Time { return f.pubDate }
func (f *Feed) LastBuildDate() time.Time { return f.lastBuildDate }
func (f *Feed) Docs() URL { return f.docs }

// Items возвращает копию списка статей в исходном порядке.
func (f *Feed) Items() []Item { return append([]Item(nil), f.items...) }

// Len возвращает количество статей.
func (f *Feed) Len() int { return len(f.items) }

// Image возвращает картинку канала и признак ее наличия.
func (f *Feed) Image() (Image, bool) {
	if f.image == nil {
		return Image{}, false
	}
	return *f.image, true
}
