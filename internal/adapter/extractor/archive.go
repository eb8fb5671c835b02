package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"pointerrss/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// ErrStructure возвращается, если ссылка на статью не содержит ожидаемой разметки.
var ErrStructure = errors.New("unexpected archive markup")

// StructureError описывает ссылку на статью, в которой нет нужного элемента.
type StructureError struct {
	Href    string
	Missing string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("archive link %q has no <%s> element", e.Href, e.Missing)
}

func (e *StructureError) Is(target error) bool { return target == ErrStructure }

// ArchiveExtractor находит на странице архива ссылки на статьи
// и извлекает из них заголовок, ссылку и дату.
type ArchiveExtractor struct {
	base   *url.URL
	prefix string
	log    *slog.Logger
}

// NewArchiveExtractor создает экстрактор. Относительные ссылки
// разрешаются относительно baseURL, статьями считаются href с префиксом prefix.
func NewArchiveExtractor(baseURL domain.URL, prefix string, log *slog.Logger) (*ArchiveExtractor, error) {
	base, err := url.Parse(string(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %s: %w", baseURL, err)
	}
	return &ArchiveExtractor{
		base:   base,
		prefix: prefix,
		log:    log.With(slog.String("component", "extractor")),
	}, nil
}

// Extract реализует метод интерфейса ArticleExtractor.
func (e *ArchiveExtractor) Extract(ctx context.Context, reader io.Reader) (*domain.ArchiveListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		e.log.Error("Error parsing HTML", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	res := &domain.ArchiveListing{Articles: []domain.Article{}}
	var extractErr error
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			html, _ := goquery.OuterHtml(s)
			e.log.Warn("anchor has no href, skipping", slog.String("tag", html))
			res.Skipped++
			return true
		}
		if !strings.HasPrefix(href, e.prefix) {
			return true
		}
		article, err := e.toArticle(href, s)
		if err != nil {
			extractErr = err
			return false
		}
		res.Articles = append(res.Articles, article)
		return true
	})
	if extractErr != nil {
		e.log.Error("Archive markup changed", slog.Any("error", extractErr))
		return nil, extractErr
	}
	e.log.Info("Found article links",
		slog.Int("count", len(res.Articles)),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (e *ArchiveExtractor) toArticle(href string, s *goquery.Selection) (domain.Article, error) {
	heading := s.Find("h2").First()
	if heading.Length() == 0 {
		return domain.Article{}, &StructureError{Href: href, Missing: "h2"}
	}
	published := s.Find("time").First()
	if published.Length() == 0 {
		return domain.Article{}, &StructureError{Href: href, Missing: "time"}
	}
	ref, err := url.Parse(href)
	if err != nil {
		return domain.Article{}, fmt.Errorf("invalid href %q: %w", href, err)
	}
	return domain.Article{
		Title:      strings.TrimSpace(heading.Text()),
		Link:       domain.URL(e.base.ResolveReference(ref).String()),
		RawPubDate: strings.TrimSpace(published.Text()),
	}, nil
}
