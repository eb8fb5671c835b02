package rsswriter

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"pointerrss/internal/domain"
)

// DateLayout - RFC-822 с четырехзначным годом и числовым смещением,
// например "Thu, 14 Mar 2024 09:00:00 -0400".
const DateLayout = time.RFC1123Z

// Порядок полей в структурах определяет порядок элементов в документе.
type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel channelXML `xml:"channel"`
}
type channelXML struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	PubDate       string    `xml:"pubDate,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Docs          string    `xml:"docs,omitempty"`
	Image         *imageXML `xml:"image"`
	Items         []itemXML `xml:"item"`
}
type imageXML struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}
type itemXML struct {
	Title       string `xml:"title,omitempty"`
	Link        string `xml:"link,omitempty"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

// Render строит RSS 2.0 документ для ленты: XML-декларация, дерево с отступами
// и завершающий перевод строки. Для одинаковых лент результат побайтно совпадает.
func Render(feed *domain.Feed) ([]byte, error) {
	if feed == nil {
		return nil, errors.New("nil feed")
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feedToXML(feed)); err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func feedToXML(feed *domain.Feed) rssXML {
	ch := channelXML{
		Title:         feed.Title(),
		Link:          string(feed.Link()),
		Description:   feed.Description(),
		PubDate:       formatDate(feed.PubDate()),
		LastBuildDate: formatDate(feed.LastBuildDate()),
		Docs:          string(feed.Docs()),
	}
	if img, ok := feed.Image(); ok {
		ch.Image = imageToXML(img)
	}
	items := feed.Items()
	ch.Items = make([]itemXML, 0, len(items))
	for _, it := range items {
		ch.Items = append(ch.Items, itemToXML(it))
	}
	return rssXML{Version: "2.0", Channel: ch}
}

func imageToXML(img domain.Image) *imageXML {
	return &imageXML{
		URL:   string(img.URL()),
		Title: img.Title(),
		Link:  string(img.Link()),
	}
}

func itemToXML(it domain.Item) itemXML {
	return itemXML{
		Title:       it.Title(),
		Link:        string(it.Link()),
		Description: it.Description(),
		PubDate:     formatDate(it.PubDate()),
	}
}

// formatDate сохраняет смещение, которое несет t, без перевода в UTC.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

type XMLWriter struct {
	log *slog.Logger
}

func NewXMLWriter(log *slog.Logger) *XMLWriter {
	return &XMLWriter{
		log: log,
	}
}

// Write реализует метод интерфейса FeedWriter.
// Документ полностью строится до записи, поэтому при ошибке в w ничего не попадает.
func (wr *XMLWriter) Write(ctx context.Context, w io.Writer, feed *domain.Feed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Render(feed)
	if err != nil {
		wr.log.Error(
			"Error encoding XML",
			slog.Any("error", err),
		)
		return err
	}
	if _, err := w.Write(data); err != nil {
		wr.log.Error(
			"Error writing RSS document",
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to write RSS document: %w", err)
	}
	wr.log.Debug("RSS document written",
		slog.Int("bytes", len(data)),
		slog.Int("items", feed.Len()),
	)
	return nil
}
