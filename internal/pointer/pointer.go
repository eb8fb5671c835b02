// Package pointer содержит неизменяемые параметры источника pointer.io
// и метаданные канала, который из него строится.
package pointer

import "pointerrss/internal/domain"

const (
	BaseURL       domain.URL = "https://www.pointer.io/"
	ArchivesPath             = "/archives/"
	ArticlePrefix            = "/archives/"

	FeedTitle       = "Pointer"
	FeedDescription = "EssentialEssential Reading For Engineering Leaders"

	ImageURL   domain.URL = "https://www.pointer.io/static/apple-touch-icon.png"
	ImageTitle            = "Pointer"
)

// ArchivesURL возвращает полный адрес страницы архива.
func ArchivesURL() string {
	return string(BaseURL) + ArchivesPath[1:]
}
