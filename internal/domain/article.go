package domain

// Article - кандидат в элемент ленты, извлеченный со страницы архива.
// RawPubDate хранит дату в том виде, в каком она указана на странице.
type Article struct {
	Title      string
	Link       URL
	RawPubDate string
}

// ArchiveListing - результат разбора страницы архива: статьи в порядке
// документа и число ссылок без href, пропущенных с предупреждением.
type ArchiveListing struct {
	Articles []Article
	Skipped  int
}
