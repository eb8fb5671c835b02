package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Validity(t *testing.T) {
	pub := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		title       string
		description string
		wantErr     bool
	}{
		{name: "title only", title: "Issue 42"},
		{name: "description only", description: "Weekly reading"},
		{name: "both", title: "Issue 42", description: "Weekly reading"},
		{name: "neither", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(tt.title, "https://www.pointer.io/archives/42", tt.description, pub)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidItem))
				assert.Equal(t, Item{}, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, item.Title())
			assert.Equal(t, tt.description, item.Description())
			assert.Equal(t, URL("https://www.pointer.io/archives/42"), item.Link())
			assert.True(t, item.PubDate().Equal(pub))
		})
	}
}

func TestNewItem_LinkAndDateAreOptional(t *testing.T) {
	item, err := NewItem("", "", "only text", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, item.Link())
	assert.True(t, item.PubDate().IsZero())
}

func TestNewImage(t *testing.T) {
	img, err := NewImage("https://www.pointer.io/icon.png", "Pointer", "https://www.pointer.io/")
	require.NoError(t, err)
	assert.Equal(t, URL("https://www.pointer.io/icon.png"), img.URL())
	assert.Equal(t, "Pointer", img.Title())
	assert.Equal(t, URL("https://www.pointer.io/"), img.Link())

	for _, args := range [][3]string{
		{"", "Pointer", "https://www.pointer.io/"},
		{"https://www.pointer.io/icon.png", "", "https://www.pointer.io/"},
		{"https://www.pointer.io/icon.png", "Pointer", ""},
	} {
		_, err := NewImage(URL(args[0]), args[1], URL(args[2]))
		assert.True(t, errors.Is(err, ErrMissingField), "args %v", args)
	}
}

func TestNewFeed_RequiredFields(t *testing.T) {
	_, err := NewFeed("", "https://www.pointer.io/", "d", nil)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.ErrorContains(t, err, "title")

	_, err = NewFeed("t", "", "d", nil)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.ErrorContains(t, err, "link")

	_, err = NewFeed("t", "https://www.pointer.io/", "", nil)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.ErrorContains(t, err, "description")
}

func TestNewFeed_Defaults(t *testing.T) {
	feed, err := NewFeed("Pointer", "https://www.pointer.io/", "Reading", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, feed.Len())
	assert.Empty(t, feed.Items())
	assert.Equal(t, DefaultDocsURL, feed.Docs())
	assert.True(t, feed.PubDate().IsZero())
	assert.True(t, feed.LastBuildDate().IsZero())
	_, ok := feed.Image()
	assert.False(t, ok)
}

func TestNewFeed_Options(t *testing.T) {
	pub := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	built := pub.Add(time.Hour)
	img, err := NewImage("https://www.pointer.io/icon.png", "Pointer", "https://www.pointer.io/")
	require.NoError(t, err)

	feed, err := NewFeed("Pointer", "https://www.pointer.io/", "Reading", nil,
		WithPubDate(pub),
		WithLastBuildDate(built),
		WithDocs(""),
		WithImage(img),
	)
	require.NoError(t, err)

	assert.Equal(t, pub, feed.PubDate())
	assert.Equal(t, built, feed.LastBuildDate())
	assert.Empty(t, feed.Docs())
	got, ok := feed.Image()
	require.True(t, ok)
	assert.Equal(t, img, got)
}

func TestFeed_ItemsAreNotShared(t *testing.T) {
	first, err := NewItem("First", "", "", time.Time{})
	require.NoError(t, err)
	second, err := NewItem("Second", "", "", time.Time{})
	require.NoError(t, err)
	items := []Item{first, second}

	feed, err := NewFeed("Pointer", "https://www.pointer.io/", "Reading", items)
	require.NoError(t, err)

	items[0] = second
	got := feed.Items()
	assert.Equal(t, "First", got[0].Title())

	got[1] = first
	assert.Equal(t, "Second", feed.Items()[1].Title())
	assert.Equal(t, 2, feed.Len())
}
