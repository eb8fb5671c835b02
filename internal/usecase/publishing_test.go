package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"pointerrss/internal/adapter/rsswriter"
	"pointerrss/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBuilder struct {
	mock.Mock
}

func (m *mockBuilder) BuildFeed(ctx context.Context) (*domain.Feed, error) {
	args := m.Called(ctx)
	feed, _ := args.Get(0).(*domain.Feed)
	return feed, args.Error(1)
}

func TestFeedPublishingUseCase_Refresh(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	feed, err := domain.NewFeed("Pointer", "https://www.pointer.io/", "Reading", nil)
	require.NoError(t, err)

	builder := &mockBuilder{}
	builder.On("BuildFeed", mock.Anything).Return(feed, nil).Once()
	builder.On("BuildFeed", mock.Anything).Return(nil, errors.New("fetch failed")).Once()

	uc := NewFeedPublishingUseCase(builder, rsswriter.NewXMLWriter(logger), logger)

	_, _, ok := uc.Latest()
	assert.False(t, ok)

	require.NoError(t, uc.Refresh(context.Background()))
	doc, builtAt, ok := uc.Latest()
	require.True(t, ok)
	assert.False(t, builtAt.IsZero())
	assert.Contains(t, string(doc), "<title>Pointer</title>")

	err = uc.Refresh(context.Background())
	assert.ErrorContains(t, err, "fetch failed")

	again, againAt, ok := uc.Latest()
	require.True(t, ok)
	assert.Equal(t, doc, again)
	assert.Equal(t, builtAt, againAt)
	builder.AssertExpectations(t)
}
