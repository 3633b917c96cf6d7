package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repoImp "lifedash/pkg/social/repositoryImp"
	"lifedash/pkg/social/service"
	"lifedash/pkg/storage"
)

func newSvc(t *testing.T) (service.PostService, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	return NewPostService(repoImp.New(store, zap.NewNop().Sugar())), store
}

func TestAddValidatesAndDefaults(t *testing.T) {
	svc, _ := newSvc(t)

	_, err := svc.Add(service.PostDraft{Content: "   "})
	require.Error(t, err)

	p, err := svc.Add(service.PostDraft{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "anonymous", p.Author)
	assert.Zero(t, p.Likes)
	assert.NotEmpty(t, p.ID)
}

func TestFeedIsNewestFirst(t *testing.T) {
	svc, _ := newSvc(t)

	_, err := svc.Add(service.PostDraft{Author: "ann", Content: "first"})
	require.NoError(t, err)
	_, err = svc.Add(service.PostDraft{Author: "bob", Content: "second"})
	require.NoError(t, err)

	feed := svc.List()
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Content)
	assert.Equal(t, "first", feed[1].Content)
}

func TestLike(t *testing.T) {
	svc, _ := newSvc(t)

	p, err := svc.Add(service.PostDraft{Content: "likeable"})
	require.NoError(t, err)

	got, err := svc.Like(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	got, err = svc.Like(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Likes)

	_, err = svc.Like("missing")
	require.Error(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _ := newSvc(t)

	p, err := svc.Add(service.PostDraft{Content: "gone soon"})
	require.NoError(t, err)

	svc.Delete(p.ID)
	assert.Empty(t, svc.List())

	svc.Delete(p.ID)
	assert.Empty(t, svc.List())
}

func TestFeedSurvivesRestart(t *testing.T) {
	svc, store := newSvc(t)

	p, err := svc.Add(service.PostDraft{Author: "ann", Content: "durable"})
	require.NoError(t, err)
	_, err = svc.Like(p.ID)
	require.NoError(t, err)

	svc2 := NewPostService(repoImp.New(store, zap.NewNop().Sugar()))
	feed := svc2.List()
	require.Len(t, feed, 1)
	assert.Equal(t, "durable", feed[0].Content)
	assert.Equal(t, 1, feed[0].Likes)
}
