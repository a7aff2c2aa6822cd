package rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-rooms/internal/cache"
)

type testRepo struct {
	byID  map[string]Room
	reads int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Room{}}
}

func (r *testRepo) Create(ctx context.Context, room Room) error {
	r.byID[room.ID] = room
	return nil
}

func (r *testRepo) Update(ctx context.Context, room Room) error {
	if _, ok := r.byID[room.ID]; !ok {
		return ErrNotFound
	}
	r.byID[room.ID] = room
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Room, error) {
	r.reads++
	room, ok := r.byID[id]
	if !ok {
		return Room{}, ErrNotFound
	}
	return room, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type recordingListener struct {
	changed []string
	err     error
}

func (l *recordingListener) RoomChanged(ctx context.Context, roomID string) error {
	l.changed = append(l.changed, roomID)
	return l.err
}

func newTestService() (*Service, *testRepo, *recordingListener) {
	repo := newTestRepo()
	svc := NewService(repo, cache.NewMemory(cache.DefaultRegions()), nil)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) }
	l := &recordingListener{}
	svc.Subscribe(l)
	return svc, repo, l
}

func TestCreateAndGet_ReadThroughCache(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	r, err := svc.Create(ctx, CreateInput{Title: " Reptile House "})
	require.NoError(t, err)
	assert.Equal(t, "Reptile House", r.Title)
	assert.Nil(t, r.UpdatedAt)

	for i := 0; i < 3; i++ {
		got, err := svc.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.ID, got.ID)
	}
	assert.Equal(t, 1, repo.reads)

	_, err = svc.Create(ctx, CreateInput{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_MissIsNotCached(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, repo.reads)
}

func TestUpdate_EvictsAndNotifiesOnTitleChange(t *testing.T) {
	svc, _, l := newTestService()
	ctx := context.Background()

	r, _ := svc.Create(ctx, CreateInput{Title: "Aviary"})
	_, _ = svc.GetByID(ctx, r.ID)

	updated, err := svc.Update(ctx, r.ID, UpdateInput{Title: "Big Aviary"})
	require.NoError(t, err)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, r.CreatedAt, updated.CreatedAt)
	assert.Equal(t, []string{r.ID}, l.changed)

	title, ok, err := svc.TitleOf(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Big Aviary", title)

	// Mismo título: no hay nada que invalidar.
	_, err = svc.Update(ctx, r.ID, UpdateInput{Title: "Big Aviary"})
	require.NoError(t, err)
	assert.Len(t, l.changed, 1)

	_, err = svc.Update(ctx, "nope", UpdateInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_TitleOfBecomesUnknown(t *testing.T) {
	svc, _, l := newTestService()
	ctx := context.Background()

	r, _ := svc.Create(ctx, CreateInput{Title: "Aquarium"})
	_, ok, err := svc.TitleOf(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.Delete(ctx, r.ID))
	require.NoError(t, svc.Delete(ctx, r.ID))
	assert.Equal(t, []string{r.ID, r.ID}, l.changed)

	_, ok, err = svc.TitleOf(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete_ListenerErrorPropagates(t *testing.T) {
	svc, _, l := newTestService()
	l.err = errors.New("cache down")

	err := svc.Delete(context.Background(), "r1")
	assert.ErrorIs(t, err, l.err)
}
