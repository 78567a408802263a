package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	// A distinct in-memory db per test.
	store, err := NewStore("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create()
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Nil(t, got.Template)
	assert.Empty(t, got.Studio)
}

func TestStoreGetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRoundTripsTables(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create()
	require.NoError(t, err)

	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", Lines: 2, StudioHours: utils.Ptr(3.25), Type: model.TypeDigital},
		{ProjectRef: "SDG2", Lines: 1},
	}
	items := []model.LineItem{{BriefRef: "B1", ProjectRef: "SDG1", ProductionSellPrice: 10}}
	hours := []model.JobHours{{ProjectRef: "SDG1", TotalHours: 3.25}}

	_, err = store.Update(created.ID, func(state *State) error {
		state.EventName = "Event 10 2025"
		state.Studio = jobs
		state.Print = items
		state.Hours = hours
		return nil
	})
	require.NoError(t, err)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Event 10 2025", got.EventName)
	assert.Equal(t, jobs, got.Studio)
	assert.Equal(t, items, got.Print)
	assert.Equal(t, hours, got.Hours)
}

func TestStoreUpdateUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update("nope", func(*State) error { return nil })

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateCallbackErrorDiscardsChanges(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create()
	require.NoError(t, err)

	_, err = store.Update(created.ID, func(state *State) error {
		state.EventName = "should not stick"
		return assert.AnError
	})
	require.Error(t, err)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.EventName)
}
