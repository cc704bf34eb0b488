package directory

import (
	"sync"
	"testing"

	"estateconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeeds(t *testing.T) {
	store := NewStore()

	assert.Equal(t, []models.DirectoryUser{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, store.List())
}

func TestAddAssignsNextID(t *testing.T) {
	store := NewStore()

	before := store.Len()
	created, err := store.Add("Charlie")
	require.NoError(t, err)

	assert.Equal(t, before+1, created.ID)
	assert.Equal(t, "Charlie", created.Name)
	assert.Equal(t, before+1, store.Len())

	// Insertion order is preserved.
	users := store.List()
	assert.Equal(t, created, users[len(users)-1])
}

func TestAddRejectsEmptyName(t *testing.T) {
	store := NewStore()

	before := store.Len()
	_, err := store.Add("")

	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, before, store.Len(), "a rejected append leaves the collection unchanged")
}

func TestAddConcurrentIDsAreUnique(t *testing.T) {
	store := NewStore()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Add("Member")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 2+n, store.Len())
	seen := make(map[int]bool)
	for _, u := range store.List() {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}
