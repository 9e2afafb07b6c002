package catalog

import (
	"testing"

	"github.com/dsgnbruno/member-area-v2/backend/models"

	"github.com/stretchr/testify/assert"
)

func testCourses() []models.Course {
	return []models.Course{
		{ID: "1", Title: "First", Status: models.StatusActive, Bookmarked: true},
		{ID: "2", Title: "Second", Status: models.StatusActive},
		{ID: "3", Title: "Third", Status: models.StatusLocked},
	}
}

func TestGetByID(t *testing.T) {
	store := NewStore(testCourses())

	course, ok := store.GetByID("2")
	assert.True(t, ok)
	assert.Equal(t, "Second", course.Title)

	_, ok = store.GetByID("missing")
	assert.False(t, ok)
}

func TestToggleBookmarkIsItsOwnInverse(t *testing.T) {
	store := NewStore(testCourses())

	store.ToggleBookmark("2")
	course, _ := store.GetByID("2")
	assert.True(t, course.Bookmarked)

	store.ToggleBookmark("2")
	course, _ = store.GetByID("2")
	assert.False(t, course.Bookmarked)
}

func TestToggleBookmarkUnknownIDIsNoOp(t *testing.T) {
	store := NewStore(testCourses())

	assert.NotPanics(t, func() { store.ToggleBookmark("missing") })
	assert.Len(t, store.ListBookmarked(), 1)
}

func TestToggleIsVisibleToListBookmarked(t *testing.T) {
	store := NewStore(testCourses())

	store.ToggleBookmark("3")
	bookmarked := store.ListBookmarked()

	assert.Len(t, bookmarked, 2)
	// Insertion order, not toggle order.
	assert.Equal(t, "1", bookmarked[0].ID)
	assert.Equal(t, "3", bookmarked[1].ID)
}

func TestListAvailableUnlocksForLifetime(t *testing.T) {
	store := NewStore(testCourses())

	available := store.ListAvailable(true)
	assert.Len(t, available, 3)
	for _, c := range available {
		assert.Equal(t, models.StatusActive, c.Status)
	}

	// The override is a view transform: the store still serves the
	// locked status to non-entitled callers.
	course, _ := store.GetByID("3")
	assert.Equal(t, models.StatusLocked, course.Status)

	plain := store.ListAvailable(false)
	assert.Equal(t, models.StatusLocked, plain[2].Status)
}

func TestSeedCatalog(t *testing.T) {
	store := NewStore(Seed())

	course, ok := store.GetByID("1")
	assert.True(t, ok)
	assert.Len(t, course.Modules, 4)
	assert.Len(t, course.Resources, 4)

	total := 0
	for _, m := range course.Modules {
		total += len(m.Lessons)
	}
	assert.Equal(t, 21, total)

	assert.Len(t, store.ListBookmarked(), 2)
}
