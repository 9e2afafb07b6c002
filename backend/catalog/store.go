// Package catalog owns the in-memory course list for the process
// lifetime. Handlers read and mutate it only through Store methods.
package catalog

import (
	"sync"

	"github.com/dsgnbruno/member-area-v2/backend/models"
)

// Store holds the course catalog. Mutations (bookmark toggles, admin
// replacements) are visible to every subsequent read.
type Store struct {
	mu      sync.Mutex
	courses []models.Course
}

// NewStore builds a store over the given courses, keeping their order.
func NewStore(courses []models.Course) *Store {
	return &Store{courses: courses}
}

// List returns a snapshot of the catalog in insertion order.
func (s *Store) List() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// GetByID returns the course with the given id. A missing id is a
// normal outcome (the caller renders a not-found view), so the second
// result is a plain bool rather than an error.
func (s *Store) GetByID(id string) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// ToggleBookmark flips the bookmark flag on the matching course.
// Unknown ids are a no-op.
func (s *Store) ToggleBookmark(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses[i].Bookmarked = !s.courses[i].Bookmarked
			return
		}
	}
}

// ListBookmarked returns bookmarked courses in insertion order.
func (s *Store) ListBookmarked() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Course
	for _, c := range s.courses {
		if c.Bookmarked {
			out = append(out, c)
		}
	}
	return out
}

// ListAvailable returns the catalog as seen by a caller with or
// without lifetime entitlement. Lifetime holders see every course
// unlocked; the override is applied to copies, the stored status stays
// untouched for everyone else.
func (s *Store) ListAvailable(lifetime bool) []models.Course {
	courses := s.List()
	if !lifetime {
		return courses
	}
	for i := range courses {
		courses[i].Status = models.StatusActive
	}
	return courses
}
