// Package progress derives completion and navigation state from a
// course's module/lesson tree. Every function is a pure view over the
// course it is given; lesson completion flags are externally supplied
// ground truth and are never mutated here.
package progress

import (
	"math"

	"github.com/dsgnbruno/member-area-v2/backend/models"
)

// Position is one lesson in the course's canonical linear order,
// tagged with the module that owns it.
type Position struct {
	ModuleID string        `json:"moduleId"`
	Lesson   models.Lesson `json:"lesson"`
}

// NextLesson identifies the first incomplete lesson of a course.
type NextLesson struct {
	ModuleID string `json:"moduleId"`
	LessonID string `json:"lessonId"`
	Title    string `json:"title"`
}

// ModuleProgress returns the module's completion percentage, rounded.
// A module with no lessons counts as 0.
func ModuleProgress(m models.Module) int {
	if len(m.Lessons) == 0 {
		return 0
	}
	completed := 0
	for _, lesson := range m.Lessons {
		if lesson.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(m.Lessons)) * 100))
}

// CourseProgress returns the course's completion percentage. When
// modules are present the value is the aggregate ratio of completed
// lessons over all modules, not an average of per-module percentages.
// Module-less courses fall back to the stored progress field.
func CourseProgress(c models.Course) int {
	if len(c.Modules) == 0 {
		return c.Progress
	}
	total, completed := 0, 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
		for _, lesson := range m.Lessons {
			if lesson.Completed {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Flatten concatenates each module's lessons in listed order. The
// result is the canonical lesson ordering used for navigation.
func Flatten(c models.Course) []Position {
	var all []Position
	for _, m := range c.Modules {
		for _, lesson := range m.Lessons {
			all = append(all, Position{ModuleID: m.ID, Lesson: lesson})
		}
	}
	return all
}

// FindAdjacent locates the current (module, lesson) pair in the
// flattened order and returns its neighbours. An unknown position
// yields (nil, nil) rather than an error.
func FindAdjacent(c models.Course, moduleID, lessonID string) (prev, next *Position) {
	all := Flatten(c)
	index := -1
	for i, p := range all {
		if p.ModuleID == moduleID && p.Lesson.ID == lessonID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}
	if index > 0 {
		p := all[index-1]
		prev = &p
	}
	if index < len(all)-1 {
		n := all[index+1]
		next = &n
	}
	return prev, next
}

// FirstLessonToResume picks where playback should start inside a
// module: the first incomplete lesson, or the first lesson when the
// whole module is done. Empty modules yield nil.
func FirstLessonToResume(m models.Module) *models.Lesson {
	for i := range m.Lessons {
		if !m.Lessons[i].Completed {
			lesson := m.Lessons[i]
			return &lesson
		}
	}
	if len(m.Lessons) > 0 {
		lesson := m.Lessons[0]
		return &lesson
	}
	return nil
}

// NextIncompleteLesson scans modules in order, then lessons in order,
// for the first lesson still to do. Nil means the course is fully
// completed.
func NextIncompleteLesson(c models.Course) *NextLesson {
	for _, m := range c.Modules {
		for _, lesson := range m.Lessons {
			if !lesson.Completed {
				return &NextLesson{ModuleID: m.ID, LessonID: lesson.ID, Title: lesson.Title}
			}
		}
	}
	return nil
}
