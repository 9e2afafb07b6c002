package controllers

import (
	"github.com/dsgnbruno/member-area-v2/backend/catalog"
	"github.com/dsgnbruno/member-area-v2/backend/middleware"
	"github.com/dsgnbruno/member-area-v2/backend/models"
	"github.com/dsgnbruno/member-area-v2/backend/progress"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Catalog *catalog.Store
}

func NewCoursesController(store *catalog.Store) *CoursesController {
	return &CoursesController{Catalog: store}
}

// GetCourses lists the catalog as the caller is entitled to see it.
// Lifetime members see locked courses unlocked; the stored status is
// untouched for everyone else.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	courses := cc.Catalog.ListAvailable(claims.Lifetime)

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, courseSummary(course))
	}

	return c.JSON(result)
}

// GetBookmarked lists bookmarked courses in catalog order.
func (cc *CoursesController) GetBookmarked(c *fiber.Ctx) error {
	result := []fiber.Map{}
	for _, course := range cc.Catalog.ListBookmarked() {
		result = append(result, courseSummary(course))
	}
	return c.JSON(result)
}

// GetCourseDetails returns one course with its derived progress and
// the next lesson to pick up. Unknown ids render the empty state.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, ok := cc.Catalog.GetByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	moduleProgress := make([]fiber.Map, 0, len(course.Modules))
	for _, m := range course.Modules {
		moduleProgress = append(moduleProgress, fiber.Map{
			"id":       m.ID,
			"title":    m.Title,
			"progress": progress.ModuleProgress(m),
		})
	}

	return c.JSON(fiber.Map{
		"course":         course,
		"progress":       progress.CourseProgress(course),
		"moduleProgress": moduleProgress,
		"nextLesson":     progress.NextIncompleteLesson(course),
	})
}

// ToggleBookmark flips the bookmark on a course. An unknown id still
// answers 404 here even though the store treats it as a no-op.
func (cc *CoursesController) ToggleBookmark(c *fiber.Ctx) error {
	id := c.Params("id")
	cc.Catalog.ToggleBookmark(id)

	course, ok := cc.Catalog.GetByID(id)
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	return c.JSON(fiber.Map{
		"id":         course.ID,
		"bookmarked": course.Bookmarked,
	})
}

// GetClassroom resolves the classroom view: the active lesson (the
// requested one, or where the course should resume) plus its
// neighbours in the canonical lesson order.
func (cc *CoursesController) GetClassroom(c *fiber.Ctx) error {
	course, ok := cc.Catalog.GetByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	if len(course.Modules) == 0 {
		return c.JSON(fiber.Map{
			"course":   course,
			"progress": progress.CourseProgress(course),
		})
	}

	moduleID := c.Query("module")
	lessonID := c.Query("lesson")

	var active *models.Lesson
	if moduleID != "" && lessonID != "" {
		active = findLesson(course, moduleID, lessonID)
		if active == nil {
			return utils.NotFound(c, "Lesson not found")
		}
	} else {
		first := course.Modules[0]
		moduleID = first.ID
		active = progress.FirstLessonToResume(first)
	}

	var prev, next *progress.Position
	if active != nil {
		prev, next = progress.FindAdjacent(course, moduleID, active.ID)
	}

	return c.JSON(fiber.Map{
		"course":       course,
		"progress":     progress.CourseProgress(course),
		"moduleId":     moduleID,
		"activeLesson": active,
		"prev":         prev,
		"next":         next,
	})
}

func courseSummary(course models.Course) fiber.Map {
	return fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"thumbnail":     course.Thumbnail,
		"instructor":    course.Instructor,
		"estimatedTime": course.EstimatedTime,
		"category":      course.Category,
		"status":        course.Status,
		"progress":      progress.CourseProgress(course),
		"bookmarked":    course.Bookmarked,
	}
}

func findLesson(course models.Course, moduleID, lessonID string) *models.Lesson {
	for _, m := range course.Modules {
		if m.ID != moduleID {
			continue
		}
		for i := range m.Lessons {
			if m.Lessons[i].ID == lessonID {
				lesson := m.Lessons[i]
				return &lesson
			}
		}
	}
	return nil
}
