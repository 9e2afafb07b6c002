package controllers

import (
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCoursesController manages the course catalog rows in NocoDB.
// It is a thin proxy: rows pass through as records so admins see every
// column the table exposes, generated field ids included.
type AdminCoursesController struct {
	Courses *nocodb.Table
}

func NewAdminCoursesController(courses *nocodb.Table) *AdminCoursesController {
	return &AdminCoursesController{Courses: courses}
}

func (ac *AdminCoursesController) ListCourses(c *fiber.Ctx) error {
	records, err := ac.Courses.List(c.UserContext())
	if err != nil {
		return remoteError(c, err)
	}
	return c.JSON(records)
}

func (ac *AdminCoursesController) CreateCourse(c *fiber.Ctx) error {
	var record nocodb.Record
	if err := c.BodyParser(&record); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	created, err := ac.Courses.Create(c.UserContext(), record)
	if err != nil {
		return remoteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ac *AdminCoursesController) UpdateCourse(c *fiber.Ctx) error {
	var patch nocodb.Record
	if err := c.BodyParser(&patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updated, err := ac.Courses.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return remoteError(c, err)
	}
	return c.JSON(updated)
}

func (ac *AdminCoursesController) DeleteCourse(c *fiber.Ctx) error {
	if err := ac.Courses.Delete(c.UserContext(), c.Params("id")); err != nil {
		return remoteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Status checks connectivity to the record service: row count plus the
// field names of a sample row, so schema drift shows up immediately.
func (ac *AdminCoursesController) Status(c *fiber.Ctx) error {
	count, err := ac.Courses.Count(c.UserContext())
	if err != nil {
		return remoteError(c, err)
	}

	records, err := ac.Courses.List(c.UserContext())
	if err != nil {
		return remoteError(c, err)
	}

	fields := []string{}
	if len(records) > 0 {
		for key := range records[0] {
			fields = append(fields, key)
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"count":  count,
		"fields": fields,
	})
}
