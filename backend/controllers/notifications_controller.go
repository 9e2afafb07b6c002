package controllers

import (
	"github.com/dsgnbruno/member-area-v2/backend/models"
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// NotificationsController manages promotional coupons. Admins get the
// full CRUD surface; members only see active coupons, decoded into the
// Notification shape the UI expects.
type NotificationsController struct {
	Notifications *nocodb.Table
}

func NewNotificationsController(notifications *nocodb.Table) *NotificationsController {
	return &NotificationsController{Notifications: notifications}
}

// GetActive lists coupons currently running, for the banner shown on
// every page.
func (nc *NotificationsController) GetActive(c *fiber.Ctx) error {
	records, err := nc.Notifications.List(c.UserContext())
	if err != nil {
		return remoteError(c, err)
	}

	active := []models.Notification{}
	for _, record := range records {
		n := decodeNotification(record)
		if n.IsActive {
			active = append(active, n)
		}
	}
	return c.JSON(active)
}

func (nc *NotificationsController) ListNotifications(c *fiber.Ctx) error {
	records, err := nc.Notifications.List(c.UserContext())
	if err != nil {
		return remoteError(c, err)
	}

	result := make([]models.Notification, 0, len(records))
	for _, record := range records {
		result = append(result, decodeNotification(record))
	}
	return c.JSON(result)
}

func (nc *NotificationsController) CreateNotification(c *fiber.Ctx) error {
	var input models.Notification
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Discount < 0 || input.Discount > 100 {
		return utils.BadRequest(c, "Discount must be between 0 and 100")
	}

	created, err := nc.Notifications.Create(c.UserContext(), encodeNotification(input))
	if err != nil {
		return remoteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(decodeNotification(created))
}

func (nc *NotificationsController) UpdateNotification(c *fiber.Ctx) error {
	var input models.Notification
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Discount < 0 || input.Discount > 100 {
		return utils.BadRequest(c, "Discount must be between 0 and 100")
	}

	updated, err := nc.Notifications.Update(c.UserContext(), c.Params("id"), encodeNotification(input))
	if err != nil {
		return remoteError(c, err)
	}
	return c.JSON(decodeNotification(updated))
}

func (nc *NotificationsController) DeleteNotification(c *fiber.Ctx) error {
	if err := nc.Notifications.Delete(c.UserContext(), c.Params("id")); err != nil {
		return remoteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func decodeNotification(r nocodb.Record) models.Notification {
	title, _ := r.StringField("title", "Title")
	description, _ := r.StringField("description", "Description")
	couponCode, _ := r.StringField("couponCode", "CouponCode", "coupon_code")
	expiryDate, _ := r.StringField("expiryDate", "ExpiryDate", "expiry_date")

	discount := 0
	if v, ok := r.Field("discount", "Discount"); ok {
		if f, isNumber := v.(float64); isNumber {
			discount = int(f)
		}
	}

	return models.Notification{
		ID:          r.ID(),
		Title:       title,
		Description: description,
		CouponCode:  couponCode,
		Discount:    discount,
		ExpiryDate:  expiryDate,
		IsActive:    r.BoolField("isActive", "IsActive", "is_active"),
	}
}

func encodeNotification(n models.Notification) nocodb.Record {
	return nocodb.Record{
		"title":       n.Title,
		"description": n.Description,
		"couponCode":  n.CouponCode,
		"discount":    n.Discount,
		"expiryDate":  n.ExpiryDate,
		"isActive":    n.IsActive,
	}
}
