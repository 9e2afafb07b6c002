package models

// Notification is a promotional coupon managed by admins through the
// notifications table in NocoDB.
type Notification struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CouponCode  string `json:"couponCode"`
	Discount    int    `json:"discount"`
	ExpiryDate  string `json:"expiryDate"`
	IsActive    bool   `json:"isActive"`
}
