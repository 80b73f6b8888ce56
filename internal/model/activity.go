package model

import "time"

const (
	ActivityCheckout       = "checkout"
	ActivityCheckoutFailed = "checkout_failed"
)

// ActivityLog 稽核紀錄，只新增不修改
type ActivityLog struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Action      string    `json:"action" db:"action"`
	Description string    `json:"description" db:"description"`
	IPAddress   string    `json:"ip_address" db:"ip_address"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
