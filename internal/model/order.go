package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus 訂單狀態類型
type OrderStatus string

// 沒有付款流程，結帳成功即為 Completed
const OrderStatusCompleted OrderStatus = "Completed"

// Order 訂單模型，建立後不可變
type Order struct {
	ID         int             `json:"id" db:"id"`
	UserID     int             `json:"user_id" db:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	Status     OrderStatus     `json:"status" db:"status"`
	OrderDate  time.Time       `json:"order_date" db:"order_date"`
}

// OrderItem 訂單明細，PricePerTicket 是結帳當下的單價快照
type OrderItem struct {
	ID             int             `json:"id" db:"id"`
	OrderID        int             `json:"order_id" db:"order_id"`
	TicketID       int             `json:"ticket_id" db:"ticket_id"`
	Quantity       int             `json:"quantity" db:"quantity"`
	PricePerTicket decimal.Decimal `json:"price_per_ticket" db:"price_per_ticket"`

	// 以下欄位來自 join，僅供讀取
	TicketType    string    `json:"ticket_type,omitempty"`
	EventTitle    string    `json:"event_title,omitempty"`
	EventDate     time.Time `json:"event_date,omitempty"`
	EventLocation string    `json:"event_location,omitempty"`
	EventImageURL *string   `json:"event_image_url,omitempty"`
}

// Subtotal 明細小計
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.PricePerTicket.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderWithItems 訂單與其明細；Buyer 只在管理端列表提供
type OrderWithItems struct {
	Order
	Buyer *UserSummary `json:"buyer,omitempty"`
	Items []*OrderItem `json:"items"`
}

// OrderStats 後台儀表板統計
type OrderStats struct {
	TotalEvents int             `json:"total_events"`
	TotalUsers  int             `json:"total_users"`
	TotalOrders int             `json:"total_orders"`
	Revenue     decimal.Decimal `json:"revenue"`
}
