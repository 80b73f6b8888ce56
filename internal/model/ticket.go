package model

import "github.com/shopspring/decimal"

// Ticket 票種；Price 建立後不再變更，QuantityAvailable 只由結帳扣減
type Ticket struct {
	ID                int             `json:"id" db:"id"`
	EventID           int             `json:"event_id" db:"event_id"`
	TicketType        string          `json:"ticket_type" db:"ticket_type"`
	Price             decimal.Decimal `json:"price" db:"price"`
	QuantityAvailable int             `json:"quantity_available" db:"quantity_available"`
}

// HasStock 檢查剩餘數量是否足夠
func (t *Ticket) HasStock(quantity int) bool {
	return t.QuantityAvailable >= quantity
}
