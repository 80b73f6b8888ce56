package model

import "github.com/shopspring/decimal"

type CheckoutRequest struct {
	Items []CartItem `json:"items"`
}

// CheckoutCommand 是結帳引擎的輸入；購物車內容一律由呼叫端明確傳入
type CheckoutCommand struct {
	UserID   int
	Items    []CartItem
	ClientIP string
}

type CheckoutResult struct {
	OrderID    int             `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
