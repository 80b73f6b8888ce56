package model

import (
	"math"
	"sort"

	apperrors "event-ticketing/pkg/app_errors"
)

// CartItem 購物車中的一筆票券與數量
type CartItem struct {
	TicketID int `json:"ticket_id"`
	Quantity int `json:"quantity"`
}

// NormalizeCartItems 驗證購物車內容，合併重複的票券，並依 ticket id 由小到大排序。
// 排序後的順序即為結帳時取得 row lock 的順序。
func NormalizeCartItems(items []CartItem) ([]CartItem, error) {
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	merged := make(map[int]int, len(items))
	for _, item := range items {
		if item.TicketID <= 0 {
			return nil, apperrors.ErrInvalidInput
		}
		if item.Quantity <= 0 {
			return nil, apperrors.ErrInvalidQuantity
		}
		// quantity 欄位為 INT，合併後不得超過 MaxInt32
		if merged[item.TicketID] > math.MaxInt32-item.Quantity {
			return nil, apperrors.ErrInvalidQuantity
		}
		merged[item.TicketID] += item.Quantity
	}

	normalized := make([]CartItem, 0, len(merged))
	for ticketID, quantity := range merged {
		normalized = append(normalized, CartItem{TicketID: ticketID, Quantity: quantity})
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].TicketID < normalized[j].TicketID
	})

	return normalized, nil
}
