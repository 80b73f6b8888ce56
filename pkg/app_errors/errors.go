package apperrors

import (
	"errors"
	"fmt"
)

var (
	// Validation
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidInput    = errors.New("invalid input")

	// Not found
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")

	// Conflict
	ErrInsufficientStock = errors.New("insufficient stock")

	// Persistence
	ErrCheckoutFailed = errors.New("checkout failed")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// StockError 指出是哪一張票庫存不足，讓使用者可以調整購物車
type StockError struct {
	TicketID  int
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for ticket %d: requested %d, available %d", e.TicketID, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// TicketNotFoundError 帶上找不到的 ticket id，可 errors.Is 成 ErrTicketNotFound
type TicketNotFoundError struct {
	TicketID int
}

func (e *TicketNotFoundError) Error() string {
	return fmt.Sprintf("ticket %d not found", e.TicketID)
}

func (e *TicketNotFoundError) Unwrap() error {
	return ErrTicketNotFound
}

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPersistence
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// KindOf 把 error 歸類到對應的錯誤類型，未知錯誤回傳 KindUnknown
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrTicketNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrCartItemNotFound),
		errors.Is(err, ErrOrderNotFound):
		return KindNotFound
	case errors.Is(err, ErrInsufficientStock):
		return KindConflict
	case errors.Is(err, ErrCheckoutFailed):
		return KindPersistence
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindUnknown
	}
}
