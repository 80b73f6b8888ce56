package model

import (
	"math"
	"testing"

	apperrors "event-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCartItems(t *testing.T) {
	t.Run("Success - merges duplicates and sorts by ticket id", func(t *testing.T) {
		items, err := NormalizeCartItems([]CartItem{
			{TicketID: 7, Quantity: 1},
			{TicketID: 2, Quantity: 3},
			{TicketID: 7, Quantity: 2},
		})

		require.NoError(t, err)
		assert.Equal(t, []CartItem{
			{TicketID: 2, Quantity: 3},
			{TicketID: 7, Quantity: 3},
		}, items)
	})

	t.Run("Failed - ErrEmptyCart", func(t *testing.T) {
		_, err := NormalizeCartItems(nil)
		assert.ErrorIs(t, err, apperrors.ErrEmptyCart)

		_, err = NormalizeCartItems([]CartItem{})
		assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	})

	t.Run("Failed - ErrInvalidQuantity", func(t *testing.T) {
		_, err := NormalizeCartItems([]CartItem{{TicketID: 1, Quantity: 0}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

		_, err = NormalizeCartItems([]CartItem{{TicketID: 1, Quantity: -2}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)
	})

	t.Run("Failed - merged quantity exceeds INT range", func(t *testing.T) {
		items, err := NormalizeCartItems([]CartItem{
			{TicketID: 1, Quantity: math.MaxInt},
			{TicketID: 1, Quantity: math.MaxInt},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)
		assert.Nil(t, items)

		_, err = NormalizeCartItems([]CartItem{
			{TicketID: 1, Quantity: math.MaxInt32},
			{TicketID: 1, Quantity: 1},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

		_, err = NormalizeCartItems([]CartItem{{TicketID: 1, Quantity: math.MaxInt}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

		items, err = NormalizeCartItems([]CartItem{
			{TicketID: 1, Quantity: math.MaxInt32 - 1},
			{TicketID: 1, Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, []CartItem{{TicketID: 1, Quantity: math.MaxInt32}}, items)
	})

	t.Run("Failed - ErrInvalidInput", func(t *testing.T) {
		_, err := NormalizeCartItems([]CartItem{{TicketID: 0, Quantity: 1}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
