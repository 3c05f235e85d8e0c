package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCart_AggregatesDuplicates(t *testing.T) {
	cart, err := ParseCart("3,5,3,3")

	require.NoError(t, err)
	assert.Equal(t, map[int64]int{3: 3, 5: 1}, cart.Quantities())
	assert.Equal(t, []int64{3, 5}, cart.ProductIDs())
	assert.Equal(t, "3,5,3,3", cart.String())
}

func TestParseCart_EmptyStringIsEmptyCart(t *testing.T) {
	cart, err := ParseCart("")

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Quantities())
	assert.Equal(t, "", cart.String())
}

func TestParseCart_TrimsWhitespace(t *testing.T) {
	cart, err := ParseCart(" 7 , 7 ,9 ")

	require.NoError(t, err)
	assert.Equal(t, map[int64]int{7: 2, 9: 1}, cart.Quantities())
}

func TestParseCart_RejectsMalformedTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "letters", raw: "3,abc"},
		{name: "zero", raw: "0"},
		{name: "negative", raw: "3,-1"},
		{name: "empty token", raw: "3,,5"},
		{name: "float", raw: "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCart(tt.raw)
			require.ErrorIs(t, err, ErrMalformedCart)
		})
	}
}
