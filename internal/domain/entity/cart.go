package entity

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Cart is the client-owned cart: an ordered list of product identifiers where
// duplicates represent quantity. It lives in a browser cookie as a
// comma-joined string; the server only ever sees it as the checkout body's
// cart field and trusts nothing beyond what ParseCart verifies.
type Cart []int64

// ErrMalformedCart is returned when a cart token is not a positive integer.
var ErrMalformedCart = errors.New("cart contains a malformed product identifier")

// ParseCart parses the comma-joined cart string. An empty string is a valid
// empty cart, never an error.
func ParseCart(raw string) (Cart, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Cart{}, nil
	}

	tokens := strings.Split(raw, ",")
	cart := make(Cart, 0, len(tokens))
	for _, token := range tokens {
		id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.Wrapf(ErrMalformedCart, "token %q", token)
		}
		cart = append(cart, id)
	}

	return cart, nil
}

// IsEmpty reports whether the cart holds no product identifiers.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Quantities aggregates the flat identifier list into per-product counts.
// An empty cart yields an empty map.
func (c Cart) Quantities() map[int64]int {
	quantities := make(map[int64]int, len(c))
	for _, id := range c {
		quantities[id]++
	}

	return quantities
}

// ProductIDs returns the distinct product identifiers in first-seen order.
func (c Cart) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(c))
	ids := make([]int64, 0, len(c))
	for _, id := range c {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// String serializes the cart back to its comma-joined cookie form.
func (c Cart) String() string {
	if len(c) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(c))
	for _, id := range c {
		tokens = append(tokens, strconv.FormatInt(id, 10))
	}

	return strings.Join(tokens, ",")
}
