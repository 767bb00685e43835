// Package pricing computes order totals. All amounts are rupees; totals
// are rounded half-up to whole rupees since the menu has no fractional
// prices.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Line is the minimal cart view the engine needs.
type Line struct {
	Price    float64
	Quantity int
}

// Quote is the result of pricing a cart against a discount percentage.
type Quote struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discount"`
	DiscountAmount  float64 `json:"discountAmount"`
	Total           int     `json:"total"`
	TotalAmount     int     `json:"totalAmount"`
}

// Subtotal sums price x quantity over all lines.
func Subtotal(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// ClampPercent restricts a discount percentage to [0, 100].
func ClampPercent(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}

// ParsePercent interprets a user-entered discount value. Numbers are
// clamped; empty or non-numeric input means no discount.
func ParsePercent(v any) float64 {
	switch d := v.(type) {
	case float64:
		return ClampPercent(d)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return ClampPercent(parsed)
	default:
		return 0
	}
}

// Compute prices the given lines. Total is the rounded pre-discount
// subtotal; TotalAmount = round(subtotal - subtotal*pct/100).
func Compute(lines []Line, pct float64) Quote {
	pct = ClampPercent(pct)
	subtotal := Subtotal(lines)
	discountAmount := subtotal * pct / 100

	return Quote{
		Subtotal:        subtotal,
		DiscountPercent: pct,
		DiscountAmount:  discountAmount,
		Total:           int(math.Round(subtotal)),
		TotalAmount:     int(math.Round(subtotal - discountAmount)),
	}
}
