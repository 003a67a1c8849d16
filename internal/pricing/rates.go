package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInconsistentSummary is returned when summary components do not add up.
var ErrInconsistentSummary = errors.New("pricing: inconsistent summary")

// Money represents a monetary value.
type Money = decimal.Decimal

// Rates holds the discount and tax configuration a cart is built with.
type Rates struct {
	// TaxRate is the fraction added on top of the discounted subtotal.
	TaxRate decimal.Decimal
	// MemberDiscount is the fraction removed from the subtotal for members.
	MemberDiscount decimal.Decimal
	// BigSpenderDiscount is a flat amount, not a rate.
	BigSpenderDiscount Money
	// BigSpenderThreshold must be strictly exceeded by the member-discounted
	// subtotal for BigSpenderDiscount to apply.
	BigSpenderThreshold Money
	// CouponDiscount is the fraction removed from the tax-inclusive total.
	CouponDiscount decimal.Decimal
	// Currency is informational only.
	Currency string
}

// DefaultRates returns the standard storefront configuration.
func DefaultRates() Rates {
	return Rates{
		TaxRate:             decimal.RequireFromString("0.08"),
		MemberDiscount:      decimal.RequireFromString("0.05"),
		BigSpenderDiscount:  decimal.NewFromInt(10),
		BigSpenderThreshold: decimal.NewFromInt(100),
		CouponDiscount:      decimal.RequireFromString("0.15"),
		Currency:            "USD",
	}
}

// Summary aggregates the components of a computed cart total.
type Summary struct {
	Subtotal           Money
	MemberDiscount     Money
	BigSpenderDiscount Money
	Discounted         Money
	Tax                Money
	Coupon             Money
	Total              Money
}

// Verify checks that the discounted amount and total follow from the other
// components.
func (s Summary) Verify() error {
	discounted := s.Subtotal.Sub(s.MemberDiscount).Sub(s.BigSpenderDiscount)
	if !discounted.Equal(s.Discounted) {
		return fmt.Errorf("%w: discounted %s, want %s", ErrInconsistentSummary, s.Discounted, discounted)
	}
	total := s.Discounted.Add(s.Tax).Sub(s.Coupon)
	if !total.Equal(s.Total) {
		return fmt.Errorf("%w: total %s, want %s", ErrInconsistentSummary, s.Total, total)
	}
	return nil
}
