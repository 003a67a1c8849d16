package pricing

import "github.com/shopspring/decimal"

// Cart keeps items in insertion order and computes totals on demand.
type Cart struct {
	items []Item
	rates Rates
}

// NewCart returns an empty cart priced with the provided rates.
func NewCart(rates Rates) *Cart {
	return &Cart{rates: rates}
}

// Rates returns the configuration the cart was created with.
func (c *Cart) Rates() Rates { return c.rates }

// AddItem appends the item. Duplicates are kept as separate lines.
func (c *Cart) AddItem(item Item) {
	c.items = append(c.items, item)
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of lines in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Subtotal sums the line totals. An empty cart yields zero.
func (c *Cart) Subtotal() Money {
	subtotal := decimal.Zero
	for _, it := range c.items {
		subtotal = subtotal.Add(it.Total())
	}
	return subtotal
}

// ApplyDiscounts applies the member discount and then the big-spender
// discount. The threshold is checked against the member-discounted amount.
func (c *Cart) ApplyDiscounts(subtotal Money, isMember bool) Money {
	member, bigSpender := c.discounts(subtotal, isMember)
	return subtotal.Sub(member).Sub(bigSpender)
}

// Total computes subtotal, discounts, tax and coupon in that order.
func (c *Cart) Total(isMember, hasCoupon bool) Money {
	return c.Breakdown(isMember, hasCoupon).Total
}

// Breakdown is Total with every intermediate amount exposed.
func (c *Cart) Breakdown(isMember, hasCoupon bool) Summary {
	subtotal := c.Subtotal()
	member, bigSpender := c.discounts(subtotal, isMember)
	discounted := subtotal.Sub(member).Sub(bigSpender)
	tax := discounted.Mul(c.rates.TaxRate)
	total := discounted.Add(tax)
	coupon := decimal.Zero
	if hasCoupon {
		coupon = total.Mul(c.rates.CouponDiscount)
		total = total.Sub(coupon)
	}
	return Summary{
		Subtotal:           subtotal,
		MemberDiscount:     member,
		BigSpenderDiscount: bigSpender,
		Discounted:         discounted,
		Tax:                tax,
		Coupon:             coupon,
		Total:              total,
	}
}

func (c *Cart) discounts(subtotal Money, isMember bool) (member, bigSpender Money) {
	member = decimal.Zero
	if isMember {
		member = subtotal.Mul(c.rates.MemberDiscount)
	}
	bigSpender = decimal.Zero
	if subtotal.Sub(member).GreaterThan(c.rates.BigSpenderThreshold) {
		bigSpender = c.rates.BigSpenderDiscount
	}
	return member, bigSpender
}
