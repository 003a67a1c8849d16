package pricing

import "github.com/shopspring/decimal"

const (
	// CategoryGeneral is assigned to items created without a category.
	CategoryGeneral = "general"
	// CategoryElectronics carries a per-unit environmental fee.
	CategoryElectronics = "electronics"
)

var (
	// ElectronicsEnvFee is charged per unit for CategoryElectronics items.
	ElectronicsEnvFee = decimal.NewFromInt(5)

	clearanceFactor = decimal.RequireFromString("0.6")
)

// Item describes a purchasable cart line. It is immutable once built.
type Item struct {
	name     string
	price    Money
	qty      int
	category string
	envFee   Money
}

// ItemOption customises an Item at construction time.
type ItemOption func(*Item)

// WithCategory sets the item category, replacing CategoryGeneral.
func WithCategory(category string) ItemOption {
	return func(it *Item) {
		it.category = category
	}
}

// NewItem builds an item. Prices and quantities are taken as given.
func NewItem(name string, price Money, qty int, opts ...ItemOption) Item {
	it := Item{
		name:     name,
		price:    price,
		qty:      qty,
		category: CategoryGeneral,
		envFee:   decimal.Zero,
	}
	for _, opt := range opts {
		opt(&it)
	}
	if it.category == CategoryElectronics {
		it.envFee = ElectronicsEnvFee
	}
	return it
}

func (it Item) Name() string { return it.name }

func (it Item) Price() Money { return it.price }

func (it Item) Qty() int { return it.qty }

func (it Item) Category() string { return it.category }

// EnvFee returns the per-unit environmental fee.
func (it Item) EnvFee() Money { return it.envFee }

// Total returns the line total including the environmental fee.
func (it Item) Total() Money {
	qty := decimal.NewFromInt(int64(it.qty))
	return it.price.Mul(qty).Add(it.envFee.Mul(qty))
}

// ClearanceTotal returns the line at 40% off. The environmental fee is not
// included and carts never use this value.
func (it Item) ClearanceTotal() Money {
	return it.price.Mul(decimal.NewFromInt(int64(it.qty))).Mul(clearanceFactor)
}
