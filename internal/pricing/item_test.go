package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cart-total/internal/pricing"
)

func money(v string) pricing.Money {
	return decimal.RequireFromString(v)
}

func requireMoney(t *testing.T, want string, got pricing.Money) {
	t.Helper()
	require.Truef(t, money(want).Equal(got), "expected %s, got %s", want, got.String())
}

func TestNewItemDefaultsToGeneral(t *testing.T) {
	it := pricing.NewItem("Apple", money("1.5"), 10)

	require.Equal(t, "Apple", it.Name())
	require.Equal(t, pricing.CategoryGeneral, it.Category())
	require.Equal(t, 10, it.Qty())
	requireMoney(t, "1.5", it.Price())
	requireMoney(t, "0", it.EnvFee())
}

func TestWithCategoryEmptyIsKept(t *testing.T) {
	it := pricing.NewItem("Thing", money("2"), 1, pricing.WithCategory(""))
	require.Equal(t, "", it.Category())
	requireMoney(t, "0", it.EnvFee())
	requireMoney(t, "2", it.Total())
}

func TestItemTotal(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		qty      int
		category string
		want     string
		envFee   string
	}{
		{name: "general", price: "1.5", qty: 10, want: "15", envFee: "0"},
		{name: "other category", price: "0.5", qty: 5, category: "grocery", want: "2.5", envFee: "0"},
		{name: "electronics single", price: "1000", qty: 1, category: "electronics", want: "1005", envFee: "5"},
		{name: "electronics multi", price: "20", qty: 3, category: "electronics", want: "75", envFee: "5"},
		{name: "zero qty", price: "20", qty: 0, category: "electronics", want: "0", envFee: "5"},
		{name: "negative price passes through", price: "-3", qty: 2, want: "-6", envFee: "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := pricing.NewItem("x", money(tc.price), tc.qty, pricing.WithCategory(tc.category))
			requireMoney(t, tc.envFee, it.EnvFee())
			requireMoney(t, tc.want, it.Total())
		})
	}
}

func TestElectronicsCategoryIsCaseSensitive(t *testing.T) {
	it := pricing.NewItem("Radio", money("10"), 2, pricing.WithCategory("Electronics"))
	requireMoney(t, "0", it.EnvFee())
	requireMoney(t, "20", it.Total())
}

func TestClearanceTotalIgnoresEnvFee(t *testing.T) {
	general := pricing.NewItem("Apple", money("1.5"), 10)
	requireMoney(t, "9", general.ClearanceTotal())

	laptop := pricing.NewItem("Laptop", money("1000"), 1, pricing.WithCategory(pricing.CategoryElectronics))
	requireMoney(t, "600", laptop.ClearanceTotal())
	requireMoney(t, "1005", laptop.Total())
}
