// Package market holds the shared asset catalog and the random-walk price rule.
// Prices are quoted in the fiat anchor (RUB), which is always 1.
package market

import "time"

type AssetClass string

const (
	ClassFiat   AssetClass = "fiat"
	ClassCrypto AssetClass = "crypto"
	ClassStable AssetClass = "stable"
)

// BaseSymbol is the fiat anchor; its price is fixed at 1 and never walks.
const BaseSymbol = "RUB"

const (
	// RefreshInterval gates recomputation regardless of how many players read.
	RefreshInterval = 5 * time.Minute
	// MinPrice floors every walked price at a small positive value.
	MinPrice = 0.01
)

// Asset is one row of the static asset table. Stable assets track the price of
// Tracks with their own (smaller) volatility instead of walking independently.
type Asset struct {
	Symbol     string
	Glyph      string
	Class      AssetClass
	Volatility float64
	Tracks     string
}

var Assets = []Asset{
	{Symbol: BaseSymbol, Glyph: "₽", Class: ClassFiat, Volatility: 0},
	{Symbol: "USD", Glyph: "$", Class: ClassFiat, Volatility: 0.012},
	{Symbol: "USDT", Glyph: "₮", Class: ClassStable, Volatility: 0.004, Tracks: "USD"},
	{Symbol: "BTC", Glyph: "₿", Class: ClassCrypto, Volatility: 0.06},
	{Symbol: "ETH", Glyph: "Ξ", Class: ClassCrypto, Volatility: 0.08},
	{Symbol: "TON", Glyph: "◆", Class: ClassCrypto, Volatility: 0.10},
}

func AssetBySymbol(symbol string) (Asset, bool) {
	for _, a := range Assets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return Asset{}, false
}

// DefaultPrices seeds the table on first run.
func DefaultPrices() map[string]float64 {
	return map[string]float64{
		BaseSymbol: 1,
		"USD":      90,
		"USDT":     90,
		"BTC":      6_100_000,
		"ETH":      240_000,
		"TON":      520,
	}
}

// Rand is the uniform source the walk draws from.
type Rand interface {
	Float64() float64
}

// Step advances every price by one walk tick: the anchor stays at 1, stable
// assets move toward their tracked price with their own drift, everything else
// multiplies by (1 + drift) with drift uniform in ±volatility. Returns a new map.
func Step(prices map[string]float64, rng Rand) map[string]float64 {
	next := make(map[string]float64, len(Assets))
	for _, a := range Assets {
		prev, seeded := prices[a.Symbol]
		if !seeded || prev <= 0 {
			prev = DefaultPrices()[a.Symbol]
		}
		switch {
		case a.Symbol == BaseSymbol:
			next[a.Symbol] = 1
		case a.Class == ClassStable:
			// Settled after the pass below so it can track this tick's target.
			next[a.Symbol] = prev
		default:
			next[a.Symbol] = floorPrice(prev * (1 + drift(rng, a.Volatility)))
		}
	}
	for _, a := range Assets {
		if a.Class != ClassStable {
			continue
		}
		target, tracked := next[a.Tracks]
		if !tracked || target <= 0 {
			continue
		}
		next[a.Symbol] = floorPrice(target * (1 + drift(rng, a.Volatility)))
	}
	return next
}

func drift(rng Rand, volatility float64) float64 {
	if volatility <= 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * volatility
}

func floorPrice(p float64) float64 {
	if p < MinPrice {
		return MinPrice
	}
	return p
}
