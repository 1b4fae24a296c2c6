package market

import (
	"math"
	"testing"
)

// seqRand replays a fixed queue of uniforms; an exhausted queue returns 0.5
// (zero drift).
type seqRand struct {
	vals []float64
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

func TestStepKeepsAnchorFixed(t *testing.T) {
	next := Step(DefaultPrices(), &seqRand{vals: []float64{0, 1, 0, 1, 0, 1}})
	if next[BaseSymbol] != 1 {
		t.Fatalf("anchor price = %v, want 1", next[BaseSymbol])
	}
}

func TestStepBoundsDriftByVolatility(t *testing.T) {
	prices := DefaultPrices()
	// Maximum upward drift everywhere.
	next := Step(prices, &seqRand{vals: []float64{1, 1, 1, 1, 1, 1, 1}})

	for _, a := range Assets {
		if a.Symbol == BaseSymbol || a.Class == ClassStable {
			continue
		}
		want := prices[a.Symbol] * (1 + a.Volatility)
		if math.Abs(next[a.Symbol]-want) > 1e-6*want {
			t.Fatalf("%s = %v, want %v at max drift", a.Symbol, next[a.Symbol], want)
		}
	}
}

func TestStepStableTracksTarget(t *testing.T) {
	prices := DefaultPrices()
	prices["USDT"] = 42 // badly depegged

	// Zero drift everywhere: USD stays put and USDT snaps back to it.
	next := Step(prices, &seqRand{})

	if math.Abs(next["USDT"]-next["USD"]) > 1e-9 {
		t.Fatalf("USDT = %v, want pegged to USD %v", next["USDT"], next["USD"])
	}
}

func TestStepFloorsCollapsedPrices(t *testing.T) {
	prices := DefaultPrices()
	prices["TON"] = MinPrice

	// Maximum downward drift.
	next := Step(prices, &seqRand{vals: []float64{0, 0, 0, 0, 0, 0, 0}})

	if next["TON"] < MinPrice {
		t.Fatalf("TON = %v, below the floor", next["TON"])
	}
	for sym, p := range next {
		if p <= 0 {
			t.Fatalf("%s = %v, want strictly positive", sym, p)
		}
	}
}

func TestStepSeedsMissingSymbols(t *testing.T) {
	next := Step(map[string]float64{}, &seqRand{})

	defaults := DefaultPrices()
	for _, a := range Assets {
		if _, ok := next[a.Symbol]; !ok {
			t.Fatalf("missing %s in stepped prices", a.Symbol)
		}
		if next[a.Symbol] <= 0 {
			t.Fatalf("%s seeded non-positive", a.Symbol)
		}
		// Zero drift means the seeded value is the default.
		if a.Symbol != BaseSymbol && math.Abs(next[a.Symbol]-defaults[a.Symbol]) > 1e-6*defaults[a.Symbol] {
			t.Fatalf("%s = %v, want default %v", a.Symbol, next[a.Symbol], defaults[a.Symbol])
		}
	}
}

func TestAssetBySymbol(t *testing.T) {
	btc, ok := AssetBySymbol("BTC")
	if !ok || btc.Class != ClassCrypto {
		t.Fatalf("unexpected BTC row: %+v ok=%v", btc, ok)
	}
	if _, ok := AssetBySymbol("DOGE"); ok {
		t.Fatal("expected lookup miss")
	}
	usdt, _ := AssetBySymbol("USDT")
	if usdt.Tracks != "USD" {
		t.Fatalf("USDT tracks %q", usdt.Tracks)
	}
}
