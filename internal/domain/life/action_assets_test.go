package life

import (
	"math"
	"testing"
)

func TestAssetBuyConvertsCashToUnits(t *testing.T) {
	p := newTestPlayer()
	prices := stubPrices{"BTC": 500}

	out := Apply(&p, ActionRequest{Kind: ActionAssetBuy, Symbol: "BTC", Amount: 1000}, prices, &scriptRand{})

	if out.Rejected {
		t.Fatalf("unexpected rejection: %q", out.Text)
	}
	if p.Cash != StartCash-1000 {
		t.Fatalf("cash = %d", p.Cash)
	}
	if got := p.Portfolio["BTC"]; math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("units = %v, want 2", got)
	}
}

func TestAssetBuyRejections(t *testing.T) {
	p := newTestPlayer()
	prices := stubPrices{"BTC": 500}

	for _, req := range []ActionRequest{
		{Kind: ActionAssetBuy, Symbol: "DOGE", Amount: 100},
		{Kind: ActionAssetBuy, Symbol: "BTC", Amount: 0},
		{Kind: ActionAssetBuy, Symbol: "BTC", Amount: StartCash + 1},
	} {
		out := Apply(&p, req, prices, &scriptRand{})
		if !out.Rejected {
			t.Fatalf("expected rejection for %+v", req)
		}
	}
	if p.Cash != StartCash || len(p.Portfolio) != 0 {
		t.Fatalf("rejections mutated the player: cash %d portfolio %v", p.Cash, p.Portfolio)
	}
}

func TestAssetSellFractionRoundTrip(t *testing.T) {
	p := newTestPlayer()
	p.Portfolio["ETH"] = 2.0
	prices := stubPrices{"ETH": 300}

	out := Apply(&p, ActionRequest{Kind: ActionAssetSell, Symbol: "ETH", Fraction: 0.5}, prices, &scriptRand{})
	if out.Rejected {
		t.Fatalf("unexpected rejection: %q", out.Text)
	}
	if p.Cash != StartCash+300 {
		t.Fatalf("cash = %d, want proceeds of 300", p.Cash)
	}
	if got := p.Portfolio["ETH"]; math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("remaining units = %v, want 1", got)
	}

	// Fractions above 1 clamp to a full liquidation.
	out = Apply(&p, ActionRequest{Kind: ActionAssetSell, Symbol: "ETH", Fraction: 3}, prices, &scriptRand{})
	if out.Rejected {
		t.Fatalf("unexpected rejection: %q", out.Text)
	}
	if got := p.Portfolio["ETH"]; got != 0 {
		t.Fatalf("remaining units = %v, want 0", got)
	}
	if p.Cash != StartCash+600 {
		t.Fatalf("cash = %d", p.Cash)
	}
}

func TestAssetSellWorthlessDustRejected(t *testing.T) {
	p := newTestPlayer()
	p.Portfolio["TON"] = 0.5
	prices := stubPrices{"TON": 0.01}

	out := Apply(&p, ActionRequest{Kind: ActionAssetSell, Symbol: "TON", Fraction: 1}, prices, &scriptRand{})

	if !out.Rejected {
		t.Fatal("expected rejection for a worthless sale")
	}
	if p.Portfolio["TON"] != 0.5 || p.Cash != StartCash {
		t.Fatalf("rejection mutated the player: %v cash %d", p.Portfolio, p.Cash)
	}
}

func TestAssetSellNothingHeld(t *testing.T) {
	p := newTestPlayer()
	prices := stubPrices{"BTC": 500}

	out := Apply(&p, ActionRequest{Kind: ActionAssetSell, Symbol: "BTC", Fraction: 1}, prices, &scriptRand{})
	if !out.Rejected {
		t.Fatal("expected rejection with no holdings")
	}

	p.Portfolio["BTC"] = 1
	out = Apply(&p, ActionRequest{Kind: ActionAssetSell, Symbol: "BTC", Fraction: 0}, prices, &scriptRand{})
	if !out.Rejected {
		t.Fatal("expected rejection at a zero fraction")
	}
}

func TestAssetBuyThenSellRoundTripWithinRounding(t *testing.T) {
	p := newTestPlayer()
	prices := stubPrices{"USD": 90}

	Apply(&p, ActionRequest{Kind: ActionAssetBuy, Symbol: "USD", Amount: 1000}, prices, &scriptRand{})
	Apply(&p, ActionRequest{Kind: ActionAssetSell, Symbol: "USD", Fraction: 1}, prices, &scriptRand{})

	// Selling floors the proceeds, so at most one unit of cash is lost.
	if p.Cash < StartCash-1 || p.Cash > StartCash {
		t.Fatalf("cash = %d, want within 1 of %d", p.Cash, StartCash)
	}
}
