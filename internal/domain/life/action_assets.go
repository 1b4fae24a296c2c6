package life

import (
	"fmt"
	"math"
)

func doAssetBuy(p *Player, symbol string, amount int, prices PriceView) Outcome {
	price, found := prices.Price(symbol)
	if !found || price <= 0 {
		return reject("Unknown option.")
	}
	if amount <= 0 {
		return reject("Amount must be greater than zero.")
	}
	if p.Cash < amount {
		return reject("Not enough cash.")
	}
	units := float64(amount) / price
	p.Cash -= amount
	p.Portfolio[symbol] += units
	return ok(fmt.Sprintf("Bought %.6f %s at %.2f (-%d cash).", units, symbol, price, amount))
}

func doAssetSell(p *Player, symbol string, fraction float64, prices PriceView) Outcome {
	price, found := prices.Price(symbol)
	if !found || price <= 0 {
		return reject("Unknown option.")
	}
	held := p.Portfolio[symbol]
	if held <= 0 {
		return reject(fmt.Sprintf("You hold no %s.", symbol))
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	units := held * fraction
	if units <= 0 {
		return reject("Nothing to sell at that fraction.")
	}
	proceeds := int(math.Floor(units * price))
	if proceeds <= 0 {
		return reject("The sale would be worth nothing at the current price.")
	}
	p.Portfolio[symbol] = held - units
	p.Cash += proceeds
	return ok(fmt.Sprintf("Sold %.6f %s at %.2f (+%d cash).", units, symbol, price, proceeds))
}
