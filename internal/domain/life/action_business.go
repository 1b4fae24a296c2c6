package life

import "fmt"

func doBusinessBuy(p *Player, id string) Outcome {
	spec, found := BusinessByID(id)
	if !found {
		return reject("Unknown option.")
	}
	if _, owned := p.Businesses[id]; owned {
		return reject(fmt.Sprintf("You already own the %s.", spec.Name))
	}
	if p.Cash < spec.BuyPrice {
		return reject(fmt.Sprintf("%s costs %d. Not enough cash.", spec.Name, spec.BuyPrice))
	}
	p.Cash -= spec.BuyPrice
	// First income settles on the sleep that closes out the next day.
	p.Businesses[id] = BusinessHolding{Level: 1, LastPaidDay: p.Day}
	return ok(fmt.Sprintf("Bought: %s (-%d cash). Daily income: %d.",
		spec.Name, spec.BuyPrice, BusinessDailyIncome(spec, 1)))
}

func doBusinessUpgrade(p *Player, id string) Outcome {
	spec, found := BusinessByID(id)
	if !found {
		return reject("Unknown option.")
	}
	holding, owned := p.Businesses[id]
	if !owned {
		return reject(fmt.Sprintf("You do not own the %s yet.", spec.Name))
	}
	cost := BusinessUpgradeCost(spec, holding.Level)
	if p.Cash < cost {
		return reject(fmt.Sprintf("Upgrading the %s costs %d. Not enough cash.", spec.Name, cost))
	}
	p.Cash -= cost
	holding.Level++
	p.Businesses[id] = holding
	return ok(fmt.Sprintf("%s upgraded to level %d (-%d cash). Daily income: %d.",
		spec.Name, holding.Level, cost, BusinessDailyIncome(spec, holding.Level)))
}
