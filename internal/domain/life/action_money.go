package life

import "fmt"

func doBuyItem(p *Player, item string) Outcome {
	spec, found := ShopItemByName(item)
	if !found {
		return reject("Unknown option.")
	}
	if p.Cash < spec.Price {
		return reject(fmt.Sprintf("%s costs %d. Not enough cash.", spec.Title, spec.Price))
	}
	p.Cash -= spec.Price
	p.AddItem(spec.Item, 1)
	return ok(fmt.Sprintf("Bought: %s (-%d cash).", spec.Title, spec.Price))
}

func doRent(p *Player, tierID string) Outcome {
	tier, found := RentTierByID(tierID)
	if !found {
		return reject("Unknown option.")
	}
	if p.Cash < tier.Price {
		return reject(fmt.Sprintf("%s costs %d. Not enough cash.", tier.Name, tier.Price))
	}
	p.Cash -= tier.Price
	p.Vitals.Energy += tier.EnergyBonus
	p.Vitals.Mood += tier.MoodBonus
	p.Vitals.Stress += tier.StressDelta
	p.Clamp()
	p.Location = LocationHome
	return ok(fmt.Sprintf("%s: -%d cash, energy +%d, mood +%d, stress %+d.",
		tier.Name, tier.Price, tier.EnergyBonus, tier.MoodBonus, tier.StressDelta))
}

func doBankDeposit(p *Player, amount int) Outcome {
	if amount <= 0 {
		return reject("Amount must be greater than zero.")
	}
	if p.Cash < amount {
		return reject("Not enough cash.")
	}
	p.Cash -= amount
	p.Bank += amount
	return ok(fmt.Sprintf("Deposited: +%d to the bank.", amount))
}

func doBankWithdraw(p *Player, amount int) Outcome {
	if amount <= 0 {
		return reject("Amount must be greater than zero.")
	}
	if p.Bank < amount {
		return reject("Not enough money in the account.")
	}
	p.Bank -= amount
	p.Cash += amount
	return ok(fmt.Sprintf("Withdrew: +%d in cash.", amount))
}
