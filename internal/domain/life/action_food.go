package life

import "fmt"

func doEatInventory(p *Player) Outcome {
	if p.Inventory[ItemFood] <= 0 {
		return reject("No food in the inventory. Buy bread at the shop.")
	}
	p.ConsumeItem(ItemFood, 1)
	p.Vitals.Hunger += EatInvHunger
	p.Vitals.Energy += EatInvEnergy
	p.Vitals.Mood += EatInvMood
	p.Vitals.Stress -= EatInvStress
	p.Clamp()
	return ok(fmt.Sprintf("You ate from the inventory: hunger +%d, energy +%d, mood +%d, stress -%d.",
		EatInvHunger, EatInvEnergy, EatInvMood, EatInvStress))
}

func doEatCafe(p *Player) Outcome {
	if p.Cash < CafePrice {
		return reject(fmt.Sprintf("The cafe costs %d. Not enough cash.", CafePrice))
	}
	p.Cash -= CafePrice
	p.Vitals.Hunger += CafeHunger
	p.Vitals.Energy += CafeEnergy
	p.Vitals.Mood += CafeMood
	p.Vitals.Stress -= CafeStress
	p.Clamp()
	return ok(fmt.Sprintf("Cafe: -%d cash, hunger +%d, energy +%d, mood +%d, stress -%d.",
		CafePrice, CafeHunger, CafeEnergy, CafeMood, CafeStress))
}
