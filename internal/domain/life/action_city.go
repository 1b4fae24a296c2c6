package life

import "fmt"

func doCity(p *Player, rng Rand) Outcome {
	if p.Inventory[ItemTicket] <= 0 {
		return reject("You need a ticket for the trip. The shop sells them.")
	}
	p.ConsumeItem(ItemTicket, 1)

	p.Location = CityPlaces[rng.IntBetween(0, len(CityPlaces)-1)]
	moneyDelta := rng.IntBetween(CityMoneyMin, CityMoneyMax)
	p.AddCash(moneyDelta)
	p.Vitals.Energy -= CityEnergyCost
	p.Vitals.Hunger -= CityHungerCost
	p.Vitals.Mood += rng.IntBetween(CityMoodMin, CityMoodMax)
	p.Vitals.Stress += rng.IntBetween(CityStressMin, CityStressMax)
	p.Clamp()

	return ok(fmt.Sprintf("You traveled to %s.\nCash on the way: %+d", p.Location, moneyDelta))
}

func doEvent(p *Player, rng Rand) Outcome {
	evt := RandomEvents[rng.IntBetween(0, len(RandomEvents)-1)]

	healed := ""
	if evt.Delta.Health < 0 && p.Inventory[ItemMedkit] > 0 {
		p.ConsumeItem(ItemMedkit, 1)
		p.Vitals.Health += MedkitEventHeal
		p.Vitals.Stress -= MedkitEventStressDrop
		p.Clamp()
		healed = fmt.Sprintf(" (medkit used: +%d health)", MedkitEventHeal)
	}

	applyEventDelta(p, evt.Delta)
	return ok(fmt.Sprintf("Event: %s\nResult: %s%s", evt.Title, evt.Label, healed))
}

func applyEventDelta(p *Player, d EventDelta) {
	p.AddCash(d.Money)
	p.Vitals.Health += d.Health
	p.Vitals.Energy += d.Energy
	p.Vitals.Hunger += d.Hunger
	p.Vitals.Mood += d.Mood
	p.Vitals.Stress += d.Stress
	p.Clamp()
}
