package life

import (
	"fmt"
	"sort"
	"strings"
)

// doSleep closes out the current day: business payouts and bank interest settle
// for the day being ended, then the counter advances.
func doSleep(p *Player) Outcome {
	payoutDay := p.Day
	businessIncome := 0
	var paid []string
	ids := make([]string, 0, len(p.Businesses))
	for id := range p.Businesses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		holding := p.Businesses[id]
		if holding.LastPaidDay >= payoutDay {
			// Already settled for this day (bought today).
			continue
		}
		spec, found := BusinessByID(id)
		if !found {
			continue
		}
		income := BusinessDailyIncome(spec, holding.Level)
		businessIncome += income
		holding.LastPaidDay = payoutDay
		p.Businesses[id] = holding
		paid = append(paid, fmt.Sprintf("%s: +%d", spec.Name, income))
	}
	p.Cash += businessIncome

	interest := int(float64(p.Bank) * BankDailyInterest)
	if interest > 0 {
		p.Bank += interest
	}

	p.Day++
	p.Vitals.Energy += SleepEnergyGain
	p.Vitals.Hunger -= SleepHungerCost
	p.Vitals.Mood += SleepMoodGain
	p.Vitals.Stress -= SleepStressDrop
	p.Clamp()
	healed := false
	if p.Vitals.Hunger >= SleepHealHungerMin {
		p.Vitals.Health += SleepHealGain
		p.Clamp()
		healed = true
	}

	lines := []string{fmt.Sprintf("Sleep: energy +%d, hunger -%d, mood +%d, stress -%d. A new day.",
		SleepEnergyGain, SleepHungerCost, SleepMoodGain, SleepStressDrop)}
	if healed {
		lines = append(lines, fmt.Sprintf("Rested well: health +%d.", SleepHealGain))
	}
	if interest > 0 {
		lines = append(lines, fmt.Sprintf("Bank interest: +%d.", interest))
	}
	if businessIncome > 0 {
		lines = append(lines, "Business income: "+strings.Join(paid, ", "))
	}
	return ok(strings.Join(lines, "\n"))
}
