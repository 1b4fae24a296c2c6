package life

import (
	"fmt"
	"time"
)

// DeathNotice is appended to any result that leaves the player at zero health.
const DeathNotice = "You died. Reset to start a new life."

// DecayService applies passive attribute drift from real elapsed time.
// Grounding: more elapsed time never heals, and two calls inside the threshold
// window penalize at most once (the second only refreshes the timestamp).
type DecayService struct{}

// Apply mutates the player in place and returns a human-readable note, empty
// when the elapsed time was under the threshold. The last-seen timestamp is
// refreshed on every call, including the no-op path.
func (DecayService) Apply(p *Player, now time.Time) string {
	elapsed := now.Sub(p.LastSeen)
	if elapsed < 0 {
		elapsed = 0
	}
	hours := elapsed.Hours()
	p.LastSeen = now
	if hours < DecayThresholdHours {
		return ""
	}

	hungerLoss := int(hours * HungerDecayPerHour)
	energyLoss := int(hours * EnergyDecayPerHour)
	stressGain := int(hours * StressGrowPerHour)
	moodDrop := int(hours * MoodDropPerHour)

	if hungerLoss != 0 || energyLoss != 0 || stressGain != 0 || moodDrop != 0 {
		p.Vitals.Hunger -= hungerLoss
		p.Vitals.Energy -= energyLoss
		p.Vitals.Stress += stressGain
		p.Vitals.Mood -= moodDrop
		p.Clamp()

		hpLoss := 0
		if p.Vitals.Hunger <= StarvingHungerMax {
			hpLoss += int(hours * StarvingHPPerHour)
		}
		if p.Vitals.Energy <= ExhaustedEnergyMax {
			hpLoss += int(hours * ExhaustedHPPerHour)
		}
		if p.Vitals.Stress >= OverstressedStressMin {
			hpLoss += int(hours * OverstressedHPPerHour)
		}
		p.Vitals.Health -= hpLoss
		p.Clamp()
	}

	note := fmt.Sprintf("~%.1f h passed: hunger -%d, energy -%d, stress +%d, mood -%d.",
		hours, hungerLoss, energyLoss, stressGain, moodDrop)
	if p.Dead() {
		note += "\n" + DeathNotice
	}
	return note
}
