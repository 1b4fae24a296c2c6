package life

import (
	"fmt"
	"strings"
)

func doWork(p *Player, rng Rand) Outcome {
	if p.Vitals.Energy < WorkMinEnergy || p.Vitals.Hunger < WorkMinHunger {
		return reject("Too hungry or too tired to work. Eat or sleep first.")
	}

	if p.Job == JobUnemployed {
		entry := EntryJobs()
		p.Job = entry[rng.IntBetween(0, len(entry)-1)].Name
	}
	job, found := JobByName(p.Job)
	if !found {
		job = Jobs[0]
	}

	mult := payMultiplier(p)
	luck := rng.IntBetween(WorkLuckMin, WorkLuckMax)
	// Multiplier first, floor second, truncate last. Order matters for the
	// round-trip tests.
	raw := float64(job.BasePay+luck) * mult
	if raw < WorkFloorPay {
		raw = WorkFloorPay
	}
	earned := int(raw)

	p.Cash += earned
	p.Vitals.Energy -= job.EnergyCost
	p.Vitals.Hunger -= job.HungerCost
	p.Vitals.Stress += WorkStressUp
	p.Vitals.Mood -= WorkMoodDown
	p.Clamp()

	lines := []string{
		fmt.Sprintf("Work: %s", p.Job),
		fmt.Sprintf("Earned: +%d (mood/stress, level and luck applied)", earned),
	}
	lines = append(lines, grantXP(p, job.XPGain)...)
	return ok(strings.Join(lines, "\n"))
}

func payMultiplier(p *Player) float64 {
	mult := 1.0
	if p.Vitals.Mood >= PayMoodHighMin {
		mult += PayMoodHighBonus
	}
	if p.Vitals.Mood <= PayMoodLowMax {
		mult -= PayMoodLowMalus
	}
	if p.Vitals.Stress >= PayStressHighMin {
		mult -= PayStressHighMalus
	}
	if p.Vitals.Stress <= PayStressLowMax {
		mult += PayStressLowBonus
	}
	levelBonus := LevelPayBonusPerLevel * float64(p.Level-1)
	if levelBonus > LevelPayBonusCap {
		levelBonus = LevelPayBonusCap
	}
	return mult + levelBonus
}

// grantXP adds XP and resolves level-ups, possibly several in one call.
func grantXP(p *Player, xp int) []string {
	if xp <= 0 {
		return nil
	}
	p.XP += xp
	var announcements []string
	for p.XP >= XPThreshold(p.Level) {
		p.XP -= XPThreshold(p.Level)
		p.Level++
		announcements = append(announcements, fmt.Sprintf("Level up! You are now level %d.", p.Level))
	}
	return announcements
}

func doChooseJob(p *Player, name string) Outcome {
	job, found := JobByName(name)
	if !found {
		return reject("Unknown option.")
	}
	if p.Level < job.MinLevel {
		return reject(fmt.Sprintf("The %s job unlocks at level %d.", job.Name, job.MinLevel))
	}
	p.Job = job.Name
	return ok(fmt.Sprintf("You are now working as a %s (base pay %d).", job.Name, job.BasePay))
}
