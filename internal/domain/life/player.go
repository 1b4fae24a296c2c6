package life

import "time"

// NewPlayer returns the fresh default state, used for first contact and for the
// post-death reset.
func NewPlayer(playerID string, now time.Time) Player {
	return Player{
		PlayerID: playerID,
		Vitals: Vitals{
			Health: StartHealth,
			Hunger: StartHunger,
			Energy: StartEnergy,
			Mood:   StartMood,
			Stress: StartStress,
		},
		Cash:          StartCash,
		Bank:          0,
		Level:         1,
		XP:            0,
		Day:           1,
		Location:      LocationStation,
		Job:           JobUnemployed,
		Inventory:     map[string]int{ItemFood: 0, ItemMedkit: 0, ItemTicket: 0},
		Businesses:    map[string]BusinessHolding{},
		Portfolio:     map[string]float64{},
		SchemaVersion: CurrentSchemaVersion,
		LastSeen:      now,
	}
}

func clampVital(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxVital {
		return MaxVital
	}
	return v
}

// Clamp re-applies the vital bounds. Handlers call it after every delta so the
// aggregate never leaves [0, MaxVital], even transiently in the stored record.
func (p *Player) Clamp() {
	p.Vitals.Health = clampVital(p.Vitals.Health)
	p.Vitals.Hunger = clampVital(p.Vitals.Hunger)
	p.Vitals.Energy = clampVital(p.Vitals.Energy)
	p.Vitals.Mood = clampVital(p.Vitals.Mood)
	p.Vitals.Stress = clampVital(p.Vitals.Stress)
}

func (p *Player) Dead() bool { return p.Vitals.Health <= 0 }

func (p *Player) AddItem(item string, amount int) {
	if amount <= 0 || item == "" {
		return
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	p.Inventory[item] += amount
}

func (p *Player) ConsumeItem(item string, amount int) bool {
	if amount <= 0 || item == "" || p.Inventory == nil {
		return false
	}
	current := p.Inventory[item]
	if current < amount {
		return false
	}
	p.Inventory[item] = current - amount
	return true
}

// AddCash applies a signed delta with the zero floor the event and travel
// handlers rely on.
func (p *Player) AddCash(delta int) {
	p.Cash += delta
	if p.Cash < 0 {
		p.Cash = 0
	}
}

// Migrate upgrades a player loaded at an older schema version to the current
// one. Pure: each step fills the fields its version introduced with their
// defaults. Runs once at load time.
func Migrate(p Player) Player {
	if p.SchemaVersion < 2 {
		// v1 predates mood/stress/bank.
		p.Vitals.Mood = StartMood
		p.Vitals.Stress = StartStress
		p.Bank = 0
		p.SchemaVersion = 2
	}
	if p.SchemaVersion < 3 {
		// v2 predates progression, businesses and the portfolio.
		p.Level = 1
		p.XP = 0
		p.Businesses = map[string]BusinessHolding{}
		p.Portfolio = map[string]float64{}
		p.SchemaVersion = 3
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{ItemFood: 0, ItemMedkit: 0, ItemTicket: 0}
	}
	if p.Businesses == nil {
		p.Businesses = map[string]BusinessHolding{}
	}
	if p.Portfolio == nil {
		p.Portfolio = map[string]float64{}
	}
	return p
}
