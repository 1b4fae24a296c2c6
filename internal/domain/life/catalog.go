package life

import "math"

// Job is one row of the static job table. Entry jobs (MinLevel 1) are what an
// unemployed player gets assigned at random when working.
type Job struct {
	Name       string
	MinLevel   int
	BasePay    int
	XPGain     int
	EnergyCost int
	HungerCost int
}

var Jobs = []Job{
	{Name: "laborer", MinLevel: 1, BasePay: 800, XPGain: 12, EnergyCost: 18, HungerCost: 12},
	{Name: "courier", MinLevel: 1, BasePay: 1100, XPGain: 15, EnergyCost: 22, HungerCost: 15},
	{Name: "barista", MinLevel: 1, BasePay: 1400, XPGain: 18, EnergyCost: 25, HungerCost: 14},
	{Name: "foreman", MinLevel: 3, BasePay: 2000, XPGain: 24, EnergyCost: 28, HungerCost: 16},
	{Name: "manager", MinLevel: 5, BasePay: 2800, XPGain: 30, EnergyCost: 24, HungerCost: 12},
}

func JobByName(name string) (Job, bool) {
	for _, j := range Jobs {
		if j.Name == name {
			return j, true
		}
	}
	return Job{}, false
}

func EntryJobs() []Job {
	out := make([]Job, 0, len(Jobs))
	for _, j := range Jobs {
		if j.MinLevel <= 1 {
			out = append(out, j)
		}
	}
	return out
}

type Business struct {
	ID              string
	Name            string
	BuyPrice        int
	BaseDailyIncome int
	BaseUpgradeCost int
}

var Businesses = []Business{
	{ID: "shawarma_stand", Name: "Shawarma stand", BuyPrice: 3500, BaseDailyIncome: 260, BaseUpgradeCost: 1500},
	{ID: "car_wash", Name: "Car wash", BuyPrice: 9000, BaseDailyIncome: 700, BaseUpgradeCost: 4000},
	{ID: "net_cafe", Name: "Internet cafe", BuyPrice: 21000, BaseDailyIncome: 1700, BaseUpgradeCost: 9500},
	{ID: "pawn_shop", Name: "Pawn shop", BuyPrice: 52000, BaseDailyIncome: 4300, BaseUpgradeCost: 24000},
}

func BusinessByID(id string) (Business, bool) {
	for _, b := range Businesses {
		if b.ID == id {
			return b, true
		}
	}
	return Business{}, false
}

// BusinessDailyIncome scales the base payout by the business level.
func BusinessDailyIncome(b Business, level int) int {
	if level < 1 {
		level = 1
	}
	return int(float64(b.BaseDailyIncome) * (1 + BusinessIncomeGrowth*float64(level-1)))
}

// BusinessUpgradeCost is the price of going from level to level+1.
func BusinessUpgradeCost(b Business, level int) int {
	if level < 1 {
		level = 1
	}
	return int(float64(b.BaseUpgradeCost) * math.Pow(BusinessUpgradeGrowth, float64(level)))
}

// XPThreshold is the XP needed to leave the given level.
func XPThreshold(level int) int {
	return XPThresholdBase + level*XPThresholdIncrement
}

type ShopItem struct {
	Item  string
	Title string
	Price int
}

var ShopItems = []ShopItem{
	{Item: ItemFood, Title: "Bread", Price: 300},
	{Item: ItemMedkit, Title: "Medkit", Price: 650},
	{Item: ItemTicket, Title: "Ticket", Price: 900},
}

func ShopItemByName(item string) (ShopItem, bool) {
	for _, s := range ShopItems {
		if s.Item == item {
			return s, true
		}
	}
	return ShopItem{}, false
}

type RentTier struct {
	ID          string
	Name        string
	Price       int
	EnergyBonus int
	MoodBonus   int
	StressDelta int
}

var RentTiers = []RentTier{
	{ID: "hostel", Name: "Night in a hostel", Price: 700, EnergyBonus: 20, MoodBonus: 2, StressDelta: -3},
	{ID: "room", Name: "Room for a day", Price: 1200, EnergyBonus: 30, MoodBonus: 4, StressDelta: -5},
	{ID: "flat", Name: "Flat for a day", Price: 2400, EnergyBonus: 45, MoodBonus: 7, StressDelta: -8},
}

func RentTierByID(id string) (RentTier, bool) {
	for _, t := range RentTiers {
		if t.ID == id {
			return t, true
		}
	}
	return RentTier{}, false
}

// CityPlaces are travel destinations; the station and home are reached by other means.
var CityPlaces = []string{"center", "industrial", "park", "square", "suburbs"}

// EventDelta is the effect block of one random event. Money is floored at zero,
// vitals are clamped.
type EventDelta struct {
	Money  int
	Health int
	Energy int
	Hunger int
	Mood   int
	Stress int
}

type RandomEvent struct {
	Title string
	Label string
	Delta EventDelta
}

var RandomEvents = []RandomEvent{
	{Title: "Asked to help out at a concert", Label: "+900 cash", Delta: EventDelta{Money: 900, Energy: -12, Hunger: -6, Stress: 5, Mood: 3}},
	{Title: "Document check on the street", Label: "-200 cash (fine)", Delta: EventDelta{Money: -200, Stress: 8, Mood: -2}},
	{Title: "Twisted an ankle", Label: "-12 health", Delta: EventDelta{Health: -12, Stress: 6, Mood: -4}},
	{Title: "Found a wallet", Label: "+600 cash", Delta: EventDelta{Money: 600, Mood: 4}},
	{Title: "A stranger bought you coffee", Label: "+10 energy", Delta: EventDelta{Energy: 10, Mood: 2, Stress: -2}},
	{Title: "Street argument", Label: "-6 mood, +10 stress", Delta: EventDelta{Mood: -6, Stress: 10}},
	{Title: "Found a quiet spot and exhaled", Label: "+6 mood, -8 stress", Delta: EventDelta{Mood: 6, Stress: -8}},
}
