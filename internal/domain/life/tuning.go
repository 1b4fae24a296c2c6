package life

const (
	MaxVital = 100

	StartCash   = 5000
	StartHealth = 90
	StartHunger = 70
	StartEnergy = 80
	StartMood   = 60
	StartStress = 20

	// Decay per elapsed hour, applied on interaction from the last-seen timestamp.
	HungerDecayPerHour = 6
	EnergyDecayPerHour = 4
	StressGrowPerHour  = 2
	MoodDropPerHour    = 1

	// Health drains accrue independently while a condition holds.
	StarvingHungerMax     = 10
	StarvingHPPerHour     = 3
	ExhaustedEnergyMax    = 10
	ExhaustedHPPerHour    = 2
	OverstressedStressMin = 85
	OverstressedHPPerHour = 2

	// Below this, a button press only refreshes the timestamp.
	DecayThresholdHours = 0.2

	WorkMinEnergy = 20
	WorkMinHunger = 15
	WorkLuckMin   = -150
	WorkLuckMax   = 250
	WorkFloorPay  = 200
	WorkStressUp  = 6
	WorkMoodDown  = 2

	// Pay multiplier tiers, ported as-is.
	PayMoodHighMin     = 75
	PayMoodHighBonus   = 0.10
	PayMoodLowMax      = 25
	PayMoodLowMalus    = 0.12
	PayStressHighMin   = 70
	PayStressHighMalus = 0.15
	PayStressLowMax    = 20
	PayStressLowBonus  = 0.05

	LevelPayBonusPerLevel = 0.04
	LevelPayBonusCap      = 0.60

	XPThresholdBase      = 100
	XPThresholdIncrement = 50

	EatInvHunger = 35
	EatInvEnergy = 5
	EatInvMood   = 4
	EatInvStress = 3

	CafePrice  = 450
	CafeHunger = 40
	CafeEnergy = 8
	CafeMood   = 8
	CafeStress = 5

	SleepEnergyGain    = 55
	SleepHungerCost    = 10
	SleepMoodGain      = 10
	SleepStressDrop    = 12
	SleepHealGain      = 6
	SleepHealHungerMin = 40

	BankDailyInterest = 0.01

	CityEnergyCost = 10
	CityHungerCost = 8
	CityMoneyMin   = -250
	CityMoneyMax   = 450
	CityMoodMin    = -4
	CityMoodMax    = 6
	CityStressMin  = -2
	CityStressMax  = 6

	MedkitEventHeal       = 9
	MedkitEventStressDrop = 2

	BusinessIncomeGrowth  = 0.35
	BusinessUpgradeGrowth = 1.55

	CurrentSchemaVersion = 3
)

const (
	ItemFood   = "food"
	ItemMedkit = "medkit"
	ItemTicket = "ticket"
)

const (
	JobUnemployed = "unemployed"

	LocationStation = "station"
	LocationHome    = "home"
)
