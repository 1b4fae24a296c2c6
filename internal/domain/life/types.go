package life

import "time"

// Vitals are the bounded player attributes. Every mutation clamps to [0, MaxVital].
type Vitals struct {
	Health int `json:"health"`
	Hunger int `json:"hunger"`
	Energy int `json:"energy"`
	Mood   int `json:"mood"`
	Stress int `json:"stress"`
}

// BusinessHolding is one owned business. LastPaidDay gates the once-per-day payout.
type BusinessHolding struct {
	Level       int `json:"level"`
	LastPaidDay int `json:"last_paid_day"`
}

// Player is the per-player aggregate. One writer per PlayerID is assumed;
// the session layer enforces it with a keyed lock plus the Version CAS.
type Player struct {
	PlayerID      string                     `json:"player_id"`
	Vitals        Vitals                     `json:"vitals"`
	Cash          int                        `json:"cash"`
	Bank          int                        `json:"bank"`
	Level         int                        `json:"level"`
	XP            int                        `json:"xp"`
	Day           int                        `json:"day"`
	Location      string                     `json:"location"`
	Job           string                     `json:"job"`
	Inventory     map[string]int             `json:"inventory"`
	Businesses    map[string]BusinessHolding `json:"businesses"`
	Portfolio     map[string]float64         `json:"portfolio"`
	SchemaVersion int                        `json:"schema_version"`
	LastSeen      time.Time                  `json:"last_seen"`
	Version       int64                      `json:"version"`
}

type ActionKind string

const (
	ActionStatus          ActionKind = "status"
	ActionInventory       ActionKind = "inventory"
	ActionWork            ActionKind = "work"
	ActionChooseJob       ActionKind = "job"
	ActionEatInventory    ActionKind = "eat_inv"
	ActionEatCafe         ActionKind = "eat_cafe"
	ActionSleep           ActionKind = "sleep"
	ActionBuyItem         ActionKind = "buy_item"
	ActionRent            ActionKind = "rent"
	ActionBankDeposit     ActionKind = "bank_deposit"
	ActionBankWithdraw    ActionKind = "bank_withdraw"
	ActionBankDepositAll  ActionKind = "bank_deposit_all"
	ActionBankWithdrawAll ActionKind = "bank_withdraw_all"
	ActionCity            ActionKind = "city"
	ActionEvent           ActionKind = "event"
	ActionBusinessBuy     ActionKind = "business_buy"
	ActionBusinessUpgrade ActionKind = "business_upgrade"
	ActionAssetBuy        ActionKind = "asset_buy"
	ActionAssetSell       ActionKind = "asset_sell"
)

// ActionRequest is the typed payload for one button press. Kind is a closed set;
// the transport adapter maps anything else to a rejection before it gets here.
type ActionRequest struct {
	Kind       ActionKind `json:"kind"`
	JobName    string     `json:"job_name,omitempty"`
	Item       string     `json:"item,omitempty"`
	RentTier   string     `json:"rent_tier,omitempty"`
	Amount     int        `json:"amount,omitempty"`
	BusinessID string     `json:"business_id,omitempty"`
	Symbol     string     `json:"symbol,omitempty"`
	Fraction   float64    `json:"fraction,omitempty"`
}

// Outcome is the result of applying one action. Rejected outcomes carry the
// guidance text and guarantee the player was not mutated.
type Outcome struct {
	Text     string
	Rejected bool
}

func reject(text string) Outcome { return Outcome{Text: text, Rejected: true} }
func ok(text string) Outcome     { return Outcome{Text: text} }

// Rand is the seedable randomness the action and market engines draw from.
type Rand interface {
	// IntBetween returns a uniform int in [lo, hi] inclusive.
	IntBetween(lo, hi int) int
	Float64() float64
}

// PriceView is the read side of the market the asset actions consult.
type PriceView interface {
	Price(symbol string) (float64, bool)
}
