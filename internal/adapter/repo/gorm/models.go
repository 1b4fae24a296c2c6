package gormrepo

import "time"

type playerRow struct {
	PlayerID      string `gorm:"primaryKey"`
	Cash          int32
	Bank          int32
	Health        int32
	Hunger        int32
	Energy        int32
	Mood          int32
	Stress        int32
	Level         int32
	Xp            int32
	Day           int32
	Location      string
	Job           string
	Inventory     string
	Portfolio     string
	SchemaVersion int32
	LastSeen      time.Time
	Version       int64
}

func (playerRow) TableName() string { return "players" }

type businessRow struct {
	PlayerID    string `gorm:"primaryKey"`
	BusinessID  string `gorm:"primaryKey"`
	Level       int32
	LastPaidDay int32
}

func (businessRow) TableName() string { return "player_businesses" }

type marketQuoteRow struct {
	Symbol    string `gorm:"primaryKey"`
	Price     float64
	UpdatedAt time.Time
}

func (marketQuoteRow) TableName() string { return "market_quotes" }

type eventRow struct {
	ID         string `gorm:"primaryKey"`
	PlayerID   string
	Action     string
	Text       string
	Rejected   bool
	OccurredAt time.Time
}

func (eventRow) TableName() string { return "player_events" }
