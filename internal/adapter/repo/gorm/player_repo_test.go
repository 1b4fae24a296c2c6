package gormrepo

import (
	"errors"
	"testing"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("ERROR: duplicate key value violates unique constraint \"players_pkey\" (SQLSTATE 23505)"), true},
		{errors.New("UNIQUE constraint failed: players.player_id"), true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Fatalf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestPlayerRowRoundTrip(t *testing.T) {
	row := playerRow{
		PlayerID:      "p-1",
		Cash:          4100,
		Bank:          900,
		Health:        80,
		Hunger:        55,
		Energy:        61,
		Mood:          44,
		Stress:        30,
		Level:         2,
		Xp:            70,
		Day:           6,
		Location:      "park",
		Job:           "courier",
		Inventory:     `{"food":2,"medkit":1,"ticket":0}`,
		Portfolio:     `{"BTC":0.0015}`,
		SchemaVersion: 3,
		Version:       9,
	}
	businesses := []businessRow{{PlayerID: "p-1", BusinessID: "car_wash", Level: 2, LastPaidDay: 5}}

	p, err := toPlayer(row, businesses)
	if err != nil {
		t.Fatalf("toPlayer: %v", err)
	}
	if p.Cash != 4100 || p.Bank != 900 || p.Level != 2 || p.XP != 70 {
		t.Fatalf("unexpected player: %+v", p)
	}
	if p.Inventory["food"] != 2 || p.Portfolio["BTC"] != 0.0015 {
		t.Fatalf("unexpected collections: %v %v", p.Inventory, p.Portfolio)
	}
	if h := p.Businesses["car_wash"]; h.Level != 2 || h.LastPaidDay != 5 {
		t.Fatalf("unexpected holding: %+v", h)
	}

	back, err := toRow(p)
	if err != nil {
		t.Fatalf("toRow: %v", err)
	}
	again, err := toPlayer(back, businesses)
	if err != nil {
		t.Fatalf("toPlayer round trip: %v", err)
	}
	if again.Cash != p.Cash || again.Inventory["medkit"] != 1 || again.Portfolio["BTC"] != p.Portfolio["BTC"] {
		t.Fatalf("round trip diverged: %+v", again)
	}
}
