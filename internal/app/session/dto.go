package session

import "darklife/internal/domain/life"

type Request struct {
	PlayerID string
	Action   life.ActionRequest
}

// Response is the render-ready summary handed back to the transport: result
// text with the refreshed status view, plus the buttons to offer next.
type Response struct {
	Text     string            `json:"text"`
	Rejected bool              `json:"rejected"`
	Player   life.Player       `json:"player"`
	Actions  []life.ActionKind `json:"actions"`
}

type ResetRequest struct {
	PlayerID string
}

type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Total    int    `json:"total"`
	Cash     int    `json:"cash"`
	Bank     int    `json:"bank"`
}
