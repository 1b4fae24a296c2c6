// Package httpadapter is the transport boundary: it maps button presses coming
// over HTTP onto session operations and renders the result summary back. The
// game core never sees this layer.
package httpadapter

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"darklife/internal/app/ports"
	"darklife/internal/app/session"
	"darklife/internal/domain/life"
)

const playerIDHeader = "X-Player-ID"

type Handler struct {
	Session *session.UseCase
	Events  ports.EventRepository
	Quotes  quotesProvider
	KPI     kpiSnapshotProvider
	Limiter *PlayerLimiter
}

type quotesProvider interface {
	Quotes() map[string]float64
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	player := s.Group("/api/player")
	player.POST("/reset", h.reset)
	player.POST("/action", h.action)
	player.GET("/status", h.status)
	player.GET("/events", h.events)

	s.GET("/api/leaderboard", h.leaderboard)
	s.GET("/api/market", h.market)
	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	Kind       string  `json:"kind"`
	JobName    string  `json:"job_name,omitempty"`
	Item       string  `json:"item,omitempty"`
	RentTier   string  `json:"rent_tier,omitempty"`
	Amount     int     `json:"amount,omitempty"`
	BusinessID string  `json:"business_id,omitempty"`
	Symbol     string  `json:"symbol,omitempty"`
	Fraction   float64 `json:"fraction,omitempty"`
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	playerID, ok := h.requirePlayer(ctx)
	if !ok {
		return
	}

	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	kind, ok := parseActionKind(body.Kind)
	if !ok {
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_action", "unknown action kind")
		return
	}

	resp, err := h.Session.Execute(c, session.Request{
		PlayerID: playerID,
		Action: life.ActionRequest{
			Kind:       kind,
			JobName:    body.JobName,
			Item:       body.Item,
			RentTier:   body.RentTier,
			Amount:     body.Amount,
			BusinessID: body.BusinessID,
			Symbol:     body.Symbol,
			Fraction:   body.Fraction,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// status runs the status action through the full pipeline, so checking in
// applies decay like any other button press.
func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	playerID, ok := h.requirePlayer(ctx)
	if !ok {
		return
	}
	resp, err := h.Session.Execute(c, session.Request{
		PlayerID: playerID,
		Action:   life.ActionRequest{Kind: life.ActionStatus},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	playerID, ok := h.requirePlayer(ctx)
	if !ok {
		return
	}
	resp, err := h.Session.Reset(c, session.ResetRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	playerID, ok := h.requirePlayer(ctx)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	events, err := h.Events.ListByPlayerID(c, playerID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": events})
}

func (h Handler) leaderboard(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	rows, err := h.Session.Leaderboard(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"rows": rows})
}

func (h Handler) market(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"quotes": h.Quotes.Quotes()})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) requirePlayer(ctx *app.RequestContext) (string, bool) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", "missing "+playerIDHeader+" header")
		return "", false
	}
	if h.Limiter != nil && !h.Limiter.Allow(playerID) {
		writeErrorBody(ctx, consts.StatusTooManyRequests, "rate_limited", "too many requests")
		return "", false
	}
	return playerID, true
}

func parseActionKind(raw string) (life.ActionKind, bool) {
	kind := life.ActionKind(strings.TrimSpace(raw))
	for _, known := range []life.ActionKind{
		life.ActionStatus, life.ActionInventory,
		life.ActionWork, life.ActionChooseJob,
		life.ActionEatInventory, life.ActionEatCafe,
		life.ActionSleep, life.ActionBuyItem, life.ActionRent,
		life.ActionBankDeposit, life.ActionBankWithdraw,
		life.ActionBankDepositAll, life.ActionBankWithdrawAll,
		life.ActionCity, life.ActionEvent,
		life.ActionBusinessBuy, life.ActionBusinessUpgrade,
		life.ActionAssetBuy, life.ActionAssetSell,
	} {
		if kind == known {
			return kind, true
		}
	}
	return "", false
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
