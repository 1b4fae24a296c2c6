package httpadapter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"darklife/internal/app/ports"
	"darklife/internal/app/session"
	"darklife/internal/domain/life"
)

func TestRequirePlayer_FromHeader(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "  p-1  ")

	playerID, ok := h.requirePlayer(ctx)
	if !ok {
		t.Fatalf("unexpected rejection: %s", ctx.Response.Body())
	}
	if playerID != "p-1" {
		t.Fatalf("player id = %q", playerID)
	}
}

func TestRequirePlayer_MissingHeader(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	if _, ok := h.requirePlayer(ctx); ok {
		t.Fatal("expected rejection without the header")
	}
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body errorBody
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Code != "missing_player_id" {
		t.Fatalf("error code = %q", body.Code)
	}
}

func TestRequirePlayer_RateLimited(t *testing.T) {
	h := Handler{Limiter: NewPlayerLimiter(1, 1)}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "p-1")

	if _, ok := h.requirePlayer(ctx); !ok {
		t.Fatal("first request should pass")
	}
	ctx = &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "p-1")
	if _, ok := h.requirePlayer(ctx); ok {
		t.Fatal("second request should hit the limiter")
	}
	if got, want := ctx.Response.StatusCode(), consts.StatusTooManyRequests; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestRequirePlayer_LimiterIsPerPlayer(t *testing.T) {
	h := Handler{Limiter: NewPlayerLimiter(1, 1)}

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "p-1")
	if _, ok := h.requirePlayer(ctx); !ok {
		t.Fatal("p-1 should pass")
	}

	ctx = &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "p-2")
	if _, ok := h.requirePlayer(ctx); !ok {
		t.Fatal("p-2 must not share p-1's bucket")
	}
}

func TestParseActionKind(t *testing.T) {
	if kind, ok := parseActionKind(" work "); !ok || kind != life.ActionWork {
		t.Fatalf("parse work: %q ok=%v", kind, ok)
	}
	if _, ok := parseActionKind("dance"); ok {
		t.Fatal("expected unknown kind to fail")
	}
	if _, ok := parseActionKind(""); ok {
		t.Fatal("expected empty kind to fail")
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{session.ErrInvalidRequest, consts.StatusBadRequest, "invalid_request"},
		{ports.ErrNotFound, consts.StatusNotFound, "not_found"},
		{ports.ErrConflict, consts.StatusConflict, "conflict"},
		{errors.New("boom"), consts.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status = %d, want %d", tc.err, got, tc.status)
		}
		var body errorBody
		if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.Code != tc.code {
			t.Fatalf("%v: code = %q, want %q", tc.err, body.Code, tc.code)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"kind":"asset_buy","symbol":"BTC","amount":500}`))

	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Kind != "asset_buy" || body.Symbol != "BTC" || body.Amount != 500 {
		t.Fatalf("unexpected body: %+v", body)
	}

	ctx = &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{`))
	if err := decodeJSON(ctx, &body); err == nil {
		t.Fatal("expected error on malformed json")
	}
}
