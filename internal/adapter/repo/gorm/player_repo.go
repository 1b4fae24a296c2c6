package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"darklife/internal/app/ports"
	"darklife/internal/domain/life"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByPlayerID(ctx context.Context, playerID string) (life.Player, error) {
	db := getDBFromCtx(ctx, r.db)

	var row playerRow
	if err := db.Where("player_id = ?", playerID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return life.Player{}, ports.ErrNotFound
		}
		return life.Player{}, err
	}

	var businesses []businessRow
	if err := db.Where("player_id = ?", playerID).Find(&businesses).Error; err != nil {
		return life.Player{}, err
	}

	return toPlayer(row, businesses)
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, player life.Player, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)

	row, err := toRow(player)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		if err := db.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrConflict
			}
			return err
		}
	} else {
		res := db.Model(&playerRow{}).
			Where("player_id = ? AND version = ?", player.PlayerID, expectedVersion).
			Updates(rowUpdates(row))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ports.ErrConflict
		}
	}

	// Ownership rows are replaced wholesale inside the surrounding tx.
	if err := db.Where("player_id = ?", player.PlayerID).Delete(&businessRow{}).Error; err != nil {
		return err
	}
	for id, holding := range player.Businesses {
		b := businessRow{
			PlayerID:    player.PlayerID,
			BusinessID:  id,
			Level:       int32(holding.Level),
			LastPaidDay: int32(holding.LastPaidDay),
		}
		if err := db.Create(&b).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r PlayerRepo) TopByWealth(ctx context.Context, limit int) ([]life.Player, error) {
	db := getDBFromCtx(ctx, r.db)

	var rows []playerRow
	if err := db.Order("cash + bank DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]life.Player, 0, len(rows))
	for _, row := range rows {
		p, err := toPlayer(row, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func toPlayer(row playerRow, businesses []businessRow) (life.Player, error) {
	inventory := map[string]int{}
	if row.Inventory != "" {
		if err := json.Unmarshal([]byte(row.Inventory), &inventory); err != nil {
			return life.Player{}, fmt.Errorf("decode inventory: %w", err)
		}
	}
	portfolio := map[string]float64{}
	if row.Portfolio != "" {
		if err := json.Unmarshal([]byte(row.Portfolio), &portfolio); err != nil {
			return life.Player{}, fmt.Errorf("decode portfolio: %w", err)
		}
	}
	owned := make(map[string]life.BusinessHolding, len(businesses))
	for _, b := range businesses {
		owned[b.BusinessID] = life.BusinessHolding{Level: int(b.Level), LastPaidDay: int(b.LastPaidDay)}
	}

	return life.Player{
		PlayerID: row.PlayerID,
		Vitals: life.Vitals{
			Health: int(row.Health),
			Hunger: int(row.Hunger),
			Energy: int(row.Energy),
			Mood:   int(row.Mood),
			Stress: int(row.Stress),
		},
		Cash:          int(row.Cash),
		Bank:          int(row.Bank),
		Level:         int(row.Level),
		XP:            int(row.Xp),
		Day:           int(row.Day),
		Location:      row.Location,
		Job:           row.Job,
		Inventory:     inventory,
		Businesses:    owned,
		Portfolio:     portfolio,
		SchemaVersion: int(row.SchemaVersion),
		LastSeen:      row.LastSeen,
		Version:       row.Version,
	}, nil
}

func toRow(p life.Player) (playerRow, error) {
	inventory, err := json.Marshal(p.Inventory)
	if err != nil {
		return playerRow{}, fmt.Errorf("encode inventory: %w", err)
	}
	portfolio, err := json.Marshal(p.Portfolio)
	if err != nil {
		return playerRow{}, fmt.Errorf("encode portfolio: %w", err)
	}
	return playerRow{
		PlayerID:      p.PlayerID,
		Cash:          int32(p.Cash),
		Bank:          int32(p.Bank),
		Health:        int32(p.Vitals.Health),
		Hunger:        int32(p.Vitals.Hunger),
		Energy:        int32(p.Vitals.Energy),
		Mood:          int32(p.Vitals.Mood),
		Stress:        int32(p.Vitals.Stress),
		Level:         int32(p.Level),
		Xp:            int32(p.XP),
		Day:           int32(p.Day),
		Location:      p.Location,
		Job:           p.Job,
		Inventory:     string(inventory),
		Portfolio:     string(portfolio),
		SchemaVersion: int32(p.SchemaVersion),
		LastSeen:      p.LastSeen,
		Version:       p.Version,
	}, nil
}

func rowUpdates(row playerRow) map[string]any {
	return map[string]any{
		"cash":           row.Cash,
		"bank":           row.Bank,
		"health":         row.Health,
		"hunger":         row.Hunger,
		"energy":         row.Energy,
		"mood":           row.Mood,
		"stress":         row.Stress,
		"level":          row.Level,
		"xp":             row.Xp,
		"day":            row.Day,
		"location":       row.Location,
		"job":            row.Job,
		"inventory":      row.Inventory,
		"portfolio":      row.Portfolio,
		"schema_version": row.SchemaVersion,
		"last_seen":      row.LastSeen,
		"version":        row.Version,
	}
}
