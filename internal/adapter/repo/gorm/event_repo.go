package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"darklife/internal/app/ports"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []ports.EventRecord) error {
	db := getDBFromCtx(ctx, r.db)
	for _, evt := range events {
		row := eventRow{
			ID:         evt.ID,
			PlayerID:   evt.PlayerID,
			Action:     evt.Action,
			Text:       evt.Text,
			Rejected:   evt.Rejected,
			OccurredAt: evt.OccurredAt,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r EventRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]ports.EventRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []eventRow
	err := getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.EventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.EventRecord{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			Action:     row.Action,
			Text:       row.Text,
			Rejected:   row.Rejected,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}
