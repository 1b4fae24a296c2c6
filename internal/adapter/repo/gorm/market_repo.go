package gormrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MarketRepo struct {
	db *gorm.DB
}

func NewMarketRepo(db *gorm.DB) MarketRepo {
	return MarketRepo{db: db}
}

func (r MarketRepo) LoadQuotes(ctx context.Context) (map[string]float64, time.Time, error) {
	var rows []marketQuoteRow
	if err := getDBFromCtx(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, time.Time{}, err
	}
	prices := make(map[string]float64, len(rows))
	var updatedAt time.Time
	for _, row := range rows {
		prices[row.Symbol] = row.Price
		if row.UpdatedAt.After(updatedAt) {
			updatedAt = row.UpdatedAt
		}
	}
	return prices, updatedAt, nil
}

func (r MarketRepo) SaveQuotes(ctx context.Context, prices map[string]float64, updatedAt time.Time) error {
	db := getDBFromCtx(ctx, r.db)
	for symbol, price := range prices {
		row := marketQuoteRow{Symbol: symbol, Price: price, UpdatedAt: updatedAt}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
