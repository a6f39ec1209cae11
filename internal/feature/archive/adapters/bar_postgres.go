// Package adapters provides the storage implementations of the archive feature.
package adapters

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"market_gateway/internal/feature/archive/domain/entity"
	"market_gateway/internal/feature/archive/usecase"
	mdentity "market_gateway/internal/feature/marketdata/domain/entity"
)

type barPostgres struct {
	db *gorm.DB
}

var _ usecase.BarSink = (*barPostgres)(nil)

// NewBarRepository returns a BarSink that upserts into aggregate_bars.
func NewBarRepository(db *gorm.DB) *barPostgres {
	return &barPostgres{db: db}
}

// BarModel is the aggregate_bars row. Prices keep full precision as numeric.
type BarModel struct {
	ID       uint      `gorm:"primaryKey"`
	Ticker   string    `gorm:"size:32;not null;uniqueIndex:bar_tkr_span_time,priority:1"`
	Timespan string    `gorm:"size:16;not null;uniqueIndex:bar_tkr_span_time,priority:2"`
	Time     time.Time `gorm:"column:bucket_time;not null;uniqueIndex:bar_tkr_span_time,priority:3"`

	Open         decimal.Decimal `gorm:"type:numeric;not null"`
	High         decimal.Decimal `gorm:"type:numeric;not null"`
	Low          decimal.Decimal `gorm:"type:numeric;not null"`
	Close        decimal.Decimal `gorm:"type:numeric;not null"`
	Volume       decimal.Decimal `gorm:"type:numeric;not null"`
	VWPrice      decimal.Decimal `gorm:"column:vw_price;type:numeric;not null"`
	Transactions int64           `gorm:"not null;default:-1"`
}

func (BarModel) TableName() string {
	return "aggregate_bars"
}

func toModel(r entity.Record) BarModel {
	return BarModel{
		Ticker:       r.Ticker,
		Timespan:     string(r.Timespan),
		Time:         r.Time.UTC(),
		Open:         r.Open,
		High:         r.High,
		Low:          r.Low,
		Close:        r.Close,
		Volume:       r.Volume,
		VWPrice:      r.VWPrice,
		Transactions: r.Transactions,
	}
}

// Store upserts records keyed by ticker, timespan and bucket time.
func (r *barPostgres) Store(ctx context.Context, _ string, _ mdentity.Window, records []entity.Record) error {
	if len(records) == 0 {
		return nil
	}
	ms := make([]BarModel, 0, len(records))
	for _, rec := range records {
		ms = append(ms, toModel(rec))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}, {Name: "timespan"}, {Name: "bucket_time"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "vw_price", "transactions"}),
	}).Create(&ms).Error
}
