// Package entity defines the domain models for the archive feature.
package entity

import (
	"time"

	mdentity "market_gateway/internal/feature/marketdata/domain/entity"
)

// Record is one archived aggregate bar.
type Record struct {
	Ticker   string
	Timespan mdentity.Timespan
	mdentity.AggregateBar
}

// Symbol is a ticker the archive job may pick up.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Summary counts the outcome of an archive run per ticker.
type Summary struct {
	Succeeded int
	Failed    int
	Skipped   int // the upstream had no data for the window
}

// Total returns the number of tickers processed.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}
