package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"market_gateway/internal/feature/archive/domain/entity"
	"market_gateway/internal/feature/archive/usecase"
	mdentity "market_gateway/internal/feature/marketdata/domain/entity"
)

// ParquetBar is one row of an archive file.
// Optional columns are null when the upstream omitted the value.
type ParquetBar struct {
	Ticker       string   `parquet:"ticker"`
	Timespan     string   `parquet:"timespan"`
	Timestamp    int64    `parquet:"t"`
	Open         float64  `parquet:"o"`
	High         float64  `parquet:"h"`
	Low          float64  `parquet:"l"`
	Close        float64  `parquet:"c"`
	Volume       float64  `parquet:"v"`
	VWAP         *float64 `parquet:"vw,optional"`
	Transactions *int64   `parquet:"n,optional"`
}

type parquetSink struct {
	dir string
}

var _ usecase.BarSink = (*parquetSink)(nil)

// NewParquetSink returns a BarSink writing one file per ticker and window under dir.
func NewParquetSink(dir string) *parquetSink {
	return &parquetSink{dir: dir}
}

// FileName returns the archive file name for ticker over w.
func FileName(ticker string, w mdentity.Window) string {
	safe := strings.NewReplacer(":", "_", "/", "_").Replace(ticker)
	return fmt.Sprintf("%s_%s_to_%s.parquet", safe, w.From, w.To)
}

func toParquetBar(r entity.Record) ParquetBar {
	row := ParquetBar{
		Ticker:    r.Ticker,
		Timespan:  string(r.Timespan),
		Timestamp: r.Time.UnixMilli(),
		Open:      r.Open.InexactFloat64(),
		High:      r.High.InexactFloat64(),
		Low:       r.Low.InexactFloat64(),
		Close:     r.Close.InexactFloat64(),
		Volume:    r.Volume.InexactFloat64(),
	}
	if r.HasVWPrice() {
		vw := r.VWPrice.InexactFloat64()
		row.VWAP = &vw
	}
	if r.HasTransactions() {
		n := r.Transactions
		row.Transactions = &n
	}
	return row
}

// Store writes records to dir/FileName(ticker, w), replacing any previous file.
func (s *parquetSink) Store(ctx context.Context, ticker string, w mdentity.Window, records []entity.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	rows := make([]ParquetBar, 0, len(records))
	for _, r := range records {
		rows = append(rows, toParquetBar(r))
	}

	path := filepath.Join(s.dir, FileName(ticker, w))
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
