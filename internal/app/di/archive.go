package di

import (
	"fmt"

	"gorm.io/gorm"

	"market_gateway/internal/feature/archive/adapters"
	archiveentity "market_gateway/internal/feature/archive/domain/entity"
	archiveusecase "market_gateway/internal/feature/archive/usecase"
	"market_gateway/internal/platform/db"
)

// ArchiveModels lists the tables the archive job migrates.
var ArchiveModels = []any{&adapters.BarModel{}, &archiveentity.Symbol{}}

// NeedsDB reports whether the archive job must open the database.
// It does when bars go to the database or the tickers come from the symbols table.
func NeedsDB(cfg archiveusecase.Config) bool {
	return cfg.Sink == archiveusecase.SinkDB || len(cfg.Tickers) == 0
}

// OpenArchiveDB opens the database when cfg needs it, and returns nil otherwise.
func OpenArchiveDB(cfg archiveusecase.Config) (*gorm.DB, error) {
	if !NeedsDB(cfg) {
		return nil, nil
	}
	return db.OpenDB(ArchiveModels...)
}

// NewArchiveSink returns the sink selected by cfg.Sink.
func NewArchiveSink(cfg archiveusecase.Config, gdb *gorm.DB) (archiveusecase.BarSink, error) {
	switch cfg.Sink {
	case archiveusecase.SinkParquet:
		return adapters.NewParquetSink(cfg.Dir), nil
	case archiveusecase.SinkDB:
		if gdb == nil {
			return nil, fmt.Errorf("sink %q requires a database", cfg.Sink)
		}
		return adapters.NewBarRepository(gdb), nil
	}
	return nil, fmt.Errorf("unknown sink %q", cfg.Sink)
}

// NewSymbolRepository returns the symbols table reader, or nil without a database.
func NewSymbolRepository(gdb *gorm.DB) archiveusecase.SymbolRepository {
	if gdb == nil {
		return nil
	}
	return adapters.NewSymbolRepository(gdb)
}
