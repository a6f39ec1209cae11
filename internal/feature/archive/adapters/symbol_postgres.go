package adapters

import (
	"context"

	"gorm.io/gorm"

	"market_gateway/internal/feature/archive/domain/entity"
	"market_gateway/internal/feature/archive/usecase"
)

type symbolPostgres struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolPostgres)(nil)

// NewSymbolRepository returns a SymbolRepository backed by the symbols table.
func NewSymbolRepository(db *gorm.DB) *symbolPostgres {
	return &symbolPostgres{db: db}
}

// ListActiveCodes returns the codes of active symbols ordered by sort_key.
func (r *symbolPostgres) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
