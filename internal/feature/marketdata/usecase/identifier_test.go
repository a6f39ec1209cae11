package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
)

func TestOptionTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contract entity.OptionContract
		want     string
	}{
		{
			name:     "call with fractional strike",
			contract: entity.OptionContract{Underlying: "AAPL", Expiration: "2024-06-21", Type: entity.Call, Strike: 150.5},
			want:     "O:AAPL240621C00150500",
		},
		{
			name:     "put with whole strike",
			contract: entity.OptionContract{Underlying: "SPY", Expiration: "2023-01-20", Type: entity.Put, Strike: 400},
			want:     "O:SPY230120P00400000",
		},
		{
			name:     "zero strike",
			contract: entity.OptionContract{Underlying: "F", Expiration: "2025-12-19", Type: entity.Call, Strike: 0},
			want:     "O:F251219C00000000",
		},
		{
			name:     "maximum strike",
			contract: entity.OptionContract{Underlying: "BRK", Expiration: "2030-01-18", Type: entity.Put, Strike: 99999.999},
			want:     "O:BRK300118P99999999",
		},
		{
			name:     "strike that float multiplication gets wrong",
			contract: entity.OptionContract{Underlying: "T", Expiration: "2024-03-15", Type: entity.Call, Strike: 1.005},
			want:     "O:T240315C00001005",
		},
		{
			name:     "sub-dollar strike",
			contract: entity.OptionContract{Underlying: "F", Expiration: "2024-03-15", Type: entity.Put, Strike: 0.29},
			want:     "O:F240315P00000290",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := usecase.OptionTicker(tt.contract)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len("O:")+len(tt.contract.Underlying)+6+1+8)
		})
	}
}

func TestPairTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category entity.Category
		pair     entity.CurrencyPair
		want     string
	}{
		{entity.Crypto, entity.CurrencyPair{From: "USD", To: "BTC"}, "X:BTCUSD"},
		{entity.Crypto, entity.CurrencyPair{From: "BTC", To: "USD"}, "X:USDBTC"},
		{entity.Forex, entity.CurrencyPair{From: "USD", To: "EUR"}, "C:EURUSD"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, usecase.PairTicker(tt.category, tt.pair))
		})
	}
}
