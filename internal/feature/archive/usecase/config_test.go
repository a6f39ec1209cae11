package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_gateway/internal/feature/archive/usecase"
	mdentity "market_gateway/internal/feature/marketdata/domain/entity"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func setArchiveEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, k := range []string{"ARCHIVE_TICKERS", "ARCHIVE_FROM", "ARCHIVE_TO", "ARCHIVE_SINK", "ARCHIVE_DIR", "ARCHIVE_RATE_PER_MINUTE"} {
		t.Setenv(k, env[k])
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArchiveEnv(t, nil)

	cfg, err := usecase.LoadConfig(now)

	require.NoError(t, err)
	assert.Empty(t, cfg.Tickers)
	assert.Equal(t, "2024-02-13", cfg.Window.From)
	assert.Equal(t, "2024-03-14", cfg.Window.To)
	assert.Equal(t, mdentity.TimespanDay, cfg.Window.Timespan)
	assert.Equal(t, 50000, cfg.Window.Limit)
	assert.True(t, cfg.Window.Sort.IsAscending())
	assert.Equal(t, usecase.SinkDB, cfg.Sink)
	assert.Equal(t, "archive", cfg.Dir)
	assert.Equal(t, 5, cfg.RatePerMinute)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	setArchiveEnv(t, map[string]string{
		"ARCHIVE_TICKERS":         " AAPL, MSFT ,,TSLA",
		"ARCHIVE_FROM":            "2024-01-02",
		"ARCHIVE_TO":              "2024-01-31",
		"ARCHIVE_SINK":            "Parquet",
		"ARCHIVE_DIR":             "/tmp/bars",
		"ARCHIVE_RATE_PER_MINUTE": "0",
	})

	cfg, err := usecase.LoadConfig(now)

	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "TSLA"}, cfg.Tickers)
	assert.Equal(t, "2024-01-02", cfg.Window.From)
	assert.Equal(t, "2024-01-31", cfg.Window.To)
	assert.Equal(t, usecase.SinkParquet, cfg.Sink)
	assert.Equal(t, "/tmp/bars", cfg.Dir)
	assert.Equal(t, 0, cfg.RatePerMinute)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown sink", env: map[string]string{"ARCHIVE_SINK": "csv"}},
		{name: "bad rate", env: map[string]string{"ARCHIVE_RATE_PER_MINUTE": "fast"}},
		{name: "bad to date", env: map[string]string{"ARCHIVE_TO": "March"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArchiveEnv(t, tt.env)

			_, err := usecase.LoadConfig(now)
			assert.Error(t, err)
		})
	}
}
