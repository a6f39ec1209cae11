package usecase

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	mdentity "market_gateway/internal/feature/marketdata/domain/entity"
	mdusecase "market_gateway/internal/feature/marketdata/usecase"
)

// Sink kinds.
const (
	SinkDB      = "db"
	SinkParquet = "parquet"
)

const (
	defaultRatePerMinute = 5
	defaultLookbackDays  = 30
	defaultArchiveDir    = "archive"
	dateLayout           = "2006-01-02"
)

// Config holds the archive job settings.
type Config struct {
	Tickers       []string // empty means the active rows of the symbols table
	Window        mdentity.Window
	Sink          string
	Dir           string
	RatePerMinute int
}

// LoadConfig reads ARCHIVE_* variables. The window is daily bars at the
// largest limit. Without ARCHIVE_TO it ends the day before now; without
// ARCHIVE_FROM it spans the preceding 30 days.
func LoadConfig(now time.Time) (Config, error) {
	to := strings.TrimSpace(os.Getenv("ARCHIVE_TO"))
	if to == "" {
		to = now.UTC().AddDate(0, 0, -1).Format(dateLayout)
	}
	from := strings.TrimSpace(os.Getenv("ARCHIVE_FROM"))
	if from == "" {
		end, err := time.Parse(dateLayout, to)
		if err != nil {
			return Config{}, fmt.Errorf("ARCHIVE_TO: %w", err)
		}
		from = end.AddDate(0, 0, -defaultLookbackDays).Format(dateLayout)
	}

	w := mdusecase.DefaultWindow(from, to)
	w.Limit = mdusecase.MaxLimit

	cfg := Config{
		Tickers:       splitList(os.Getenv("ARCHIVE_TICKERS")),
		Window:        w,
		Sink:          strings.ToLower(strings.TrimSpace(os.Getenv("ARCHIVE_SINK"))),
		Dir:           os.Getenv("ARCHIVE_DIR"),
		RatePerMinute: defaultRatePerMinute,
	}
	if cfg.Sink == "" {
		cfg.Sink = SinkDB
	}
	if cfg.Sink != SinkDB && cfg.Sink != SinkParquet {
		return Config{}, fmt.Errorf("ARCHIVE_SINK: unknown sink %q (use %s or %s)", cfg.Sink, SinkDB, SinkParquet)
	}
	if cfg.Dir == "" {
		cfg.Dir = defaultArchiveDir
	}
	if v := os.Getenv("ARCHIVE_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("ARCHIVE_RATE_PER_MINUTE: %w", err)
		}
		cfg.RatePerMinute = n
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
