package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"topiko-funnel/internal/store"
)

const dateLayout = "2006-01-02"

// dailystats rebuilds the per-day funnel aggregates from raw events.
// It is meant to run from cron shortly after midnight.
func main() {
	var (
		dbPath     = flag.String("db", filepath.FromSlash("data/topiko-funnel.db"), "Path to SQLite database")
		fromDate   = flag.String("from", "", "Start date YYYY-MM-DD (default: 7 days ago)")
		toDate     = flag.String("to", "", "End date YYYY-MM-DD (default: today)")
		outputPath = flag.String("output", "", "Optional path to write the rebuilt stats as JSON")
		limit      = flag.Int("limit", 90, "Days of stats to include in the JSON output")
	)
	flag.Parse()

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -7)
	to := now
	if *fromDate != "" {
		parsed, err := time.Parse(dateLayout, *fromDate)
		if err != nil {
			logrus.Fatalf("parse -from: %v", err)
		}
		from = parsed
	}
	if *toDate != "" {
		parsed, err := time.Parse(dateLayout, *toDate)
		if err != nil {
			logrus.Fatalf("parse -to: %v", err)
		}
		to = parsed
	}
	if to.Before(from) {
		logrus.Fatalf("-to %s is before -from %s", to.Format(dateLayout), from.Format(dateLayout))
	}

	db, err := store.Open(*dbPath, true)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("close database")
		}
	}()

	rebuilt, err := db.RebuildDailyStats(from, to)
	if err != nil {
		logrus.Fatalf("rebuild daily stats: %v", err)
	}
	logrus.Infof("rebuilt %d daily stat rows (%s to %s)",
		rebuilt, from.Format(dateLayout), to.Format(dateLayout))

	if *outputPath == "" {
		return
	}

	stats, err := db.ListDailyStats(*limit)
	if err != nil {
		logrus.Fatalf("list daily stats: %v", err)
	}
	payload, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		logrus.Fatalf("encode stats: %v", err)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		logrus.Fatalf("write %s: %v", *outputPath, err)
	}
	logrus.Infof("wrote %d rows to %s", len(stats), *outputPath)
}
