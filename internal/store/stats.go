package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type dayCount struct {
	Day   string
	Total int
}

// RebuildDailyStats recomputes per-day aggregates from the raw visit,
// session and event tables for the inclusive date range.
func (d *Database) RebuildDailyStats(from, to time.Time) (int, error) {
	if d == nil {
		return 0, errors.New("database is nil")
	}

	fromDay := from.Format("2006-01-02")
	toDay := to.Format("2006-01-02")

	stats := make(map[string]*DailyStat)
	get := func(day string) *DailyStat {
		if stat, ok := stats[day]; ok {
			return stat
		}
		stat := &DailyStat{Date: day}
		stats[day] = stat
		return stat
	}

	var visits []dayCount
	err := d.gorm.Table("page_visits").
		Select("DATE(created_at) AS day, COUNT(*) AS total").
		Where("DATE(created_at) BETWEEN ? AND ?", fromDay, toDay).
		Group("DATE(created_at)").
		Scan(&visits).Error
	if err != nil {
		return 0, fmt.Errorf("aggregate visits: %w", err)
	}
	for _, row := range visits {
		get(row.Day).Visits = row.Total
	}

	var sessions []dayCount
	err = d.gorm.Table("user_sessions").
		Select("DATE(created_at) AS day, COUNT(*) AS total").
		Where("DATE(created_at) BETWEEN ? AND ?", fromDay, toDay).
		Group("DATE(created_at)").
		Scan(&sessions).Error
	if err != nil {
		return 0, fmt.Errorf("aggregate sessions: %w", err)
	}
	for _, row := range sessions {
		get(row.Day).Sessions = row.Total
	}

	type statusCount struct {
		Day    string
		Status string
		Total  int
	}
	var statuses []statusCount
	err = d.gorm.Table("user_sessions").
		Select("DATE(created_at) AS day, conversion_status AS status, COUNT(*) AS total").
		Where("DATE(created_at) BETWEEN ? AND ?", fromDay, toDay).
		Group("DATE(created_at), conversion_status").
		Scan(&statuses).Error
	if err != nil {
		return 0, fmt.Errorf("aggregate conversion statuses: %w", err)
	}
	for _, row := range statuses {
		stat := get(row.Day)
		switch row.Status {
		case "otp_verified":
			stat.OTPVerified += row.Total
		case "completed":
			stat.AssessmentsCompleted += row.Total
			stat.Conversions += row.Total
		case "whatsapp_conversion":
			stat.Conversions += row.Total
		}
	}

	var completed []dayCount
	err = d.gorm.Table("assessments").
		Select("DATE(created_at) AS day, COUNT(*) AS total").
		Where("DATE(created_at) BETWEEN ? AND ?", fromDay, toDay).
		Group("DATE(created_at)").
		Scan(&completed).Error
	if err != nil {
		return 0, fmt.Errorf("aggregate assessments: %w", err)
	}
	for _, row := range completed {
		// Prefer the authoritative assessment rows over session status.
		get(row.Day).AssessmentsCompleted = row.Total
	}

	now := time.Now()
	err = d.gorm.Transaction(func(tx *gorm.DB) error {
		for _, stat := range stats {
			stat.UpdatedAt = now
			if err := tx.Save(stat).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("save daily stats: %w", err)
	}
	return len(stats), nil
}

// ListDailyStats returns daily rows newest first.
func (d *Database) ListDailyStats(limit int) ([]DailyStat, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	query := d.gorm.Model(&DailyStat{}).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []DailyStat
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
