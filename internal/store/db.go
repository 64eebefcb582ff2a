package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database wraps the GORM DB handle and exposes repository helpers.
type Database struct {
	gorm *gorm.DB
}

// Open initializes the SQLite-backed database at the provided path.
func Open(path string, silent bool) (*Database, error) {
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&UserSession{}, &PageVisit{}, &FunnelEvent{}, &Assessment{}, &DailyStat{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	if err := db.Exec("PRAGMA synchronous=NORMAL").Error; err != nil {
		logrus.WithError(err).Warn("set synchronous pragma")
	}
	return &Database{gorm: db}, nil
}

// GORM exposes the raw gorm.DB handle.
func (d *Database) GORM() *gorm.DB {
	return d.gorm
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSession creates the session row if missing, otherwise bumps the
// page-view counter and activity timestamp.
func (d *Database) EnsureSession(session UserSession) error {
	if d == nil {
		return errors.New("database is nil")
	}
	if strings.TrimSpace(session.SessionID) == "" {
		return errors.New("session id required")
	}

	var existing UserSession
	err := d.gorm.Where("session_id = ?", session.SessionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		session.TotalPageViews = 1
		session.LastActivity = time.Now()
		return d.gorm.Create(&session).Error
	}
	if err != nil {
		return err
	}
	return d.gorm.Model(&existing).Updates(map[string]any{
		"total_page_views": existing.TotalPageViews + 1,
		"last_activity":    time.Now(),
	}).Error
}

// GetSession fetches a session by its public identifier.
func (d *Database) GetSession(sessionID string) (*UserSession, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	var session UserSession
	if err := d.gorm.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateConversionStatus advances a session's conversion state. An empty
// exit page leaves the stored one untouched.
func (d *Database) UpdateConversionStatus(sessionID, status, exitPage string) error {
	if d == nil {
		return errors.New("database is nil")
	}
	updates := map[string]any{
		"conversion_status": status,
		"last_activity":     time.Now(),
	}
	if exitPage != "" {
		updates["exit_page"] = exitPage
	}
	return d.gorm.Model(&UserSession{}).Where("session_id = ?", sessionID).Updates(updates).Error
}

// InsertPageVisit records a page load.
func (d *Database) InsertPageVisit(visit PageVisit) error {
	if d == nil {
		return errors.New("database is nil")
	}
	return d.gorm.Create(&visit).Error
}

// InsertFunnelEvent records a funnel event.
func (d *Database) InsertFunnelEvent(event FunnelEvent) error {
	if d == nil {
		return errors.New("database is nil")
	}
	return d.gorm.Create(&event).Error
}

// SaveAssessment persists one scoring outcome.
func (d *Database) SaveAssessment(assessment Assessment) error {
	if d == nil {
		return errors.New("database is nil")
	}
	return d.gorm.Create(&assessment).Error
}

// ListAssessments returns assessments newest first with the total count.
func (d *Database) ListAssessments(offset, limit int) ([]Assessment, int64, error) {
	if d == nil {
		return nil, 0, errors.New("database is nil")
	}
	var total int64
	if err := d.gorm.Model(&Assessment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []Assessment
	query := d.gorm.Model(&Assessment{}).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListFunnelEvents returns funnel events for a session in insertion order.
func (d *Database) ListFunnelEvents(sessionID string) ([]FunnelEvent, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	var rows []FunnelEvent
	if err := d.gorm.Where("session_id = ?", sessionID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
