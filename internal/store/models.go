package store

import (
	"encoding/json"
	"strings"
	"time"
)

// UserSession tracks one funnel visitor across the questionnaire flow.
type UserSession struct {
	ID               uint   `gorm:"primaryKey"`
	SessionID        string `gorm:"size:64;uniqueIndex"`
	DeviceType       string `gorm:"size:16"`
	Browser          string `gorm:"size:32"`
	TrafficSource    string `gorm:"size:64;index"`
	LandingPage      string `gorm:"size:512"`
	UTMSource        string `gorm:"size:128"`
	UTMMedium        string `gorm:"size:128"`
	UTMCampaign      string `gorm:"size:128"`
	UTMContent       string `gorm:"size:128"`
	UTMTerm          string `gorm:"size:128"`
	ConversionStatus string `gorm:"size:32;index"`
	TotalPageViews   int
	ExitPage         string `gorm:"size:512"`
	LastActivity     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PageVisit records one page load with its browser and campaign context.
type PageVisit struct {
	ID           uint   `gorm:"primaryKey"`
	SessionID    string `gorm:"size:64;index"`
	PageURL      string `gorm:"size:512"`
	PageTitle    string `gorm:"size:256"`
	Referrer     string `gorm:"size:512"`
	UserAgent    string `gorm:"size:512"`
	ScreenWidth  int
	ScreenHeight int
	Language     string    `gorm:"size:16"`
	Timezone     string    `gorm:"size:64"`
	UTMSource    string    `gorm:"size:128"`
	UTMMedium    string    `gorm:"size:128"`
	UTMCampaign  string    `gorm:"size:128"`
	UTMContent   string    `gorm:"size:128"`
	UTMTerm      string    `gorm:"size:128"`
	CreatedAt    time.Time `gorm:"index"`
}

// FunnelEvent is one screen view, action or drop-off within a session.
type FunnelEvent struct {
	ID             uint   `gorm:"primaryKey"`
	SessionID      string `gorm:"size:64;index"`
	ScreenName     string `gorm:"size:64;index"`
	ActionType     string `gorm:"size:32;index"`
	DetailsJSON    string `gorm:"type:text"`
	TimeSpent      int
	NextScreen     string `gorm:"size:64"`
	DroppedOff     bool
	ConversionStep int       `gorm:"index"`
	CreatedAt      time.Time `gorm:"index"`
}

// SetDetails persists the action payload as JSON.
func (e *FunnelEvent) SetDetails(details map[string]any) {
	if len(details) == 0 {
		e.DetailsJSON = "{}"
		return
	}
	payload, _ := json.Marshal(details)
	e.DetailsJSON = string(payload)
}

// Details returns the unmarshalled action payload.
func (e *FunnelEvent) Details() map[string]any {
	if strings.TrimSpace(e.DetailsJSON) == "" {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(e.DetailsJSON), &out); err != nil {
		return nil
	}
	return out
}

// Assessment is the persisted scoring outcome for one submission.
type Assessment struct {
	ID            uint   `gorm:"primaryKey"`
	SessionID     string `gorm:"size:64;index"`
	GoalsJSON     string `gorm:"type:text"`
	DigitalStatus string `gorm:"size:32"`
	Budget        string `gorm:"size:32"`
	Challenge     string `gorm:"size:32"`
	TotalScore    int    `gorm:"index"`
	CategoryLabel string `gorm:"size:32"`
	Product       string `gorm:"size:64;index"`
	SolutionMatch int
	BreakdownJSON string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`
}

// SetGoals persists the goal list as JSON.
func (a *Assessment) SetGoals(goals []string) {
	if goals == nil {
		a.GoalsJSON = "[]"
		return
	}
	payload, _ := json.Marshal(goals)
	a.GoalsJSON = string(payload)
}

// Goals returns the unmarshalled goal tags.
func (a *Assessment) Goals() []string {
	if strings.TrimSpace(a.GoalsJSON) == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(a.GoalsJSON), &out); err != nil {
		return nil
	}
	return out
}

// DailyStat aggregates funnel activity per calendar day.
type DailyStat struct {
	Date                 string `gorm:"primaryKey;size:10"`
	Visits               int
	Sessions             int
	OTPVerified          int
	AssessmentsCompleted int
	Conversions          int
	UpdatedAt            time.Time
}
