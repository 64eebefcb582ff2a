package analytics

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"topiko-funnel/internal/store"
)

// Visit carries everything the frontend reports on a page load.
type Visit struct {
	SessionID    string
	PageURL      string
	PageTitle    string
	Referrer     string
	UserAgent    string
	ScreenWidth  int
	ScreenHeight int
	Language     string
	Timezone     string
	UTMSource    string
	UTMMedium    string
	UTMCampaign  string
	UTMContent   string
	UTMTerm      string
}

// Event is one funnel interaction reported by the frontend.
type Event struct {
	SessionID  string
	ScreenName string
	ActionType string
	Details    map[string]any
	TimeSpent  int
	NextScreen string
	DroppedOff bool
}

// Tracker writes funnel analytics. It must never break the user flow: a
// nil database means offline mode and every write failure is logged and
// swallowed.
type Tracker struct {
	db *store.Database
}

// NewTracker constructs a tracker; db may be nil for offline mode.
func NewTracker(db *store.Database) *Tracker {
	if db == nil {
		logrus.Info("analytics store not configured, tracking runs in offline mode")
	}
	return &Tracker{db: db}
}

// Enabled reports whether events are actually persisted.
func (t *Tracker) Enabled() bool {
	return t != nil && t.db != nil
}

// NewSessionID mints a fresh session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// TrackVisit records a page visit and creates or refreshes its session.
func (t *Tracker) TrackVisit(visit Visit) {
	if !t.Enabled() {
		return
	}

	err := t.db.InsertPageVisit(store.PageVisit{
		SessionID:    visit.SessionID,
		PageURL:      visit.PageURL,
		PageTitle:    visit.PageTitle,
		Referrer:     visit.Referrer,
		UserAgent:    visit.UserAgent,
		ScreenWidth:  visit.ScreenWidth,
		ScreenHeight: visit.ScreenHeight,
		Language:     visit.Language,
		Timezone:     visit.Timezone,
		UTMSource:    visit.UTMSource,
		UTMMedium:    visit.UTMMedium,
		UTMCampaign:  visit.UTMCampaign,
		UTMContent:   visit.UTMContent,
		UTMTerm:      visit.UTMTerm,
	})
	if err != nil {
		logrus.WithError(err).WithField("session_id", visit.SessionID).Warn("track page visit")
	}

	err = t.db.EnsureSession(store.UserSession{
		SessionID:     visit.SessionID,
		DeviceType:    DetectDevice(visit.UserAgent),
		Browser:       DetectBrowser(visit.UserAgent),
		TrafficSource: ClassifyTrafficSource(visit.Referrer, visit.UTMSource),
		LandingPage:   visit.PageURL,
		UTMSource:     visit.UTMSource,
		UTMMedium:     visit.UTMMedium,
		UTMCampaign:   visit.UTMCampaign,
		UTMContent:    visit.UTMContent,
		UTMTerm:       visit.UTMTerm,
	})
	if err != nil {
		logrus.WithError(err).WithField("session_id", visit.SessionID).Warn("ensure session")
	}
}

// TrackEvent records a screen view, action or drop-off.
func (t *Tracker) TrackEvent(event Event) {
	if !t.Enabled() {
		return
	}

	row := store.FunnelEvent{
		SessionID:      event.SessionID,
		ScreenName:     event.ScreenName,
		ActionType:     event.ActionType,
		TimeSpent:      event.TimeSpent,
		NextScreen:     event.NextScreen,
		DroppedOff:     event.DroppedOff,
		ConversionStep: ConversionStep(event.ScreenName),
	}
	row.SetDetails(event.Details)

	if err := t.db.InsertFunnelEvent(row); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"session_id": event.SessionID,
			"action":     event.ActionType,
		}).Warn("track funnel event")
	}
}

// TrackDropOff records the abandonment event and flags the session.
func (t *Tracker) TrackDropOff(sessionID, screen, reason, exitPage string, timeSpent int) {
	if !t.Enabled() {
		return
	}

	t.TrackEvent(Event{
		SessionID:  sessionID,
		ScreenName: screen,
		ActionType: "drop_off",
		Details:    map[string]any{"reason": reason},
		TimeSpent:  timeSpent,
		DroppedOff: true,
	})
	if err := t.db.UpdateConversionStatus(sessionID, "dropped_off", exitPage); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("mark drop off")
	}
}

// TrackConversion advances the session status and records the conversion
// action.
func (t *Tracker) TrackConversion(sessionID, kind string, details map[string]any) {
	if !t.Enabled() {
		return
	}

	if err := t.db.UpdateConversionStatus(sessionID, ConversionStatus(kind), ""); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"session_id": sessionID,
			"kind":       kind,
		}).Warn("update conversion status")
	}

	merged := map[string]any{"type": kind}
	for k, v := range details {
		merged[k] = v
	}
	t.TrackEvent(Event{
		SessionID:  sessionID,
		ActionType: "conversion",
		Details:    merged,
	})
}
