package api

import (
	"encoding/json"

	"topiko-funnel/internal/scoring"
	"topiko-funnel/internal/store"
)

// SendOTPRequest asks the server to relay a one-time passcode by SMS.
type SendOTPRequest struct {
	Mobile    string `json:"mobile" binding:"required"`
	SessionID string `json:"session_id"`
}

// SendOTPResponse echoes the generated code so the frontend can verify
// locally when the gateway is slow. The original contract works this way;
// hardening it is a product decision, not ours.
type SendOTPResponse struct {
	Success bool   `json:"success"`
	Mobile  string `json:"mobile"`
	OTP     string `json:"otp"`
	Message string `json:"message,omitempty"`
}

// VerifyOTPRequest checks a code the user typed in.
type VerifyOTPRequest struct {
	Mobile    string `json:"mobile" binding:"required"`
	Code      string `json:"code" binding:"required"`
	SessionID string `json:"session_id"`
}

// TrackVisitRequest is the page-load beacon sent by the frontend.
type TrackVisitRequest struct {
	SessionID    string `json:"session_id"`
	PageURL      string `json:"page_url"`
	PageTitle    string `json:"page_title"`
	Referrer     string `json:"referrer"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	Language     string `json:"language"`
	Timezone     string `json:"timezone"`
	UTMSource    string `json:"utm_source"`
	UTMMedium    string `json:"utm_medium"`
	UTMCampaign  string `json:"utm_campaign"`
	UTMContent   string `json:"utm_content"`
	UTMTerm      string `json:"utm_term"`
}

// TrackEventRequest is one funnel interaction beacon.
type TrackEventRequest struct {
	SessionID  string         `json:"session_id" binding:"required"`
	ScreenName string         `json:"screen_name"`
	ActionType string         `json:"action_type" binding:"required"`
	Details    map[string]any `json:"details"`
	TimeSpent  int            `json:"time_spent"`
	NextScreen string         `json:"next_screen"`
	Reason     string         `json:"reason"`
	ExitPage   string         `json:"exit_page"`
}

// ScoreRequest carries the questionnaire answers for evaluation.
type ScoreRequest struct {
	SessionID     string   `json:"session_id"`
	Goals         []string `json:"goals"`
	DigitalStatus string   `json:"digital_status"`
	Budget        string   `json:"budget"`
	Challenge     string   `json:"challenge"`
}

// AssessmentDTO is the admin-facing view of a stored assessment.
type AssessmentDTO struct {
	ID            uint     `json:"id"`
	SessionID     string   `json:"session_id"`
	Goals         []string `json:"goals"`
	DigitalStatus string   `json:"digital_status"`
	Budget        string   `json:"budget"`
	Challenge     string   `json:"challenge"`
	TotalScore    int      `json:"total_score"`
	CategoryLabel string   `json:"category_label"`
	Product       string   `json:"product"`
	SolutionMatch int      `json:"solution_match"`
	CreatedAt     string   `json:"created_at"`
}

func assessmentDTO(a store.Assessment) AssessmentDTO {
	goals := a.Goals()
	if goals == nil {
		goals = []string{}
	}
	return AssessmentDTO{
		ID:            a.ID,
		SessionID:     a.SessionID,
		Goals:         goals,
		DigitalStatus: a.DigitalStatus,
		Budget:        a.Budget,
		Challenge:     a.Challenge,
		TotalScore:    a.TotalScore,
		CategoryLabel: a.CategoryLabel,
		Product:       a.Product,
		SolutionMatch: a.SolutionMatch,
		CreatedAt:     a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// jsonBreakdown serializes the score detail stored alongside each
// assessment row.
func jsonBreakdown(snapshot scoring.Snapshot) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"breakdown":            snapshot.Overall.Breakdown,
		"dimensions":           snapshot.Dimensions,
		"three_category_match": snapshot.CategoryMatch,
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
