package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topiko-funnel/internal/otp"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

// offlineConfig runs without a database and without an SMS gateway so
// handlers can be exercised hermetically.
func offlineConfig() Config {
	return Config{
		DisableSMS:        true,
		OTPTTL:            time.Minute,
		OTPPerIPPerMinute: 100,
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	w := doJSON(t, srv.Router(), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["analytics"])
	assert.Equal(t, false, body["sms"])
}

func TestConfigEndpoint(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	w := doJSON(t, srv.Router(), http.MethodGet, "/api/config", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Weights struct {
			Goals         float64 `json:"goals"`
			DigitalStatus float64 `json:"digital_status"`
			Budget        float64 `json:"budget"`
			Challenge     float64 `json:"challenge"`
		} `json:"weights"`
		Categories []struct {
			Label string `json:"label"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 0.25, body.Weights.Goals, 1e-9)
	assert.InDelta(t, 0.30, body.Weights.DigitalStatus, 1e-9)
	require.Len(t, body.Categories, 5)
	assert.Equal(t, "Digitally Ready", body.Categories[0].Label)
	assert.Equal(t, "Just Beginning", body.Categories[4].Label)
}

func TestSendOTPEchoesCode(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	router := srv.Router()

	w := doJSON(t, router, http.MethodPost, "/api/otp/send", SendOTPRequest{Mobile: "9876543210"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SendOTPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "9876543210", resp.Mobile)
	require.Len(t, resp.OTP, 6)
	assert.True(t, otp.ValidMobile(resp.Mobile))

	// The echoed code must verify exactly once.
	vw := doJSON(t, router, http.MethodPost, "/api/otp/verify", VerifyOTPRequest{
		Mobile: "9876543210", Code: resp.OTP,
	})
	require.Equal(t, http.StatusOK, vw.Code)
	var verify map[string]bool
	require.NoError(t, json.Unmarshal(vw.Body.Bytes(), &verify))
	assert.True(t, verify["verified"])

	vw = doJSON(t, router, http.MethodPost, "/api/otp/verify", VerifyOTPRequest{
		Mobile: "9876543210", Code: resp.OTP,
	})
	require.NoError(t, json.Unmarshal(vw.Body.Bytes(), &verify))
	assert.False(t, verify["verified"])
}

func TestSendOTPRejectsBadMobile(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	router := srv.Router()

	for _, mobile := range []string{"12345", "abcdefghij", "+919876543210"} {
		w := doJSON(t, router, http.MethodPost, "/api/otp/send", SendOTPRequest{Mobile: mobile})
		assert.Equal(t, http.StatusBadRequest, w.Code, "mobile %q", mobile)
	}
}

func TestSendOTPRateLimited(t *testing.T) {
	cfg := offlineConfig()
	cfg.OTPPerIPPerMinute = 2
	srv := newTestServer(t, cfg)
	router := srv.Router()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/otp/send", SendOTPRequest{Mobile: "9876543210"})
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestVerifyUnknownMobile(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/otp/verify", VerifyOTPRequest{
		Mobile: "9999999999", Code: "123456",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var verify map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verify))
	assert.False(t, verify["verified"])
}

func TestTrackVisitMintsSessionID(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	router := srv.Router()

	w := doJSON(t, router, http.MethodPost, "/api/track/visit", TrackVisitRequest{
		PageURL: "https://topiko.com/",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["session_id"])

	w = doJSON(t, router, http.MethodPost, "/api/track/visit", TrackVisitRequest{
		SessionID: "existing-session", PageURL: "https://topiko.com/quiz",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "existing-session", body["session_id"])
}

func TestTrackEventOffline(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	router := srv.Router()

	w := doJSON(t, router, http.MethodPost, "/api/track/event", TrackEventRequest{
		SessionID: "s-1", ScreenName: "assessment", ActionType: "question_answered",
		Details: map[string]any{"question": 2},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/track/event", TrackEventRequest{
		SessionID: "s-1", ScreenName: "assessment", ActionType: "drop_off",
		Reason: "idle_timeout", ExitPage: "/quiz", TimeSpent: 42,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/track/event", TrackEventRequest{
		ScreenName: "assessment", ActionType: "question_answered",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "session_id is required")
}

func TestScoreEndpoint(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/score", ScoreRequest{
		SessionID:     "s-score",
		Goals:         []string{"more_customers"},
		DigitalStatus: "no_presence",
		Budget:        "below_2k",
		Challenge:     "no_leads",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SessionID string `json:"session_id"`
		Overall   struct {
			TotalScore int `json:"total_score"`
			Category   struct {
				Label string `json:"label"`
			} `json:"category"`
		} `json:"overall"`
		SolutionMatch int `json:"solution_match"`
		Insights      []struct {
			Type string `json:"type"`
		} `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "s-score", body.SessionID)
	assert.Equal(t, 38, body.Overall.TotalScore)
	assert.Equal(t, "Early Stage", body.Overall.Category.Label)
	assert.GreaterOrEqual(t, body.SolutionMatch, 60)
	assert.LessOrEqual(t, body.SolutionMatch, 95)
	require.NotEmpty(t, body.Insights)
	assert.Equal(t, "overall", body.Insights[0].Type)
}

func TestScoreMintsSessionID(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/score", ScoreRequest{
		Goals: []string{"more_customers"}, DigitalStatus: "basic_social",
		Budget: "below_2k", Challenge: "low_sales",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.SessionID)
}

func TestAdminEndpointsWithoutStore(t *testing.T) {
	srv := newTestServer(t, offlineConfig())
	router := srv.Router()

	for _, path := range []string{
		"/api/assessments",
		"/api/export.csv",
		"/api/stats/daily",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "path %s", path)
	}
}
