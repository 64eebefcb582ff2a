package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"topiko-funnel/internal/analytics"
	"topiko-funnel/internal/otp"
	"topiko-funnel/internal/scoring"
	"topiko-funnel/internal/store"
	"topiko-funnel/internal/util"
)

// Config bundles everything the HTTP server needs.
type Config struct {
	DBPath            string
	RulesPath         string
	AllowedOrigins    []string
	SilentDB          bool
	SMS               otp.Config
	DisableSMS        bool
	OTPTTL            time.Duration
	OTPPerIPPerMinute int
}

// Server owns the shared state behind the HTTP handlers.
type Server struct {
	db         *store.Database
	tracker    *analytics.Tracker
	scorer     *scoring.Scorer
	sms        *otp.Client
	codes      *otp.Store
	otpLimiter *ipLimiter
	origins    []string
}

// NewServer wires the store, scorer, SMS client and analytics tracker.
// A missing database path leaves analytics in offline mode rather than
// failing startup; scoring and OTP relay do not depend on it.
func NewServer(cfg Config) (*Server, error) {
	var db *store.Database
	if cfg.DBPath != "" {
		var err error
		db, err = store.Open(cfg.DBPath, cfg.SilentDB)
		if err != nil {
			return nil, fmt.Errorf("open analytics store: %w", err)
		}
	}

	rules := scoring.DefaultRules()
	if cfg.RulesPath != "" {
		loaded, err := scoring.LoadRules(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load scoring rules: %w", err)
		}
		rules = loaded
	}

	var sms *otp.Client
	if !cfg.DisableSMS {
		client, err := otp.NewClient(cfg.SMS)
		if err != nil {
			return nil, fmt.Errorf("sms client: %w", err)
		}
		sms = client
	}

	return &Server{
		db:         db,
		tracker:    analytics.NewTracker(db),
		scorer:     scoring.NewScorer(rules),
		sms:        sms,
		codes:      otp.NewStore(cfg.OTPTTL),
		otpLimiter: newIPLimiter(cfg.OTPPerIPPerMinute),
		origins:    cfg.AllowedOrigins,
	}, nil
}

// Close releases the underlying database handle.
func (s *Server) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Router builds the gin engine with CORS and all funnel routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(s.origins) > 0 {
		corsCfg.AllowOrigins = s.origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/config", s.handleConfig)

		api.POST("/otp/send", s.otpLimiter.middleware(), s.handleSendOTP)
		api.POST("/otp/verify", s.handleVerifyOTP)

		api.POST("/track/visit", s.handleTrackVisit)
		api.POST("/track/event", s.handleTrackEvent)

		api.POST("/score", s.handleScore)

		api.GET("/assessments", s.handleListAssessments)
		api.GET("/export.csv", s.handleExportCSV)
		api.GET("/stats/daily", s.handleDailyStats)
	}

	return r
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"analytics":    s.tracker.Enabled(),
		"sms":          s.sms != nil,
		"pending_otps": s.codes.Len(),
	})
}

// handleConfig exposes the scoring weights and category bands so the
// frontend renders the same boundaries the backend scores against.
func (s *Server) handleConfig(c *gin.Context) {
	rules := s.scorer.Rules()
	c.JSON(http.StatusOK, gin.H{
		"weights": rules.Weights,
		"categories": []scoring.Category{
			scoring.ScoreCategory(80),
			scoring.ScoreCategory(60),
			scoring.ScoreCategory(40),
			scoring.ScoreCategory(20),
			scoring.ScoreCategory(0),
		},
	})
}

func (s *Server) handleSendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	mobile := strings.TrimSpace(req.Mobile)
	if !otp.ValidMobile(mobile) {
		s.renderError(c, http.StatusBadRequest, otp.ErrInvalidMobile)
		return
	}

	code := otp.GenerateCode()
	resp := SendOTPResponse{Success: true, Mobile: mobile, OTP: code}

	if s.sms != nil {
		gw, err := s.sms.Send(c.Request.Context(), mobile, code)
		if err != nil {
			logrus.Warnf("otp send failed for %s: %v", mobile, err)
			s.renderError(c, http.StatusBadGateway, fmt.Errorf("sms gateway: %w", err))
			return
		}
		resp.Message = gw.Message
	}

	s.codes.Put(mobile, code)

	if req.SessionID != "" {
		s.tracker.TrackConversion(req.SessionID, "mobile_entered", map[string]any{"mobile": mobile})
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleVerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	mobile := strings.TrimSpace(req.Mobile)

	verified := s.codes.Verify(mobile, strings.TrimSpace(req.Code))
	if verified && req.SessionID != "" {
		s.tracker.TrackConversion(req.SessionID, "otp_verified", map[string]any{"mobile": mobile})
	}

	c.JSON(http.StatusOK, gin.H{"verified": verified})
}

func (s *Server) handleTrackVisit(c *gin.Context) {
	var req TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	if req.SessionID == "" {
		req.SessionID = analytics.NewSessionID()
	}

	s.tracker.TrackVisit(analytics.Visit{
		SessionID:    req.SessionID,
		PageURL:      req.PageURL,
		PageTitle:    req.PageTitle,
		Referrer:     req.Referrer,
		UserAgent:    c.Request.UserAgent(),
		ScreenWidth:  req.ScreenWidth,
		ScreenHeight: req.ScreenHeight,
		Language:     req.Language,
		Timezone:     req.Timezone,
		UTMSource:    req.UTMSource,
		UTMMedium:    req.UTMMedium,
		UTMCampaign:  req.UTMCampaign,
		UTMContent:   req.UTMContent,
		UTMTerm:      req.UTMTerm,
	})

	c.JSON(http.StatusOK, gin.H{"session_id": req.SessionID})
}

func (s *Server) handleTrackEvent(c *gin.Context) {
	var req TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	if req.ActionType == "drop_off" {
		s.tracker.TrackDropOff(req.SessionID, req.ScreenName, req.Reason, req.ExitPage, req.TimeSpent)
	} else {
		s.tracker.TrackEvent(analytics.Event{
			SessionID:  req.SessionID,
			ScreenName: req.ScreenName,
			ActionType: req.ActionType,
			Details:    req.Details,
			TimeSpent:  req.TimeSpent,
			NextScreen: req.NextScreen,
		})
	}

	c.JSON(http.StatusOK, gin.H{"tracked": s.tracker.Enabled()})
}

func (s *Server) handleScore(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	if req.SessionID == "" {
		req.SessionID = analytics.NewSessionID()
	}

	timer := util.StartTimer()
	snapshot := s.scorer.Export(scoring.AnswerSet{
		Goals:         req.Goals,
		DigitalStatus: req.DigitalStatus,
		Budget:        req.Budget,
		Challenge:     req.Challenge,
	}, req.SessionID)
	logrus.Infof("scored session %s: %d (%s) in %dms",
		req.SessionID, snapshot.Overall.TotalScore,
		snapshot.Overall.Category.Label, timer.ElapsedMs())

	if s.db != nil {
		assessment := store.Assessment{
			SessionID:     req.SessionID,
			DigitalStatus: snapshot.Answers.DigitalStatus,
			Budget:        snapshot.Answers.Budget,
			Challenge:     snapshot.Answers.Challenge,
			TotalScore:    snapshot.Overall.TotalScore,
			CategoryLabel: snapshot.Overall.Category.Label,
			Product:       string(snapshot.Overall.Recommendations.ProductSuggestion.Product),
			SolutionMatch: snapshot.SolutionMatch,
		}
		assessment.SetGoals(snapshot.Answers.Goals)
		if payload, err := jsonBreakdown(snapshot); err == nil {
			assessment.BreakdownJSON = payload
		}
		if err := s.db.SaveAssessment(assessment); err != nil {
			logrus.Warnf("save assessment failed: %v", err)
		}
	}

	s.tracker.TrackConversion(req.SessionID, "assessment_completed", map[string]any{
		"total_score": snapshot.Overall.TotalScore,
		"category":    snapshot.Overall.Category.Label,
		"product":     string(snapshot.Overall.Recommendations.ProductSuggestion.Product),
	})

	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) handleListAssessments(c *gin.Context) {
	if s.db == nil {
		s.renderError(c, http.StatusServiceUnavailable, errors.New("analytics store not configured"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	rows, total, err := s.db.ListAssessments((page-1)*pageSize, pageSize)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]AssessmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, assessmentDTO(row))
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": out,
		"total":       total,
		"page":        page,
		"pageSize":    pageSize,
	})
}

func (s *Server) handleExportCSV(c *gin.Context) {
	if s.db == nil {
		s.renderError(c, http.StatusServiceUnavailable, errors.New("analytics store not configured"))
		return
	}

	rows, _, err := s.db.ListAssessments(0, 10000)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=assessments.csv")
	c.Header("Content-Type", "text/csv")

	writer := csv.NewWriter(c.Writer)
	writer.Write([]string{
		"id", "session_id", "created_at", "goals", "digital_status",
		"budget", "challenge", "total_score", "category", "product",
		"solution_match",
	})
	for _, row := range rows {
		writer.Write([]string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.SessionID,
			row.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			strings.Join(row.Goals(), "|"),
			row.DigitalStatus,
			row.Budget,
			row.Challenge,
			strconv.Itoa(row.TotalScore),
			row.CategoryLabel,
			row.Product,
			strconv.Itoa(row.SolutionMatch),
		})
	}
	writer.Flush()
}

func (s *Server) handleDailyStats(c *gin.Context) {
	if s.db == nil {
		s.renderError(c, http.StatusServiceUnavailable, errors.New("analytics store not configured"))
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	stats, err := s.db.ListDailyStats(days)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days, "stats": stats})
}
