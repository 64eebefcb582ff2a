package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"topiko-funnel/internal/api"
	"topiko-funnel/internal/otp"
)

func main() {
	// .env is a local convenience; production sets real environment
	// variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("load .env: %v", err)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	smsCfg := otp.Config{
		APIKey:   os.Getenv("MAGICTEXT_API_KEY"),
		SenderID: os.Getenv("MAGICTEXT_SENDER_ID"),
		BaseURL:  os.Getenv("MAGICTEXT_BASE_URL"),
		HelpLine: os.Getenv("HELPLINE_NUMBER"),
	}
	if timeout := os.Getenv("SMS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			smsCfg.Timeout = d
		}
	}
	if perMin := os.Getenv("SMS_RATE_PER_MIN"); perMin != "" {
		if v, err := strconv.Atoi(perMin); err == nil && v > 0 {
			smsCfg.RatePerMinute = v
		}
	}

	otpTTL := 5 * time.Minute
	if ttl := os.Getenv("OTP_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			otpTTL = d
		}
	}
	otpPerIP := 5
	if v := strings.TrimSpace(os.Getenv("OTP_RATE_PER_MIN")); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			otpPerIP = val
		}
	}

	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"https://topiko.com",
		"https://www.topiko.com",
	}
	if raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	disableSMS := strings.EqualFold(strings.TrimSpace(os.Getenv("DISABLE_SMS")), "true")
	if !disableSMS && strings.TrimSpace(smsCfg.APIKey) == "" {
		logrus.Warn("MAGICTEXT_API_KEY not set, running without SMS relay")
		disableSMS = true
	}

	cfg := api.Config{
		DBPath:            filepath.Join(dataDir, "topiko-funnel.db"),
		RulesPath:         strings.TrimSpace(os.Getenv("SCORING_RULES_PATH")),
		AllowedOrigins:    origins,
		SMS:               smsCfg,
		DisableSMS:        disableSMS,
		OTPTTL:            otpTTL,
		OTPPerIPPerMinute: otpPerIP,
	}
	if override := strings.TrimSpace(os.Getenv("FUNNEL_DB_PATH")); override != "" {
		cfg.DBPath = override
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}
	defer func() {
		if cerr := server.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("close server")
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("starting topiko-funnel backend on :%s", port)
	if err := server.Router().Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
