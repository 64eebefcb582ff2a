package analytics

import (
	"net/url"
	"strings"
)

// Funnel screens in conversion order.
const (
	ScreenLanding         = "landing"
	ScreenMobileEntry     = "mobile_entry"
	ScreenOTPVerification = "otp_verification"
	ScreenBasicInfo       = "basic_info"
	ScreenAssessment      = "assessment"
	ScreenResults         = "results"
)

var conversionSteps = map[string]int{
	ScreenLanding:         1,
	ScreenMobileEntry:     2,
	ScreenOTPVerification: 3,
	ScreenBasicInfo:       4,
	ScreenAssessment:      5,
	ScreenResults:         6,
}

// ConversionStep maps a screen name to its funnel step; unknown screens
// are step 0.
func ConversionStep(screen string) int {
	return conversionSteps[screen]
}

var conversionStatuses = map[string]string{
	"mobile_entered":       "mobile_entered",
	"otp_verified":         "otp_verified",
	"assessment_started":   "assessment_started",
	"assessment_completed": "completed",
	"whatsapp_clicked":     "whatsapp_conversion",
}

// ConversionStatus translates a conversion kind into the session status it
// records. Unknown kinds pass through unchanged.
func ConversionStatus(kind string) string {
	if status, ok := conversionStatuses[kind]; ok {
		return status
	}
	return kind
}

var socialSources = []string{"google", "facebook", "instagram", "linkedin", "youtube"}

// ClassifyTrafficSource attributes a session. A UTM source always wins,
// an empty referrer is direct traffic, known platforms are named and
// everything else is a plain referral.
func ClassifyTrafficSource(referrer, utmSource string) string {
	if utmSource != "" {
		return utmSource
	}
	if strings.TrimSpace(referrer) == "" {
		return "direct"
	}
	parsed, err := url.Parse(referrer)
	if err != nil || parsed.Hostname() == "" {
		return "referral"
	}
	host := strings.ToLower(parsed.Hostname())
	for _, source := range socialSources {
		if strings.Contains(host, source) {
			return source
		}
	}
	return "referral"
}

// DetectDevice classifies a user agent as mobile, tablet or desktop.
func DetectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android"):
		return "mobile"
	default:
		return "desktop"
	}
}

// DetectBrowser picks the browser family out of a user agent. Order
// matters: Edge and Chrome both advertise Safari.
func DetectBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edg"):
		return "edge"
	case strings.Contains(ua, "chrome"):
		return "chrome"
	case strings.Contains(ua, "firefox"):
		return "firefox"
	case strings.Contains(ua, "safari"):
		return "safari"
	default:
		return "unknown"
	}
}
