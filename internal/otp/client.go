package otp

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Config drives the SMS gateway client behaviour.
type Config struct {
	APIKey        string
	SenderID      string
	BaseURL       string
	HelpLine      string
	Timeout       time.Duration
	RatePerMinute int
}

// ErrMissingCredentials is returned when the client cannot authenticate.
var ErrMissingCredentials = errors.New("sms client missing api key")

// ErrInvalidMobile is returned for numbers that are not ten digits.
var ErrInvalidMobile = errors.New("invalid mobile number")

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidMobile reports whether the number is a plain ten-digit mobile.
func ValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// GenerateCode returns a random six-digit one-time passcode.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken;
		// fall back to a fixed-width timestamp remainder.
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

// Message renders the registration SMS body for a code. The wording is
// fixed; the gateway template is registered against it.
func Message(code, helpLine string) string {
	return fmt.Sprintf("%s is your registration OTP for Topiko. Do not share this OTP with anyone. Contact %s for any help.", code, helpLine)
}

// GatewayResponse captures what the SMS gateway said about a send.
type GatewayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Raw     string `json:"raw,omitempty"`
}

// Client relays one-time passcodes through the MagicText HTTP gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	senderID   string
	helpLine   string
	limiter    *rate.Limiter
}

type gatewayRequest struct {
	APIKey   string `json:"apikey"`
	SenderID string `json:"senderid"`
	Number   string `json:"number"`
	Message  string `json:"message"`
	Format   string `json:"format"`
}

// NewClient constructs a gateway client if configuration is valid.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "http://msg.magictext.in/V2/http-api-post.php"
	}

	senderID := strings.TrimSpace(cfg.SenderID)
	if senderID == "" {
		senderID = "TOPIKO"
	}

	helpLine := strings.TrimSpace(cfg.HelpLine)
	if helpLine == "" {
		helpLine = "885 886 8889"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 60
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		senderID:   senderID,
		helpLine:   helpLine,
		limiter:    rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 5),
	}, nil
}

// Send relays the passcode to the mobile number through the gateway.
func (c *Client) Send(ctx context.Context, mobile, code string) (*GatewayResponse, error) {
	if c == nil {
		return nil, errors.New("sms client is nil")
	}
	if !ValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("sms rate limiter: %w", err)
	}

	payload := gatewayRequest{
		APIKey:   c.apiKey,
		SenderID: c.senderID,
		Number:   mobile,
		Message:  Message(code, c.helpLine),
		Format:   "json",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms gateway request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sms gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sms gateway status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	// The gateway usually answers JSON but sometimes plain text.
	var out GatewayResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		out = GatewayResponse{Raw: strings.TrimSpace(string(raw))}
	}
	return &out, nil
}
