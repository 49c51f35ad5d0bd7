package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks reCAPTCHA v3 tokens against Google's siteverify endpoint.
// When disabled it accepts every token, so public endpoints work in
// development without keys.
type Verifier struct {
	config *config.RecaptchaConfig
	client *http.Client
	logger *logrus.Logger
}

func NewVerifier(cfg *config.RecaptchaConfig, logger *logrus.Logger) ports.RecaptchaVerifier {
	return &Verifier{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.config.Enabled {
		return nil
	}
	if token == "" {
		return fmt.Errorf("recaptcha token is required")
	}

	form := url.Values{
		"secret":   {v.config.SecretKey},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		// Provider outage should not block legitimate visitors.
		if v.logger != nil {
			v.logger.WithError(err).Warn("recaptcha verification unreachable, allowing request")
		}
		return nil
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode verify response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("recaptcha rejected: %s", strings.Join(result.ErrorCodes, ", "))
	}
	if result.Score < v.config.MinScore {
		return fmt.Errorf("recaptcha score %.2f below threshold", result.Score)
	}

	return nil
}
