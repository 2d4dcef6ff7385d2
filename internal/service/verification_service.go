package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aispectrumclubaiml/ak/config"
	"github.com/rs/zerolog/log"
)

// VerificationResult is what the external participant lookup resolves a
// phone number to.
type VerificationResult struct {
	Name        string
	Institution string
}

// VerificationClient resolves a phone number to a participant identity via
// the external registration service. Implementations: the HTTP client below
// and deterministic fakes in tests. Callers must treat any error as
// non-fatal and degrade to placeholder identity.
type VerificationClient interface {
	Verify(ctx context.Context, phone, eventName string) (*VerificationResult, error)
}

type verificationRequest struct {
	MobileNumber string `json:"mobile_number"`
	EventName    string `json:"event_name"`
}

type verificationResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	College string `json:"college"`
	Message string `json:"message"`
}

type httpVerificationClient struct {
	url    string
	client *http.Client
}

// NewVerificationClient builds the HTTP implementation. The short timeout is
// deliberate: a slow registration service must not hold up quiz entry.
func NewVerificationClient(cfg *config.Config) VerificationClient {
	return &httpVerificationClient{
		url: cfg.Verification.URL,
		client: &http.Client{
			Timeout: cfg.Verification.Timeout,
		},
	}
}

func (c *httpVerificationClient) Verify(ctx context.Context, phone, eventName string) (*VerificationResult, error) {
	if c.url == "" {
		return nil, fmt.Errorf("verification service URL is not configured")
	}

	body, err := json.Marshal(verificationRequest{
		MobileNumber: phone,
		EventName:    eventName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("verification service returned status %d", resp.StatusCode)
	}

	var vr verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode verification response: %w", err)
	}
	if !vr.Success {
		return nil, fmt.Errorf("verification unsuccessful: %s", vr.Message)
	}
	if vr.Name == "" {
		return nil, fmt.Errorf("verification response missing participant name")
	}

	log.Info().Str("phone", phone).Str("event", eventName).Msg("Participant verified")
	return &VerificationResult{Name: vr.Name, Institution: vr.College}, nil
}
