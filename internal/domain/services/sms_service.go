package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
)

const fast2SMSEndpoint = "https://www.fast2sms.com/dev/bulkV2"

var indianPrefix = regexp.MustCompile(`^\+91\s*`)

// InterfaceSMSService defines the SMS delivery interface
type InterfaceSMSService interface {
	SendOTP(phone, otp string) error
	IsEnabled() bool
}

// SMSService sends transactional SMS through Fast2SMS. Without an API key it
// runs in development mode and logs the code instead of sending it.
type SMSService struct {
	Config *config.Config
	Client *http.Client
}

// NewSMSService creates a new SMS service
func NewSMSService(cfg *config.Config) InterfaceSMSService {
	return &SMSService{
		Config: cfg,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// 1 SendOTP delivers a login code to an agent phone number
func (s *SMSService) SendOTP(phone, otp string) error {
	if !s.IsEnabled() {
		logger.Info("development mode: OTP for %s is %s", phone, otp)
		return nil
	}

	// Fast2SMS expects bare 10-digit Indian numbers.
	cleanPhone := indianPrefix.ReplaceAllString(phone, "")

	message := fmt.Sprintf("Your Terrawise agent login OTP is: %s. This code expires in 10 minutes. Do not share this code.", otp)
	payload := map[string]interface{}{
		"route":    "otp",
		"message":  message,
		"language": "english",
		"flash":    0,
		"numbers":  cleanPhone,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, fast2SMSEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	req.Header.Set("Authorization", s.Config.Fast2SMSAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms request: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Return    bool   `json:"return"`
		RequestID string `json:"request_id"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode sms response: %w", err)
	}
	if !result.Return {
		return fmt.Errorf("fast2sms error: %s", result.Message)
	}

	logger.Info("sms sent to %s, request id %s", phone, result.RequestID)
	return nil
}

// 2 IsEnabled reports whether a Fast2SMS API key is configured
func (s *SMSService) IsEnabled() bool {
	return s.Config.Fast2SMSAPIKey != ""
}
