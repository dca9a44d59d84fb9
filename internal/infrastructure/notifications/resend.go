package notifications

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultResendBaseURL = "https://api.resend.com"

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// ResendClient posts transactional email to the Resend API.
type ResendClient struct {
	httpClient *resty.Client
	from       string
	logger     *zap.Logger
}

var _ EmailSender = (*ResendClient)(nil)

func NewResendClient(baseURL, apiKey, from string, timeout time.Duration, logger *zap.Logger) *ResendClient {
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryableStatus).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ResendClient{httpClient: client, from: from, logger: logger}
}

func (c *ResendClient) SendEmail(ctx context.Context, to, subject, html string) (string, error) {
	var (
		out     resendResponse
		failure resendError
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(resendEmail{From: c.from, To: []string{to}, Subject: subject, HTML: html}).
		SetResult(&out).
		SetError(&failure).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("resend request: %w", err)
	}
	if resp.IsError() {
		msg := failure.Message
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Error("[notification][resend] rejected",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("name", failure.Name),
			zap.String("message", msg),
		)
		return "", fmt.Errorf("resend: %s (status: %d)", msg, resp.StatusCode())
	}
	return out.ID, nil
}

func retryableStatus(r *resty.Response, err error) bool {
	if err != nil || r == nil {
		return false
	}
	code := r.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
