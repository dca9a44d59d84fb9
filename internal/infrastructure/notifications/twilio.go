package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultTwilioBaseURL = "https://api.twilio.com"

type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

// TwilioClient sends SMS through the Twilio Messages API.
type TwilioClient struct {
	httpClient *resty.Client
	accountSID string
	from       string
	logger     *zap.Logger
}

var _ SMSSender = (*TwilioClient)(nil)

func NewTwilioClient(baseURL, accountSID, authToken, from string, timeout time.Duration, logger *zap.Logger) *TwilioClient {
	if baseURL == "" {
		baseURL = DefaultTwilioBaseURL
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
		SetBasicAuth(accountSID, authToken).
		SetHeader("Accept", "application/json")

	return &TwilioClient{httpClient: client, accountSID: accountSID, from: from, logger: logger}
}

func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	var (
		out     twilioMessage
		failure twilioError
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("sid", c.accountSID).
		SetFormData(map[string]string{
			"To":   to,
			"From": c.from,
			"Body": body,
		}).
		SetResult(&out).
		SetError(&failure).
		Post("/2010-04-01/Accounts/{sid}/Messages.json")
	if err != nil {
		return "", fmt.Errorf("twilio request: %w", err)
	}
	if resp.IsError() {
		msg := failure.Message
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Error("[notification][twilio] rejected",
			zap.Int("status_code", resp.StatusCode()),
			zap.Int("code", failure.Code),
			zap.String("message", msg),
		)
		return "", fmt.Errorf("twilio: %s (code: %d)", msg, failure.Code)
	}
	return out.SID, nil
}
