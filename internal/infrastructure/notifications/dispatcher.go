package notifications

import (
	"context"
	"errors"
	"rental_portal/internal/infrastructure/metrics"
	"rental_portal/internal/usecase/interfaces"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	// MockSuccess is reported for a channel whose provider is not configured.
	MockSuccess = "mock-success"
)

var ErrNoEmailRecipient = errors.New("recipient has no email address")

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, html string) (string, error)
}

type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// Dispatcher fans a notification out to email and SMS concurrently and waits
// for both. A nil sender puts its channel in mock mode: the message is logged
// and reported as delivered.
type Dispatcher struct {
	email     EmailSender
	sms       SMSSender
	templates *Templates
	metrics   *metrics.Metrics
	timeout   time.Duration
	logger    *zap.Logger
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

func NewDispatcher(email EmailSender, sms SMSSender, templates *Templates, m *metrics.Metrics, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		email:     email,
		sms:       sms,
		templates: templates,
		metrics:   m,
		timeout:   timeout,
		logger:    logger,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, n interfaces.Notification) interfaces.NotificationResult {
	var result interfaces.NotificationResult
	if n.To.Empty() {
		return result
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var (
		wg               sync.WaitGroup
		emailID, smsID   string
		emailErr, smsErr error
	)
	if n.To.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			emailID, emailErr = d.deliverEmail(ctx, n)
		}()
	}
	if n.To.Phone != "" && n.SMS != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			smsID, smsErr = d.deliverSMS(ctx, n)
		}()
	}
	wg.Wait()

	result.Email = emailID
	result.SMS = smsID
	if emailErr != nil {
		result.Errors = append(result.Errors, ChannelEmail+": "+emailErr.Error())
	}
	if smsErr != nil {
		result.Errors = append(result.Errors, ChannelSMS+": "+smsErr.Error())
	}
	return result
}

func (d *Dispatcher) SendEmail(ctx context.Context, n interfaces.Notification) (string, error) {
	if n.To.Email == "" {
		return "", ErrNoEmailRecipient
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.deliverEmail(ctx, n)
}

func (d *Dispatcher) deliverEmail(ctx context.Context, n interfaces.Notification) (string, error) {
	html, err := d.templates.Render(n.Template, n.Data)
	if err != nil {
		d.logger.Error("[notification][dispatcher] render failed", zap.String("template", n.Template), zap.Error(err))
		d.metrics.NotificationAttempt(ChannelEmail, "failed")
		return "", err
	}

	if d.email == nil {
		d.logger.Info("[notification][mock] email queued",
			zap.String("to", n.To.Email),
			zap.String("subject", n.Subject),
		)
		d.metrics.NotificationAttempt(ChannelEmail, "mock")
		return MockSuccess, nil
	}

	id, err := d.email.SendEmail(ctx, n.To.Email, n.Subject, html)
	if err != nil {
		d.logger.Error("[notification][dispatcher] email failed", zap.String("to", n.To.Email), zap.Error(err))
		d.metrics.NotificationAttempt(ChannelEmail, "failed")
		return "", err
	}
	d.logger.Info("[notification][dispatcher] email sent", zap.String("to", n.To.Email), zap.String("id", id))
	d.metrics.NotificationAttempt(ChannelEmail, "sent")
	return id, nil
}

func (d *Dispatcher) deliverSMS(ctx context.Context, n interfaces.Notification) (string, error) {
	if d.sms == nil {
		d.logger.Info("[notification][mock] sms queued",
			zap.String("to", n.To.Phone),
			zap.String("body", n.SMS),
		)
		d.metrics.NotificationAttempt(ChannelSMS, "mock")
		return MockSuccess, nil
	}

	id, err := d.sms.SendSMS(ctx, n.To.Phone, n.SMS)
	if err != nil {
		d.logger.Error("[notification][dispatcher] sms failed", zap.String("to", n.To.Phone), zap.Error(err))
		d.metrics.NotificationAttempt(ChannelSMS, "failed")
		return "", err
	}
	d.logger.Info("[notification][dispatcher] sms sent", zap.String("to", n.To.Phone), zap.String("id", id))
	d.metrics.NotificationAttempt(ChannelSMS, "sent")
	return id, nil
}

func (d *Dispatcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
