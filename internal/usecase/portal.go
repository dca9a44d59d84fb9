package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PortalSettings carries the branding used in notification content.
type PortalSettings struct {
	BrandName      string
	AppURL         string
	CurrencySymbol string
}

func (s PortalSettings) withDefaults() PortalSettings {
	if s.BrandName == "" {
		s.BrandName = "PILAS Properties"
	}
	if s.AppURL == "" {
		s.AppURL = "http://localhost:8080"
	}
	if s.CurrencySymbol == "" {
		s.CurrencySymbol = "GH₵"
	}
	return s
}

func (s PortalSettings) url(path string) string {
	return s.AppURL + path
}

func (s PortalSettings) money(d decimal.Decimal) string {
	return s.CurrencySymbol + " " + d.StringFixed(2)
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func shortDate(t time.Time) string {
	return t.Format("Jan 2")
}
