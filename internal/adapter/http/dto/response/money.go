package response

import (
	"rental_portal/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// Money renders amounts with two decimals so clients never see "1200" next
// to "1200.50".
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Date renders a calendar date without its time part.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entities.DateLayout)
}
