package entry

import (
	"errors"
	"strings"
	"time"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
)

var ErrEntryNotFound = errors.New("entry not found")
var ErrEmptyEntry = errors.New("entry has no hours, allowance, reason or comments")
var ErrDateRequired = errors.New("entry date is required")

// Entry is one overtime record: hours worked at each premium tier plus an optional
// pay allowance claimed on the same date.
type Entry struct {
	Id        string
	Date      time.Time
	Reason    string
	Hours133  decimal.Decimal
	Hours150  decimal.Decimal
	Hours200  decimal.Decimal
	Allowance rates.AllowanceCode
	Comments  string
}

// IsEmpty reports whether the entry carries nothing worth storing.
func (e Entry) IsEmpty() bool {
	hasHours := e.Hours133.IsPositive() || e.Hours150.IsPositive() || e.Hours200.IsPositive()
	hasAllowance := e.Allowance != "" && e.Allowance != rates.AllowanceNone
	hasText := strings.TrimSpace(e.Reason) != "" || strings.TrimSpace(e.Comments) != ""
	return !hasHours && !hasAllowance && !hasText
}

// TotalHours is the sum of the hours across all three tiers, negatives counted as zero.
func (e Entry) TotalHours() decimal.Decimal {
	return NonNegative(e.Hours133).Add(NonNegative(e.Hours150)).Add(NonNegative(e.Hours200))
}

// ParseHours reads an hours value typed by the user. Blank, malformed and negative values are zero.
func ParseHours(value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}
	hours, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return NonNegative(hours)
}

func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// normalize brings an entry into the shape it is stored in.
func normalize(e Entry) Entry {
	e.Date = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
	e.Hours133 = NonNegative(e.Hours133)
	e.Hours150 = NonNegative(e.Hours150)
	e.Hours200 = NonNegative(e.Hours200)
	e.Allowance = rates.NormalizeAllowance(string(e.Allowance))
	e.Reason = strings.TrimSpace(e.Reason)
	return e
}
