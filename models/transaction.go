package models

import (
	// Go Internal Packages
	"fmt"
	"strconv"
	"time"

	// External Packages
	"github.com/shopspring/decimal"
)

// TimestampLayout is the wire format of transactionDate, always UTC.
const TimestampLayout = "2006-01-02T15:04:05"

var (
	TransactionTypes = []string{"purchase", "refund", "transfer"}
	Currencies       = []string{"USD", "GBP", "EUR"}
	Categories       = []string{"electronics", "fashion", "grocery", "home", "beauty", "sports"}
	Merchants        = []string{"Amazon", "Walmart", "Target", "BestBuy", "Apple Store", "Nike"}

	MinAmount = decimal.NewFromInt(10)
	MaxAmount = decimal.NewFromInt(1000)
)

type Transaction struct {
	TransactionID   string    `json:"transactionId" validate:"required,uuid4"`
	UserID          string    `json:"userId" validate:"required"`
	TransactionType string    `json:"transactionType" validate:"oneof=purchase refund transfer"`
	Amount          Amount    `json:"amount"`
	Currency        string    `json:"currency" validate:"oneof=USD GBP EUR"`
	TransactionDate Timestamp `json:"transactionDate"`
	Category        string    `json:"category" validate:"oneof=electronics fashion grocery home beauty sports"`
	Merchant        string    `json:"merchant" validate:"oneof=Amazon Walmart Target BestBuy 'Apple Store' Nike"`
	Location        string    `json:"location" validate:"required"`
}

// Amount is a monetary quantity serialized as a JSON number with exactly two
// fractional digits.
type Amount struct {
	decimal.Decimal
}

// NewAmount rounds d half away from zero to cents.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(2)}
}

func (a Amount) InRange() bool {
	return a.GreaterThanOrEqual(MinAmount) && a.LessThanOrEqual(MaxAmount)
}

func (a Amount) String() string {
	return a.StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("amount %s: %w", b, err)
	}
	a.Decimal = d
	return nil
}

// Timestamp is a UTC instant with second precision.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("transactionDate %s: %w", b, err)
	}
	parsed, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("transactionDate %s: %w", b, err)
	}
	t.Time = parsed
	return nil
}
