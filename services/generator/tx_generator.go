package generator

import (
	// Go Internal Packages
	"time"

	// Local Packages
	models "tx-publisher/models"

	// External Packages
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxGenerator fabricates synthetic transactions. It is not safe for concurrent
// use; the delivery loop owns it exclusively.
type TxGenerator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// New returns a generator seeded with seed. A zero seed draws a random one.
func New(seed uint64) *TxGenerator {
	return &TxGenerator{faker: gofakeit.New(seed), now: time.Now}
}

// WithClock overrides the source of transactionDate.
func (g *TxGenerator) WithClock(now func() time.Time) *TxGenerator {
	g.now = now
	return g
}

func (g *TxGenerator) Generate() models.Transaction {
	f := g.faker
	amount := decimal.NewFromFloat(f.Float64Range(
		models.MinAmount.InexactFloat64(),
		models.MaxAmount.InexactFloat64(),
	))

	return models.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          f.Username(),
		TransactionType: f.RandomString(models.TransactionTypes),
		Amount:          models.NewAmount(amount),
		Currency:        f.RandomString(models.Currencies),
		TransactionDate: models.NewTimestamp(g.now()),
		Category:        f.RandomString(models.Categories),
		Merchant:        f.RandomString(models.Merchants),
		Location:        f.City() + ", " + f.Country(),
	}
}
