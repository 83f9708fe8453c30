package codec

import (
	// Go Internal Packages
	"encoding/json"
	"testing"
	"time"

	// Local Packages
	errors "tx-publisher/errors"
	models "tx-publisher/models"
	generator "tx-publisher/services/generator"

	// External Packages
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction() models.Transaction {
	return models.Transaction{
		TransactionID:   "5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f",
		UserID:          "jdoe",
		TransactionType: "refund",
		Amount:          models.NewAmount(decimal.RequireFromString("42.5")),
		Currency:        "GBP",
		TransactionDate: models.NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)),
		Category:        "home",
		Merchant:        "Apple Store",
		Location:        "Leeds, United Kingdom",
	}
}

func TestEncodeWireShape(t *testing.T) {
	enc, err := NewEncoder(false)
	require.NoError(t, err)

	key, value, err := enc.Encode(sampleTransaction())
	require.NoError(t, err)

	assert.Equal(t, []byte("5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f"), key)
	assert.JSONEq(t, `{
		"transactionId": "5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f",
		"userId": "jdoe",
		"transactionType": "refund",
		"amount": 42.50,
		"currency": "GBP",
		"transactionDate": "2025-01-02T03:04:05",
		"category": "home",
		"merchant": "Apple Store",
		"location": "Leeds, United Kingdom"
	}`, string(value))
	assert.Contains(t, string(value), `"amount":42.50,`)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(value, &fields))
	assert.Len(t, fields, 9)
}

func TestEncodeEmptyID(t *testing.T) {
	enc, err := NewEncoder(false)
	require.NoError(t, err)

	tx := sampleTransaction()
	tx.TransactionID = ""
	_, _, err = enc.Encode(tx)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Internal, err))
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder(true)
	require.NoError(t, err)

	g := generator.New(1)
	for i := 0; i < 500; i++ {
		want := g.Generate()
		key, value, err := enc.Encode(want)
		require.NoError(t, err)

		got, err := Decode(value)
		require.NoError(t, err)

		assert.Equal(t, want.TransactionID, string(key))
		assert.Equal(t, want.TransactionID, got.TransactionID)
		assert.Equal(t, want.UserID, got.UserID)
		assert.Equal(t, want.TransactionType, got.TransactionType)
		assert.True(t, want.Amount.Equal(got.Amount.Decimal), "amount %s != %s", want.Amount, got.Amount)
		assert.Equal(t, want.Currency, got.Currency)
		assert.True(t, want.TransactionDate.Equal(got.TransactionDate.Time))
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Merchant, got.Merchant)
		assert.Equal(t, want.Location, got.Location)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"unknown field", `{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":10.00,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Nike","location":"A, B","extra":1}`},
		{"bad type", `{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"gift","amount":10.00,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Nike","location":"A, B"}`},
		{"amount too small", `{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":9.99,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Nike","location":"A, B"}`},
		{"bad date", `{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":10.00,"currency":"USD","transactionDate":"2025-01-02 03:04:05","category":"home","merchant":"Nike","location":"A, B"}`},
		{"unknown merchant", `{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":10.00,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Corner Shop","location":"A, B"}`},
		{"missing id", `{"userId":"a","transactionType":"purchase","amount":10.00,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Nike","location":"A, B"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.value))
			require.Error(t, err)
			assert.True(t, errors.Is(errors.Invalid, err))
		})
	}
}

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	enc, err := NewEncoder(false)
	require.NoError(t, err)
	_, value, err := enc.Encode(sampleTransaction())
	require.NoError(t, err)
	assert.NoError(t, v.Validate(value))

	assert.Error(t, v.Validate([]byte(`{"transactionId":"x"}`)))
	assert.Error(t, v.Validate([]byte(`not json`)))
	assert.NoError(t, v.Validate([]byte(`{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":19.99,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Apple Store","location":"A, B"}`)),
		"cent amounts are exact multiples of 0.01")
	assert.Error(t, v.Validate([]byte(`{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":10.001,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Nike","location":"A, B"}`)))
}

func TestDecodeMerchantWithSpace(t *testing.T) {
	value := `{"transactionId":"5b1c8f0e-2f7a-4d3b-9c1e-7a2b3c4d5e6f","userId":"a","transactionType":"purchase","amount":10.00,"currency":"USD","transactionDate":"2025-01-02T03:04:05","category":"home","merchant":"Apple Store","location":"A, B"}`
	tx, err := Decode([]byte(value))
	require.NoError(t, err)
	assert.Equal(t, "Apple Store", tx.Merchant)
}
