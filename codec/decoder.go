package codec

import (
	// Go Internal Packages
	"bytes"
	"encoding/json"
	"sync"

	// Local Packages
	errors "tx-publisher/errors"
	models "tx-publisher/models"

	// External Packages
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Decode parses a value produced by Encode and checks every field.
func Decode(value []byte) (models.Transaction, error) {
	var tx models.Transaction

	dec := json.NewDecoder(bytes.NewReader(value))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tx); err != nil {
		return models.Transaction{}, errors.InvalidParamsErr(err)
	}

	if err := structValidator().Struct(tx); err != nil {
		return models.Transaction{}, errors.ValidationFailedErr(err)
	}

	if !tx.Amount.InRange() {
		ve := errors.ValidationErrs()
		ve.Add("amount", "must be within [10.00, 1000.00]")
		return models.Transaction{}, ve.Err()
	}
	return tx, nil
}
