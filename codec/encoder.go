package codec

import (
	// Go Internal Packages
	"encoding/json"

	// Local Packages
	errors "tx-publisher/errors"
	models "tx-publisher/models"
)

// Encoder turns transactions into the key/value pair written to the topic.
type Encoder struct {
	validator *Validator
}

// NewEncoder returns an encoder. When strict is set every payload is checked
// against the value schema before it is handed out.
func NewEncoder(strict bool) (*Encoder, error) {
	e := &Encoder{}
	if !strict {
		return e, nil
	}
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	e.validator = v
	return e, nil
}

// Encode returns the UTF-8 transaction id as key and the JSON document as
// value. Any error means the transaction was malformed by the caller.
func (e *Encoder) Encode(tx models.Transaction) (key, value []byte, err error) {
	if tx.TransactionID == "" {
		return nil, nil, errors.EncodingFailedErr(errors.EmptyParamErr("transactionId"))
	}

	value, err = json.Marshal(tx)
	if err != nil {
		return nil, nil, errors.EncodingFailedErr(err)
	}

	if e.validator != nil {
		if err = e.validator.Validate(value); err != nil {
			return nil, nil, errors.EncodingFailedErr(err)
		}
	}
	return []byte(tx.TransactionID), value, nil
}
