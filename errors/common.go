package errors

import "fmt"

func InvalidParamsErr(err error) error {
	return E(Invalid, "invalid params", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EncodingFailedErr(err error) error {
	return E(Internal, "encoding failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return ve.Err()
}

// ConnectErr returns a formatted error for a dependency that could not be reached
func ConnectErr(name string, err error) error {
	return E(Unavailable, fmt.Sprintf("cannot connect to %s", name), err)
}
