package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

// MaxBodyBytes caps how much of a request body is read.
const MaxBodyBytes = 1 << 20

var (
	ErrEmptyBody     = errors.New("request body is empty")
	ErrMalformedBody = errors.New("request body is not valid json for this route")
)

// Decoder decodes JSON request bodies and validates the result when it knows
// how to validate itself.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	v, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
