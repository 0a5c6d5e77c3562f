package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/news-board-api/internal/apperr"
)

// MaxID is the largest identifier the integer primary keys can hold
const MaxID = math.MaxInt32

// ParseID classifies a path parameter expected to be an integer identifier.
// Anything that is not a base-10 integer is a bad request; an integer outside
// [0, MaxID] is out of range, which is reported differently from not found.
func ParseID(raw string) (int, error) {
	n, err := parseInteger(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > MaxID {
		return 0, apperr.ErrOutOfRange
	}
	return int(n), nil
}

// ParseVoteDelta decodes the raw inc_votes value of a vote PATCH body.
// A missing or null value is a malformed body; a value that is present but is
// not an integer is a bad request. Zero and negative deltas are valid.
func ParseVoteDelta(raw json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, apperr.ErrMalformedBody
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return 0, apperr.ErrBadRequest
	}
	num, ok := value.(json.Number)
	if !ok {
		return 0, apperr.ErrBadRequest
	}

	n, err := parseInteger(num.String())
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, apperr.ErrOutOfRange
	}
	return int(n), nil
}

// BindError translates a gin binding failure into a domain error: missing
// required fields (or no body at all) are a malformed body, anything the JSON
// decoder rejects is a bad request.
func BindError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) || errors.Is(err, io.EOF) {
		return apperr.ErrMalformedBody
	}
	return apperr.ErrBadRequest
}

func parseInteger(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperr.ErrOutOfRange
		}
		return 0, apperr.ErrBadRequest
	}
	return n, nil
}
