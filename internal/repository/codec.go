package repository

import (
	"fmt"
	"strconv"
	"time"
)

// Persisted boolean tokens. Reads are case-sensitive.
const (
	TokenTrue  = "TRUE"
	TokenFalse = "FALSE"
)

// DateLayout is the persisted created_on format.
const DateLayout = "2006-01-02"

// EncodeBool returns the persisted token for b.
func EncodeBool(b bool) string {
	if b {
		return TokenTrue
	}
	return TokenFalse
}

// DecodeBool parses a persisted token. Anything other than TRUE or FALSE is an error.
func DecodeBool(s string) (bool, error) {
	switch s {
	case TokenTrue:
		return true, nil
	case TokenFalse:
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean token: %q", s)
	}
}

// FormatDate formats t as YYYY-MM-DD in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// EncodeID formats an item id.
func EncodeID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// DecodeID parses a positive item id.
func DecodeID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("item id must be positive: %d", id)
	}
	return id, nil
}
