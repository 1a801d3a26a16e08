package models

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ID is an opaque numeric entity identifier, assigned by the database.
type ID int64

// ParseID creates an ID from its decimal string form.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid id")
	}
	return ID(n), nil
}

// Int64 returns the raw numeric value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal string representation.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the ID has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

const moneyScale = 100 // two fractional digits

// Money is a fixed-point monetary amount with an implied scale of 2,
// stored as the unscaled integer value (cents).
type Money struct {
	Cents int64
}

// NewMoney creates a money value from cents.
func NewMoney(cents int64) Money {
	return Money{Cents: cents}
}

// MoneyFromUnits creates a money value from whole currency units.
func MoneyFromUnits(units int64) Money {
	return Money{Cents: units * moneyScale}
}

// Mul multiplies the amount by an integer factor.
func (m Money) Mul(factor int64) Money {
	return Money{Cents: m.Cents * factor}
}

// IsPositive checks if the amount is strictly positive.
func (m Money) IsPositive() bool {
	return m.Cents > 0
}

// String renders the amount with two fractional digits, e.g. "50.00".
func (m Money) String() string {
	sign := ""
	c := m.Cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/moneyScale, c%moneyScale)
}

// MarshalJSON renders the amount as a plain JSON number with scale 2.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number with up to two fractional
// digits, or a base64 string carrying the unscaled value as a signed
// big-endian two's-complement integer (the Connect/Debezium wire form
// for decimal columns).
func (m *Money) UnmarshalJSON(data []byte) error {
	var b64 string
	if err := json.Unmarshal(data, &b64); err == nil {
		cents, err := decodeUnscaled(b64)
		if err != nil {
			return err
		}
		m.Cents = cents
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Errorf("invalid money value: %s", string(data))
	}
	if f >= 0 {
		m.Cents = int64(f*moneyScale + 0.5)
	} else {
		m.Cents = int64(f*moneyScale - 0.5)
	}
	return nil
}

// ParseMoney parses a decimal string with up to two fractional digits.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return Money{}, errors.Errorf("invalid money value %q: more than two fractional digits", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errors.Wrapf(err, "invalid money value %q", s)
	}
	cents64, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, errors.Wrapf(err, "invalid money value %q", s)
	}

	cents := units*moneyScale + cents64
	if neg {
		cents = -cents
	}
	return Money{Cents: cents}, nil
}

// Value implements driver.Valuer: the amount travels to the database as
// its decimal string form, matching NUMERIC(10,2) columns.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		m.Cents = 0
		return nil
	case []byte:
		parsed, err := ParseMoney(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case int64:
		m.Cents = v * moneyScale
		return nil
	case float64:
		if v >= 0 {
			m.Cents = int64(v*moneyScale + 0.5)
		} else {
			m.Cents = int64(v*moneyScale - 0.5)
		}
		return nil
	default:
		return errors.Errorf("cannot scan %T into Money", src)
	}
}

// decodeUnscaled decodes a base64 big-endian two's-complement integer.
func decodeUnscaled(b64 string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid base64 decimal")
	}
	if len(raw) == 0 {
		return 0, errors.New("empty decimal bytes")
	}

	unscaled := new(big.Int).SetBytes(raw)
	// SetBytes treats the input as unsigned; fold the sign bit back in.
	if raw[0]&0x80 != 0 {
		bits := uint(len(raw)) * 8
		unscaled.Sub(unscaled, new(big.Int).Lsh(big.NewInt(1), bits))
	}
	if !unscaled.IsInt64() {
		return 0, errors.New("decimal out of range")
	}
	return unscaled.Int64(), nil
}

// Timestamps represents server-assigned creation and update times.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimestamps creates new timestamps set to now.
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update refreshes the UpdatedAt timestamp.
func (t Timestamps) Update() Timestamps {
	t.UpdatedAt = time.Now().UTC()
	return t
}
