package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("invalid date format")

// Date календарная дата без времени в формате YYYY-MM-DD
type Date string

// NewDate создает Date из time.Time
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate парсит строку YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t), nil
}

// Time возвращает полночь UTC указанной даты
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays возвращает дату, сдвинутую на n дней
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

// Before возвращает true, если d строго раньше other
func (d Date) Before(other Date) bool {
	return d < other
}

// After возвращает true, если d строго позже other
func (d Date) After(other Date) bool {
	return d > other
}

// IsZero возвращает true для пустого значения
func (d Date) IsZero() bool {
	return d == ""
}

// Validate проверяет формат YYYY-MM-DD
func (d Date) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return nil
}

func (d Date) String() string {
	return string(d)
}

// Scan реализует sql.Scanner.
// lib/pq отдает DATE как time.Time, SQLite хранит дату строкой.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.parseInto(v)
	case []byte:
		return d.parseInto(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) parseInto(s string) error {
	// Postgres в текстовом протоколе может вернуть "2025-10-15T00:00:00Z"
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
