package types

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts форматы, в которых драйверы возвращают метки времени строкой
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp nullable метка времени, которую можно сканировать и из time.Time, и из строки
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Ptr возвращает указатель на время или nil для NULL
func (t Timestamp) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	tm := t.Time
	return &tm
}

// Scan реализует sql.Scanner
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case time.Time:
		*t = Timestamp{Time: v, Valid: true}
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("types: unsupported timestamp scan type %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	// time.Time.String() дописывает показания монотонных часов
	if idx := strings.Index(s, " m="); idx > 0 {
		s = s[:idx]
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp{Time: parsed, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("types: cannot parse timestamp %q", s)
}
