package game

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Slice and map fields of the room aggregate are persisted as JSON text
// columns. SQLite has no native array type and the deck/held-card lists are
// only ever read and written as a whole, so a serialized column keeps the
// schema flat without join tables.

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported column type for JSON scan")
	}
}

// CardList is a JSON-backed list of cards (deck order or a team's holdings).
type CardList []Card

func (l CardList) Value() (driver.Value, error) {
	if l == nil {
		l = CardList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *CardList) Scan(src interface{}) error { return scanJSON(src, l) }

// StringList is a JSON-backed list of strings (member ids/names).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error { return scanJSON(src, l) }

// Contains reports whether s is present in the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// LogList is the JSON-backed audit log of a room.
type LogList []LogEntry

func (l LogList) Value() (driver.Value, error) {
	if l == nil {
		l = LogList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *LogList) Scan(src interface{}) error { return scanJSON(src, l) }

// UsageMap counts LLM advice requests per team UUID.
type UsageMap map[string]int

func (m UsageMap) Value() (driver.Value, error) {
	if m == nil {
		m = UsageMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *UsageMap) Scan(src interface{}) error { return scanJSON(src, m) }
