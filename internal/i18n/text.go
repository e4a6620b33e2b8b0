package i18n

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Text is a bilingual string. Both languages are explicit struct fields so a
// missing translation is a zero value, not an absent map key.
type Text struct {
	EN string `json:"en"`
	EL string `json:"el"`
}

// In returns the text for the given language code, falling back to English.
func (t Text) In(lang string) string {
	if lang == "el" {
		return t.EL
	}
	return t.EN
}

func (t Text) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Text) Scan(src interface{}) error {
	return scanJSON(src, t)
}

// List is a bilingual string list (equipment, trainer names).
type List struct {
	EN []string `json:"en"`
	EL []string `json:"el"`
}

func (l List) In(lang string) []string {
	if lang == "el" {
		return l.EL
	}
	return l.EN
}

func (l List) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *List) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", src)
	}
}
