package models

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// StringArray stores string lists as a native text[] on PostgreSQL and as JSON
// everywhere else, while tolerating legacy plain-string data.
type StringArray []string

func (StringArray) GormDataType() string { return "string_array" }

func (StringArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "text[]"
	case "mysql":
		return "longtext"
	default:
		return "text"
	}
}

func (a StringArray) GormValue(_ context.Context, db *gorm.DB) clause.Expr {
	if db.Dialector.Name() == "postgres" {
		lit, err := pq.Array(a.values()).Value()
		if err != nil {
			_ = db.AddError(err)
		}
		return clause.Expr{SQL: "?::text[]", Vars: []interface{}{lit}}
	}
	v, err := a.Value()
	if err != nil {
		_ = db.AddError(err)
	}
	return clause.Expr{SQL: "?", Vars: []interface{}{v}}
}

func (a StringArray) Value() (driver.Value, error) {
	b, err := json.Marshal(a.values())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if a == nil {
		return fmt.Errorf("models.StringArray: Scan on nil pointer")
	}
	if value == nil {
		*a = []string{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.StringArray: unsupported Scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*a = []string{}
		return nil
	}

	// PostgreSQL array literal, e.g. {go,"hello world"}
	if strings.HasPrefix(raw, "{") {
		var arr pq.StringArray
		if err := arr.Scan(raw); err != nil {
			return fmt.Errorf("models.StringArray: %w", err)
		}
		*a = StringArray(arr).values()
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		*a = StringArray(arr).values()
		return nil
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		if single == "" {
			*a = []string{}
		} else {
			*a = []string{single}
		}
		return nil
	}

	*a = []string{raw}
	return nil
}

func (a StringArray) values() []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}
