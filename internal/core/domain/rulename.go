package domain

import "time"

// RuleName describes a validation rule: its template and the SQL fragments
// the rule engine executes. The fragments are opaque strings here.
type RuleName struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	JSON         string    `json:"json"`
	Template     string    `json:"template"`
	SQLStr       string    `json:"sql_str"`
	SQLPart      string    `json:"sql_part"`
	CreationDate time.Time `json:"creation_date"`
}
