package domain

import "time"

// CurvePoint is a single term/value observation on a pricing curve.
type CurvePoint struct {
	ID           int64     `json:"id"`
	CurveID      int16     `json:"curve_id"`
	AsOfDate     time.Time `json:"as_of_date"`
	Term         float64   `json:"term"`
	Value        float64   `json:"value"`
	CreationDate time.Time `json:"creation_date"`
}
