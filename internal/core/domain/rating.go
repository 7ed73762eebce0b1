package domain

import "time"

// Rating aggregates the three agency ratings for an instrument.
type Rating struct {
	ID           int64     `json:"id"`
	MoodysRating string    `json:"moodys_rating"`
	SandPRating  string    `json:"sandp_rating"`
	FitchRating  string    `json:"fitch_rating"`
	OrderNumber  *int16    `json:"order_number"`
	CreationDate time.Time `json:"creation_date"`
}
