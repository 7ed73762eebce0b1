package ports

import "time"

// Create inputs carry every business attribute of a new record; the service
// stamps identifiers and creation dates. Update inputs carry only the
// mutable head-fields, so everything else on the stored record is preserved.

type CreateBidInput struct {
	Account      string
	BidType      string
	BidQuantity  *float64
	AskQuantity  *float64
	Bid          *float64
	Ask          *float64
	Benchmark    string
	Commentary   string
	Security     string
	Status       string
	Trader       string
	Book         string
	CreationName string
	RevisionName string
	DealName     string
	DealType     string
	SourceListID string
	Side         string
}

type UpdateBidInput struct {
	Account     string
	BidType     string
	BidQuantity *float64
	AskQuantity *float64
	Bid         *float64
	Ask         *float64
}

type CreateCurvePointInput struct {
	CurveID  int16
	AsOfDate time.Time
	Term     float64
	Value    float64
}

type UpdateCurvePointInput struct {
	CurveID  int16
	AsOfDate time.Time
	Term     float64
	Value    float64
}

type CreateRatingInput struct {
	MoodysRating string
	SandPRating  string
	FitchRating  string
	OrderNumber  *int16
}

type UpdateRatingInput struct {
	MoodysRating string
	SandPRating  string
	FitchRating  string
	OrderNumber  *int16
}

type CreateRuleNameInput struct {
	Name        string
	Description string
	JSON        string
	Template    string
	SQLStr      string
	SQLPart     string
}

type UpdateRuleNameInput struct {
	Name        string
	Description string
	JSON        string
	Template    string
	SQLStr      string
	SQLPart     string
}

type CreateTradeInput struct {
	Account      string
	AccountType  string
	BuyQuantity  *float64
	SellQuantity *float64
	BuyPrice     *float64
	SellPrice    *float64
	TradeDate    *time.Time
	Security     string
	Status       string
	Trader       string
	Benchmark    string
	Book         string
	CreationName string
	RevisionName string
	DealName     string
	DealType     string
	SourceListID string
	Side         string
}

type UpdateTradeInput struct {
	Account      string
	AccountType  string
	BuyQuantity  *float64
	SellQuantity *float64
	BuyPrice     *float64
	SellPrice    *float64
	TradeDate    *time.Time
	Security     string
	Status       string
}
