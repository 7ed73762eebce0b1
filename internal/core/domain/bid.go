package domain

import "time"

// Bid is a bid/ask quote entry in the reference book. Nullable numerics and
// dates are pointers so absent values survive the round trip to the store.
type Bid struct {
	ID           int64      `json:"id"`
	Account      string     `json:"account"`
	BidType      string     `json:"bid_type"`
	BidQuantity  *float64   `json:"bid_quantity"`
	AskQuantity  *float64   `json:"ask_quantity"`
	Bid          *float64   `json:"bid"`
	Ask          *float64   `json:"ask"`
	Benchmark    string     `json:"benchmark"`
	Commentary   string     `json:"commentary"`
	Security     string     `json:"security"`
	Status       string     `json:"status"`
	Trader       string     `json:"trader"`
	Book         string     `json:"book"`
	CreationName string     `json:"creation_name"`
	RevisionName string     `json:"revision_name"`
	DealName     string     `json:"deal_name"`
	DealType     string     `json:"deal_type"`
	SourceListID string     `json:"source_list_id"`
	Side         string     `json:"side"`
	CreationDate time.Time  `json:"creation_date"`
	RevisionDate *time.Time `json:"revision_date"`
}
