package domain

import "time"

// Trade is an executed buy/sell record against an account.
type Trade struct {
	ID           int64      `json:"id"`
	Account      string     `json:"account"`
	AccountType  string     `json:"account_type"`
	BuyQuantity  *float64   `json:"buy_quantity"`
	SellQuantity *float64   `json:"sell_quantity"`
	BuyPrice     *float64   `json:"buy_price"`
	SellPrice    *float64   `json:"sell_price"`
	TradeDate    *time.Time `json:"trade_date"`
	Security     string     `json:"security"`
	Status       string     `json:"status"`
	Trader       string     `json:"trader"`
	Benchmark    string     `json:"benchmark"`
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
