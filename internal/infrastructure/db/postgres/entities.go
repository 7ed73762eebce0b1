package postgres

import (
	"database/sql"
	"time"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

// Per-entity mappers. Column order matters: Values must line up with
// Columns, and Scan reads id first, then the columns in the same order.

func NewBidRepository(db *sql.DB) *Repository[domain.Bid] {
	return NewRepository(db, Mapper[domain.Bid]{
		Table: "bids",
		Columns: []string{
			"account", "bid_type", "bid_quantity", "ask_quantity", "bid", "ask",
			"benchmark", "commentary", "security", "status", "trader", "book",
			"creation_name", "revision_name", "deal_name", "deal_type",
			"source_list_id", "side", "creation_date", "revision_date",
		},
		Scan: func(row RowScanner) (domain.Bid, error) {
			var b domain.Bid
			var bidQty, askQty, bid, ask sql.NullFloat64
			var revision sql.NullTime
			err := row.Scan(
				&b.ID, &b.Account, &b.BidType, &bidQty, &askQty, &bid, &ask,
				&b.Benchmark, &b.Commentary, &b.Security, &b.Status, &b.Trader, &b.Book,
				&b.CreationName, &b.RevisionName, &b.DealName, &b.DealType,
				&b.SourceListID, &b.Side, &b.CreationDate, &revision,
			)
			if err != nil {
				return domain.Bid{}, err
			}
			b.BidQuantity = floatPtr(bidQty)
			b.AskQuantity = floatPtr(askQty)
			b.Bid = floatPtr(bid)
			b.Ask = floatPtr(ask)
			b.RevisionDate = timePtr(revision)
			return b, nil
		},
		Values: func(b *domain.Bid) []any {
			return []any{
				b.Account, b.BidType, nullFloat(b.BidQuantity), nullFloat(b.AskQuantity),
				nullFloat(b.Bid), nullFloat(b.Ask), b.Benchmark, b.Commentary,
				b.Security, b.Status, b.Trader, b.Book, b.CreationName,
				b.RevisionName, b.DealName, b.DealType, b.SourceListID, b.Side,
				b.CreationDate, nullTime(b.RevisionDate),
			}
		},
		ID:    func(b *domain.Bid) int64 { return b.ID },
		SetID: func(b *domain.Bid, id int64) { b.ID = id },
	})
}

func NewCurvePointRepository(db *sql.DB) *Repository[domain.CurvePoint] {
	return NewRepository(db, Mapper[domain.CurvePoint]{
		Table:   "curve_points",
		Columns: []string{"curve_id", "as_of_date", "term", "value", "creation_date"},
		Scan: func(row RowScanner) (domain.CurvePoint, error) {
			var cp domain.CurvePoint
			err := row.Scan(&cp.ID, &cp.CurveID, &cp.AsOfDate, &cp.Term, &cp.Value, &cp.CreationDate)
			return cp, err
		},
		Values: func(cp *domain.CurvePoint) []any {
			return []any{cp.CurveID, cp.AsOfDate, cp.Term, cp.Value, cp.CreationDate}
		},
		ID:    func(cp *domain.CurvePoint) int64 { return cp.ID },
		SetID: func(cp *domain.CurvePoint, id int64) { cp.ID = id },
	})
}

func NewRatingRepository(db *sql.DB) *Repository[domain.Rating] {
	return NewRepository(db, Mapper[domain.Rating]{
		Table:   "ratings",
		Columns: []string{"moodys_rating", "sandp_rating", "fitch_rating", "order_number", "creation_date"},
		Scan: func(row RowScanner) (domain.Rating, error) {
			var r domain.Rating
			var order sql.NullInt16
			err := row.Scan(&r.ID, &r.MoodysRating, &r.SandPRating, &r.FitchRating, &order, &r.CreationDate)
			if err != nil {
				return domain.Rating{}, err
			}
			r.OrderNumber = int16Ptr(order)
			return r, nil
		},
		Values: func(r *domain.Rating) []any {
			return []any{r.MoodysRating, r.SandPRating, r.FitchRating, nullInt16(r.OrderNumber), r.CreationDate}
		},
		ID:    func(r *domain.Rating) int64 { return r.ID },
		SetID: func(r *domain.Rating, id int64) { r.ID = id },
	})
}

func NewRuleNameRepository(db *sql.DB) *Repository[domain.RuleName] {
	return NewRepository(db, Mapper[domain.RuleName]{
		Table:   "rule_names",
		Columns: []string{"name", "description", "json", "template", "sql_str", "sql_part", "creation_date"},
		Scan: func(row RowScanner) (domain.RuleName, error) {
			var rn domain.RuleName
			err := row.Scan(&rn.ID, &rn.Name, &rn.Description, &rn.JSON, &rn.Template, &rn.SQLStr, &rn.SQLPart, &rn.CreationDate)
			return rn, err
		},
		Values: func(rn *domain.RuleName) []any {
			return []any{rn.Name, rn.Description, rn.JSON, rn.Template, rn.SQLStr, rn.SQLPart, rn.CreationDate}
		},
		ID:    func(rn *domain.RuleName) int64 { return rn.ID },
		SetID: func(rn *domain.RuleName, id int64) { rn.ID = id },
	})
}

func NewTradeRepository(db *sql.DB) *Repository[domain.Trade] {
	return NewRepository(db, Mapper[domain.Trade]{
		Table: "trades",
		Columns: []string{
			"account", "account_type", "buy_quantity", "sell_quantity",
			"buy_price", "sell_price", "trade_date", "security", "status",
			"trader", "benchmark", "book", "creation_name", "revision_name",
			"deal_name", "deal_type", "source_list_id", "side",
			"creation_date", "revision_date",
		},
		Scan: func(row RowScanner) (domain.Trade, error) {
			var t domain.Trade
			var buyQty, sellQty, buyPrice, sellPrice sql.NullFloat64
			var tradeDate, revision sql.NullTime
			err := row.Scan(
				&t.ID, &t.Account, &t.AccountType, &buyQty, &sellQty,
				&buyPrice, &sellPrice, &tradeDate, &t.Security, &t.Status,
				&t.Trader, &t.Benchmark, &t.Book, &t.CreationName, &t.RevisionName,
				&t.DealName, &t.DealType, &t.SourceListID, &t.Side,
				&t.CreationDate, &revision,
			)
			if err != nil {
				return domain.Trade{}, err
			}
			t.BuyQuantity = floatPtr(buyQty)
			t.SellQuantity = floatPtr(sellQty)
			t.BuyPrice = floatPtr(buyPrice)
			t.SellPrice = floatPtr(sellPrice)
			t.TradeDate = timePtr(tradeDate)
			t.RevisionDate = timePtr(revision)
			return t, nil
		},
		Values: func(t *domain.Trade) []any {
			return []any{
				t.Account, t.AccountType, nullFloat(t.BuyQuantity), nullFloat(t.SellQuantity),
				nullFloat(t.BuyPrice), nullFloat(t.SellPrice), nullTime(t.TradeDate),
				t.Security, t.Status, t.Trader, t.Benchmark, t.Book,
				t.CreationName, t.RevisionName, t.DealName, t.DealType,
				t.SourceListID, t.Side, t.CreationDate, nullTime(t.RevisionDate),
			}
		},
		ID:    func(t *domain.Trade) int64 { return t.ID },
		SetID: func(t *domain.Trade, id int64) { t.ID = id },
	})
}

// Null conversion helpers shared by the mappers.

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt16(v *int16) sql.NullInt16 {
	if v == nil {
		return sql.NullInt16{}
	}
	return sql.NullInt16{Int16: *v, Valid: true}
}

func int16Ptr(v sql.NullInt16) *int16 {
	if !v.Valid {
		return nil
	}
	n := v.Int16
	return &n
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
