package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// Per-entity CRUD service constructors. Each pairs the generic Crud engine
// with the entity's construct and merge functions. Merge functions overwrite
// only the fields the update payload carries; creation metadata always
// survives an update.

type BidService = Crud[domain.Bid, ports.CreateBidInput, ports.UpdateBidInput]

func NewBidService(repo ports.Repository[domain.Bid], logger zerolog.Logger) *BidService {
	return NewCrud(repo, newBid, mergeBid, "bid", logger)
}

func newBid(in ports.CreateBidInput, now time.Time) domain.Bid {
	return domain.Bid{
		Account:      in.Account,
		BidType:      in.BidType,
		BidQuantity:  in.BidQuantity,
		AskQuantity:  in.AskQuantity,
		Bid:          in.Bid,
		Ask:          in.Ask,
		Benchmark:    in.Benchmark,
		Commentary:   in.Commentary,
		Security:     in.Security,
		Status:       in.Status,
		Trader:       in.Trader,
		Book:         in.Book,
		CreationName: in.CreationName,
		RevisionName: in.RevisionName,
		DealName:     in.DealName,
		DealType:     in.DealType,
		SourceListID: in.SourceListID,
		Side:         in.Side,
		CreationDate: now,
	}
}

func mergeBid(b *domain.Bid, in ports.UpdateBidInput) {
	b.Account = in.Account
	b.BidType = in.BidType
	b.BidQuantity = in.BidQuantity
	b.AskQuantity = in.AskQuantity
	b.Bid = in.Bid
	b.Ask = in.Ask
}

type CurvePointService = Crud[domain.CurvePoint, ports.CreateCurvePointInput, ports.UpdateCurvePointInput]

func NewCurvePointService(repo ports.Repository[domain.CurvePoint], logger zerolog.Logger) *CurvePointService {
	return NewCrud(repo, newCurvePoint, mergeCurvePoint, "curve_point", logger)
}

func newCurvePoint(in ports.CreateCurvePointInput, now time.Time) domain.CurvePoint {
	return domain.CurvePoint{
		CurveID:      in.CurveID,
		AsOfDate:     in.AsOfDate,
		Term:         in.Term,
		Value:        in.Value,
		CreationDate: now,
	}
}

func mergeCurvePoint(cp *domain.CurvePoint, in ports.UpdateCurvePointInput) {
	cp.CurveID = in.CurveID
	cp.AsOfDate = in.AsOfDate
	cp.Term = in.Term
	cp.Value = in.Value
}

type RatingService = Crud[domain.Rating, ports.CreateRatingInput, ports.UpdateRatingInput]

func NewRatingService(repo ports.Repository[domain.Rating], logger zerolog.Logger) *RatingService {
	return NewCrud(repo, newRating, mergeRating, "rating", logger)
}

func newRating(in ports.CreateRatingInput, now time.Time) domain.Rating {
	return domain.Rating{
		MoodysRating: in.MoodysRating,
		SandPRating:  in.SandPRating,
		FitchRating:  in.FitchRating,
		OrderNumber:  in.OrderNumber,
		CreationDate: now,
	}
}

func mergeRating(r *domain.Rating, in ports.UpdateRatingInput) {
	r.MoodysRating = in.MoodysRating
	r.SandPRating = in.SandPRating
	r.FitchRating = in.FitchRating
	r.OrderNumber = in.OrderNumber
}

type RuleNameService = Crud[domain.RuleName, ports.CreateRuleNameInput, ports.UpdateRuleNameInput]

func NewRuleNameService(repo ports.Repository[domain.RuleName], logger zerolog.Logger) *RuleNameService {
	return NewCrud(repo, newRuleName, mergeRuleName, "rule_name", logger)
}

func newRuleName(in ports.CreateRuleNameInput, now time.Time) domain.RuleName {
	return domain.RuleName{
		Name:         in.Name,
		Description:  in.Description,
		JSON:         in.JSON,
		Template:     in.Template,
		SQLStr:       in.SQLStr,
		SQLPart:      in.SQLPart,
		CreationDate: now,
	}
}

func mergeRuleName(rn *domain.RuleName, in ports.UpdateRuleNameInput) {
	rn.Name = in.Name
	rn.Description = in.Description
	rn.JSON = in.JSON
	rn.Template = in.Template
	rn.SQLStr = in.SQLStr
	rn.SQLPart = in.SQLPart
}

type TradeService = Crud[domain.Trade, ports.CreateTradeInput, ports.UpdateTradeInput]

func NewTradeService(repo ports.Repository[domain.Trade], logger zerolog.Logger) *TradeService {
	return NewCrud(repo, newTrade, mergeTrade, "trade", logger)
}

func newTrade(in ports.CreateTradeInput, now time.Time) domain.Trade {
	return domain.Trade{
		Account:      in.Account,
		AccountType:  in.AccountType,
		BuyQuantity:  in.BuyQuantity,
		SellQuantity: in.SellQuantity,
		BuyPrice:     in.BuyPrice,
		SellPrice:    in.SellPrice,
		TradeDate:    in.TradeDate,
		Security:     in.Security,
		Status:       in.Status,
		Trader:       in.Trader,
		Benchmark:    in.Benchmark,
		Book:         in.Book,
		CreationName: in.CreationName,
		RevisionName: in.RevisionName,
		DealName:     in.DealName,
		DealType:     in.DealType,
		SourceListID: in.SourceListID,
		Side:         in.Side,
		CreationDate: now,
	}
}

func mergeTrade(t *domain.Trade, in ports.UpdateTradeInput) {
	t.Account = in.Account
	t.AccountType = in.AccountType
	t.BuyQuantity = in.BuyQuantity
	t.SellQuantity = in.SellQuantity
	t.BuyPrice = in.BuyPrice
	t.SellPrice = in.SellPrice
	t.TradeDate = in.TradeDate
	t.Security = in.Security
	t.Status = in.Status
}
