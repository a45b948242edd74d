package fpidioms

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trade descriptions returned by the DescribeTrade functions.
const (
	BigTrade     = "That's a big trade!!"
	SmallTrade   = "That's a small trade!!"
	BingoTrade   = "Bingo"
	AverageTrade = "Just an average trade"
)

var (
	bigTradeFloor  = decimal.NewFromInt(500)
	smallTradeCeil = decimal.NewFromInt(100)
	bingoAmounts   = []decimal.Decimal{decimal.NewFromInt(200), decimal.NewFromInt(250)}
)

// TradeClass is a mutable trade with a hand-written Deconstruct.
type TradeClass struct {
	TradeID string
	Amount  decimal.Decimal
}

// Deconstruct returns the trade's fields in declaration order.
func (t *TradeClass) Deconstruct() (tradeID string, amount decimal.Decimal) {
	return t.TradeID, t.Amount
}

// TradeRecord is an immutable trade. Its fields are read through accessors
// or pulled apart with Deconstruct.
type TradeRecord struct {
	tradeID string
	amount  decimal.Decimal
}

// NewTradeRecord builds a trade.
func NewTradeRecord(tradeID string, amount decimal.Decimal) TradeRecord {
	return TradeRecord{tradeID: tradeID, amount: amount}
}

// ParseTradeRecord builds a trade from a decimal string such as "123.45".
func ParseTradeRecord(tradeID, amount string) (TradeRecord, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("trade %s: parse amount %q: %w", tradeID, amount, err)
	}
	return NewTradeRecord(tradeID, d), nil
}

// TradeID returns the trade identifier.
func (t TradeRecord) TradeID() string { return t.tradeID }

// Amount returns the trade amount.
func (t TradeRecord) Amount() decimal.Decimal { return t.amount }

// Deconstruct returns the trade's fields in declaration order.
func (t TradeRecord) Deconstruct() (tradeID string, amount decimal.Decimal) {
	return t.tradeID, t.amount
}

// Equal reports field-wise equality.
func (t TradeRecord) Equal(other TradeRecord) bool {
	return t.tradeID == other.tradeID && t.amount.Equal(other.amount)
}

// String implements fmt.Stringer.
func (t TradeRecord) String() string {
	return fmt.Sprintf("TradeRecord{TradeID: %s, Amount: %s}", t.tradeID, t.amount)
}

// DescribeTradeGuards deconstructs the trade and walks guard clauses in
// order. The first guard that holds wins.
func DescribeTradeGuards(trade TradeRecord) string {
	_, amt := trade.Deconstruct()
	switch {
	case amt.GreaterThan(bigTradeFloor):
		return BigTrade
	case amt.LessThan(smallTradeCeil):
		return SmallTrade
	case isOneOf(amt, bingoAmounts...):
		return BingoTrade
	default:
		return AverageTrade
	}
}

// DescribeTradeRelational matches on the deconstructed amount only, without
// the Bingo case.
func DescribeTradeRelational(trade TradeRecord) string {
	switch _, amt := trade.Deconstruct(); {
	case amt.Cmp(bigTradeFloor) > 0:
		return BigTrade
	case amt.Cmp(smallTradeCeil) < 0:
		return SmallTrade
	default:
		return AverageTrade
	}
}

// DescribeTradeProperty reads the Amount property directly.
func DescribeTradeProperty(trade TradeRecord) string {
	switch {
	case trade.Amount().GreaterThan(bigTradeFloor):
		return BigTrade
	case trade.Amount().LessThan(smallTradeCeil):
		return SmallTrade
	default:
		return AverageTrade
	}
}

func isOneOf(d decimal.Decimal, candidates ...decimal.Decimal) bool {
	for _, c := range candidates {
		if d.Equal(c) {
			return true
		}
	}
	return false
}
