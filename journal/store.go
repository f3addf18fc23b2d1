package journal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yayangurayan/jurnalforex/pkg/id"
	"github.com/yayangurayan/jurnalforex/storage"
)

// TradeInput is the raw form for a new trade. Amount is the non-negative
// P/L magnitude; Outcome decides its sign.
type TradeInput struct {
	Date          string
	Symbol        string
	Type          string
	Lot           string
	Outcome       string
	Amount        string
	NotesEntry    string
	NotesMistakes string
}

// CashFlowInput is the raw form for a new deposit or withdrawal.
type CashFlowInput struct {
	Date   string
	Type   string
	Amount string
}

// Store owns the trade and cash flow collections. Every mutation rewrites
// the affected collection to the KV before returning, so the stored copy
// matches memory between calls.
//
// Store is not safe for concurrent use; the journal has a single writer.
type Store struct {
	kv  storage.KV
	ids *id.Generator
	log zerolog.Logger

	trades    []Trade
	cashFlows []CashFlow
}

type Option func(*Store)

// WithLogger sets the store logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDs sets the id generator.
func WithIDs(g *id.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// Open loads both collections from kv. Missing or corrupt values load as
// empty collections.
func Open(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		ids: id.NewGenerator(),
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.reload()
	return s
}

func (s *Store) reload() {
	s.trades = loadOrEmpty[Trade](s, TradesKey)
	s.cashFlows = loadOrEmpty[CashFlow](s, CashFlowsKey)

	var maxID int64
	for _, t := range s.trades {
		maxID = max(maxID, t.ID)
	}
	for _, c := range s.cashFlows {
		maxID = max(maxID, c.ID)
	}
	s.ids.Seed(maxID)
}

func loadOrEmpty[T any](s *Store, key string) []T {
	seq, err := loadRecords[T](s.kv, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored collection unreadable, starting empty")
	}
	return seq
}

// Trades returns a copy of the trades in insertion order.
func (s *Store) Trades() []Trade {
	return append([]Trade{}, s.trades...)
}

// CashFlows returns a copy of the cash flow entries in insertion order.
func (s *Store) CashFlows() []CashFlow {
	return append([]CashFlow{}, s.cashFlows...)
}

// Trade returns the trade with the given id.
func (s *Store) Trade(tradeID int64) (Trade, error) {
	for _, t := range s.trades {
		if t.ID == tradeID {
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("%w: %d", ErrTradeNotFound, tradeID)
}

// AddTrade validates in, appends the trade and persists the collection.
func (s *Store) AddTrade(in TradeInput) (Trade, error) {
	magnitude, err := parseNumber(in.Amount)
	if err != nil || magnitude < 0 {
		return Trade{}, fmt.Errorf("%w: P/L amount must be a valid non-negative number, got %q", ErrValidation, in.Amount)
	}
	outcome, err := ParseOutcome(in.Outcome)
	if err != nil {
		return Trade{}, err
	}
	side, err := ParseSide(in.Type)
	if err != nil {
		return Trade{}, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return Trade{}, err
	}
	lot, err := parseNumber(in.Lot)
	if err != nil || lot <= 0 {
		return Trade{}, fmt.Errorf("%w: lot must be a positive number, got %q", ErrValidation, in.Lot)
	}
	if strings.TrimSpace(in.Symbol) == "" {
		return Trade{}, fmt.Errorf("%w: symbol is required", ErrValidation)
	}

	pnl := magnitude
	if outcome == Loss {
		pnl = -magnitude
	}

	t := Trade{
		ID:            s.ids.Next(),
		Date:          date,
		Symbol:        in.Symbol,
		Type:          side,
		Lot:           lot,
		PnL:           pnl,
		NotesEntry:    in.NotesEntry,
		NotesMistakes: in.NotesMistakes,
	}

	s.trades = append(s.trades, t)
	if err := s.persistTrades(); err != nil {
		return t, err
	}
	return t, nil
}

// AddCashFlow appends a deposit or withdrawal and persists the collection.
// The amount's sign is not checked.
func (s *Store) AddCashFlow(in CashFlowInput) (CashFlow, error) {
	amount, err := parseNumber(in.Amount)
	if err != nil {
		return CashFlow{}, fmt.Errorf("%w: amount must be a number, got %q", ErrValidation, in.Amount)
	}
	kind, err := ParseFlowType(in.Type)
	if err != nil {
		return CashFlow{}, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return CashFlow{}, err
	}

	c := CashFlow{
		ID:     s.ids.Next(),
		Date:   date,
		Type:   kind,
		Amount: amount,
	}

	s.cashFlows = append(s.cashFlows, c)
	if err := s.persistCashFlows(); err != nil {
		return c, err
	}
	return c, nil
}

// DeleteTrade removes the trade with the given id. An unknown id is not an
// error; the collection is persisted either way.
func (s *Store) DeleteTrade(tradeID int64) error {
	kept := make([]Trade, 0, len(s.trades))
	for _, t := range s.trades {
		if t.ID != tradeID {
			kept = append(kept, t)
		}
	}
	s.trades = kept
	return s.persistTrades()
}

// DeleteCashFlow removes the cash flow entry with the given id. An unknown
// id is not an error.
func (s *Store) DeleteCashFlow(entryID int64) error {
	kept := make([]CashFlow, 0, len(s.cashFlows))
	for _, c := range s.cashFlows {
		if c.ID != entryID {
			kept = append(kept, c)
		}
	}
	s.cashFlows = kept
	return s.persistCashFlows()
}

// DeleteAll empties both collections and clears the whole storage namespace.
func (s *Store) DeleteAll() error {
	s.trades = []Trade{}
	s.cashFlows = []CashFlow{}
	if err := s.kv.Clear(); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	s.log.Debug().Msg("storage cleared")
	return nil
}

// Replace swaps in both collections wholesale, as an import does.
func (s *Store) Replace(trades []Trade, flows []CashFlow) error {
	s.trades = append([]Trade{}, trades...)
	s.cashFlows = append([]CashFlow{}, flows...)

	if err := s.persistTrades(); err != nil {
		return err
	}
	if err := s.persistCashFlows(); err != nil {
		return err
	}
	for _, t := range s.trades {
		s.ids.Seed(t.ID)
	}
	for _, c := range s.cashFlows {
		s.ids.Seed(c.ID)
	}
	return nil
}

// Committed re-reads both collections from storage, bypassing memory.
func (s *Store) Committed() Document {
	return Document{
		Trades:    loadOrEmpty[Trade](s, TradesKey),
		CashFlows: loadOrEmpty[CashFlow](s, CashFlowsKey),
	}
}

// Summary computes the dashboard figures from the current collections.
func (s *Store) Summary() Summary {
	return Summarize(s.trades, s.cashFlows)
}

// EquityCurve computes the running balance series from the current collections.
func (s *Store) EquityCurve() []CurvePoint {
	return EquityCurve(s.trades, s.cashFlows)
}

// Backtest filters the current trades by keyword. It never mutates.
func (s *Store) Backtest(keyword string) (BacktestReport, error) {
	return FilterByKeyword(s.trades, keyword)
}

func (s *Store) persistTrades() error {
	if err := saveRecords(s.kv, TradesKey, s.trades); err != nil {
		return err
	}
	s.log.Debug().Str("key", TradesKey).Int("count", len(s.trades)).Msg("persisted")
	return nil
}

func (s *Store) persistCashFlows() error {
	if err := saveRecords(s.kv, CashFlowsKey, s.cashFlows); err != nil {
		return err
	}
	s.log.Debug().Str("key", CashFlowsKey).Int("count", len(s.cashFlows)).Msg("persisted")
	return nil
}

// parseNumber parses a finite decimal. NaN and infinities cannot be stored
// as JSON and are rejected.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, s)
	}
	return s, nil
}
