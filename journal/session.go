package journal

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Presenter is the presentation layer. It receives computed state and user
// notifications and never feeds values back into the computation.
//
// RequestConfirmation only asks the question; the answer arrives later
// through Session.Confirm or Session.Dismiss.
type Presenter interface {
	Notify(message string, severity Severity)
	RequestConfirmation(title, body string)

	RenderTrades(trades []Trade)
	RenderCashFlows(flows []CashFlow)
	RenderDashboard(totalBalance, totalPnL decimal.Decimal, winRate float64, tradeCount int)
	RenderEquityCurve(points []CurvePoint)

	RenderTradeDetail(trades []Trade)
	RenderBacktest(r BacktestReport)
	DeliverExport(filename string, doc []byte) error
}

// Session turns user commands into store operations. Each exported method
// is a command boundary: failures are reported through the Presenter and
// also returned so callers can set an exit status.
type Session struct {
	store   *Store
	ui      Presenter
	confirm Confirmation
	log     zerolog.Logger
	now     func() time.Time
}

type SessionOption func(*Session)

func WithSessionLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func NewSession(store *Store, ui Presenter, opts ...SessionOption) *Session {
	s := &Session{
		store: store,
		ui:    ui,
		log:   zerolog.Nop(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Session) Store() *Store { return s.store }

// Refresh re-renders every projection of the current state.
func (s *Session) Refresh() {
	sum := s.store.Summary()
	s.ui.RenderTrades(s.store.Trades())
	s.ui.RenderCashFlows(s.store.CashFlows())
	s.ui.RenderDashboard(sum.TotalBalance, sum.TotalPnL, sum.WinRate, sum.TradeCount)
	s.ui.RenderEquityCurve(s.store.EquityCurve())
}

func (s *Session) fail(op string, err error) error {
	s.log.Debug().Err(err).Str("op", op).Msg("command failed")
	s.ui.Notify(userMessage(err), SeverityError)
	return err
}

func (s *Session) AddTrade(in TradeInput) (Trade, error) {
	t, err := s.store.AddTrade(in)
	if err != nil {
		return Trade{}, s.fail("add trade", err)
	}
	s.Refresh()
	s.ui.Notify("Trade added.", SeveritySuccess)
	return t, nil
}

func (s *Session) AddCashFlow(in CashFlowInput) (CashFlow, error) {
	c, err := s.store.AddCashFlow(in)
	if err != nil {
		return CashFlow{}, s.fail("add cash flow", err)
	}
	s.Refresh()
	s.ui.Notify("Entry added.", SeveritySuccess)
	return c, nil
}

// DeleteTrade stages removal of a trade pending confirmation.
func (s *Session) DeleteTrade(tradeID int64) {
	s.stage("Delete Trade", "Are you sure you want to delete this item?", func() error {
		return s.applied("delete trade", "Item deleted.", s.store.DeleteTrade(tradeID))
	})
}

// DeleteCashFlow stages removal of a cash flow entry pending confirmation.
func (s *Session) DeleteCashFlow(entryID int64) {
	s.stage("Delete Entry", "Are you sure you want to delete this item?", func() error {
		return s.applied("delete cash flow", "Item deleted.", s.store.DeleteCashFlow(entryID))
	})
}

// DeleteAll stages wiping every record pending confirmation.
func (s *Session) DeleteAll() {
	s.stage("Delete All Data", "Are you sure you want to permanently delete all data?", func() error {
		return s.applied("delete all", "All data deleted.", s.store.DeleteAll())
	})
}

// ViewTrade shows the detail of one trade.
func (s *Session) ViewTrade(tradeID int64) (Trade, error) {
	trades, err := s.ViewTrades(tradeID)
	if err != nil {
		return Trade{}, err
	}
	return trades[0], nil
}

// ViewTrades shows the details of several trades in the order given. Any
// unknown id fails the whole view and nothing is rendered.
func (s *Session) ViewTrades(tradeIDs ...int64) ([]Trade, error) {
	if len(tradeIDs) == 0 {
		return nil, s.fail("view trade", fmt.Errorf("%w: no trade id given", ErrValidation))
	}
	out := make([]Trade, 0, len(tradeIDs))
	for _, tradeID := range tradeIDs {
		t, err := s.store.Trade(tradeID)
		if err != nil {
			return nil, s.fail("view trade", err)
		}
		out = append(out, t)
	}
	s.ui.RenderTradeDetail(out)
	return out, nil
}

// Backtest runs the keyword filter and renders its report.
func (s *Session) Backtest(keyword string) (BacktestReport, error) {
	r, err := s.store.Backtest(keyword)
	if err != nil {
		return BacktestReport{}, s.fail("backtest", err)
	}
	s.ui.RenderBacktest(r)
	return r, nil
}

// Export hands the last committed state to the presenter as a dated JSON file.
func (s *Session) Export() error {
	data, err := EncodeDocument(s.store.Committed())
	if err != nil {
		return s.fail("export", err)
	}
	if err := s.ui.DeliverExport(ExportFilename(s.now()), data); err != nil {
		return s.fail("export", err)
	}
	s.ui.Notify("Data exported.", SeveritySuccess)
	return nil
}

// ExportCSV writes the last committed state into dir as two dated CSV
// files and returns their paths.
func (s *Session) ExportCSV(dir string) (tradesPath, flowsPath string, err error) {
	tradesPath, flowsPath, err = ExportCSV(dir, s.store.Committed(), s.now())
	if err != nil {
		return "", "", s.fail("export csv", err)
	}
	s.ui.Notify("CSV exported.", SeveritySuccess)
	return tradesPath, flowsPath, nil
}

// Import reads r to the end, validates the document and stages the
// overwrite pending confirmation. Nothing changes until Confirm.
func (s *Session) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return s.fail("import", fmt.Errorf("%w: read file: %v", ErrParse, err))
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return s.fail("import", err)
	}
	s.stage("Import Data", "This will overwrite all current data. Continue?", func() error {
		return s.applied("import", "Data imported.", s.store.Replace(doc.Trades, doc.CashFlows))
	})
	return nil
}

// Confirm runs the pending action.
func (s *Session) Confirm() error {
	return s.confirm.Resolve(true)
}

// Dismiss discards the pending action.
func (s *Session) Dismiss() {
	_ = s.confirm.Resolve(false)
}

// Pending returns the action awaiting confirmation, if any.
func (s *Session) Pending() (PendingAction, bool) {
	return s.confirm.Pending()
}

func (s *Session) stage(title, body string, run func() error) {
	if s.confirm.Stage(title, body, run) {
		s.log.Debug().Str("title", title).Msg("pending confirmation replaced")
	}
	s.ui.RequestConfirmation(title, body)
}

func (s *Session) applied(op, success string, err error) error {
	if err != nil {
		return s.fail(op, err)
	}
	s.Refresh()
	s.ui.Notify(success, SeveritySuccess)
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return "Failed to read file. Make sure it is a valid JSON file."
	case errors.Is(err, ErrFormat):
		return "Invalid file format."
	default:
		return err.Error()
	}
}
