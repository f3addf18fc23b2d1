package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Field names of the export document. Import requires both.
const (
	DocTradesField    = "trades"
	DocCashFlowsField = "transactions_dw"
)

// Document is the portable export/import shape.
type Document struct {
	Trades    []Trade    `json:"trades"`
	CashFlows []CashFlow `json:"transactions_dw"`
}

// ExportFilename names an export file after the given day (UTC).
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("jurnal-forex-data-%s.json", now.UTC().Format(DateLayout))
}

// EncodeDocument serializes doc as indented JSON. Nil collections encode
// as empty arrays.
func EncodeDocument(doc Document) ([]byte, error) {
	if doc.Trades == nil {
		doc.Trades = []Trade{}
	}
	if doc.CashFlows == nil {
		doc.CashFlows = []CashFlow{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeDocument parses and validates an import document. Data that is not
// JSON fails with ErrParse. A document without both collections as arrays,
// or with an element that does not decode as a record, fails with
// ErrFormat. Nothing is partially returned on failure.
func DecodeDocument(data []byte) (Document, error) {
	if !json.Valid(data) {
		return Document{}, fmt.Errorf("%w: file is not valid JSON", ErrParse)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Document{}, fmt.Errorf("%w: document must be an object", ErrFormat)
	}

	rawTrades, ok := top[DocTradesField]
	if !ok || !isArray(rawTrades) {
		return Document{}, fmt.Errorf("%w: %q must be an array", ErrFormat, DocTradesField)
	}
	rawFlows, ok := top[DocCashFlowsField]
	if !ok || !isArray(rawFlows) {
		return Document{}, fmt.Errorf("%w: %q must be an array", ErrFormat, DocCashFlowsField)
	}

	var doc Document
	if err := json.Unmarshal(rawTrades, &doc.Trades); err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrFormat, DocTradesField, err)
	}
	if err := json.Unmarshal(rawFlows, &doc.CashFlows); err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrFormat, DocCashFlowsField, err)
	}
	return doc, nil
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
