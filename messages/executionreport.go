package messages

import (
	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/serialize"
)

// ExecutionReport represents the FIX ExecutionReport (8) message: the
// report of an order's current state after a fill, cancel, or other
// execution-related event.
type ExecutionReport struct {
	Header
	// OrderID is tag 37: the broker-assigned order identifier.
	OrderID string
	// ExecID is tag 17: the unique identifier of this execution report.
	ExecID string
	// ExecType is tag 150: the reason this report was generated.
	ExecType string
	// OrdStatus is tag 39: the order's current status.
	OrdStatus string
	// Symbol is tag 55.
	Symbol string
	// Side is tag 54.
	Side string
	// LeavesQty is tag 151: quantity still open.
	LeavesQty string
	// CumQty is tag 14: cumulative filled quantity.
	CumQty string
	// AvgPx is tag 6: average price of all fills so far.
	AvgPx string
}

// ToPayload renders e into the ordered payload serialize.Message expects.
func (e *ExecutionReport) ToPayload() fix.Payload {
	out := e.Header.appendTo(nil)
	out = appendString(out, "OrderID", e.OrderID)
	out = appendString(out, "ExecID", e.ExecID)
	out = appendString(out, "ExecType", e.ExecType)
	out = appendString(out, "OrdStatus", e.OrdStatus)
	out = appendString(out, "Symbol", e.Symbol)
	out = appendString(out, "Side", e.Side)
	out = appendString(out, "LeavesQty", e.LeavesQty)
	out = appendString(out, "CumQty", e.CumQty)
	out = appendString(out, "AvgPx", e.AvgPx)
	return out
}

// Serialize frames e as a complete ExecutionReport wire message against protocol.
func (e *ExecutionReport) Serialize(protocol *fix.Protocol) ([]byte, error) {
	return serialize.Message(protocol, "ExecutionReport", e.ToPayload())
}

// ExecutionReportFromPayload populates an ExecutionReport from an
// already-parsed payload.
func ExecutionReportFromPayload(payload fix.Payload) *ExecutionReport {
	e := &ExecutionReport{}
	e.Header.fromPayload(payload)
	e.OrderID = getString(payload, "OrderID")
	e.ExecID = getString(payload, "ExecID")
	e.ExecType = getString(payload, "ExecType")
	e.OrdStatus = getString(payload, "OrdStatus")
	e.Symbol = getString(payload, "Symbol")
	e.Side = getString(payload, "Side")
	e.LeavesQty = getString(payload, "LeavesQty")
	e.CumQty = getString(payload, "CumQty")
	e.AvgPx = getString(payload, "AvgPx")
	return e
}
