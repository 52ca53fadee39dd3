package messages

import (
	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/serialize"
)

// Alloc is one repetition of NewOrderSingle's NoAllocs group.
type Alloc struct {
	// AllocAccount is tag 79.
	AllocAccount string
	// AllocQty is tag 80.
	AllocQty string
}

// NewOrderSingle represents the FIX NewOrderSingle (D) message: a
// request to enter a new order.
type NewOrderSingle struct {
	Header
	// ClOrdID is tag 11: the unique client order identifier.
	ClOrdID string
	// HandlInst is tag 21: order handling instructions.
	HandlInst string
	// Symbol is tag 55: the instrument identifier.
	Symbol string
	// Side is tag 54: 1 = buy, 2 = sell.
	Side string
	// TransactTime is tag 60: time the order was initiated.
	TransactTime string
	// OrderQty is tag 38.
	OrderQty string
	// OrdType is tag 40: 1 = market, 2 = limit.
	OrdType string
	// Price is tag 44, required only when OrdType is limit.
	Price string
	// Allocs is the NoAllocs repeating group, empty when absent.
	Allocs []Alloc
}

// ToPayload renders n into the ordered payload serialize.Message expects.
func (n *NewOrderSingle) ToPayload() fix.Payload {
	out := n.Header.appendTo(nil)
	out = appendString(out, "ClOrdID", n.ClOrdID)
	out = appendString(out, "HandlInst", n.HandlInst)
	out = appendString(out, "Symbol", n.Symbol)
	out = appendString(out, "Side", n.Side)
	out = appendString(out, "TransactTime", n.TransactTime)
	out = appendString(out, "OrderQty", n.OrderQty)
	out = appendString(out, "OrdType", n.OrdType)
	out = appendString(out, "Price", n.Price)
	if len(n.Allocs) > 0 {
		reps := make([]fix.Payload, 0, len(n.Allocs))
		for _, a := range n.Allocs {
			reps = append(reps, fix.Payload{
				{Name: "AllocAccount", Value: a.AllocAccount},
				{Name: "AllocQty", Value: a.AllocQty},
			})
		}
		out = append(out, fix.NameValue{Name: "NoAllocs", Value: reps})
	}
	return out
}

// Serialize frames n as a complete NewOrderSingle wire message against protocol.
func (n *NewOrderSingle) Serialize(protocol *fix.Protocol) ([]byte, error) {
	return serialize.Message(protocol, "NewOrderSingle", n.ToPayload())
}

// NewOrderSingleFromPayload populates a NewOrderSingle from an
// already-parsed payload.
func NewOrderSingleFromPayload(payload fix.Payload) *NewOrderSingle {
	n := &NewOrderSingle{}
	n.Header.fromPayload(payload)
	n.ClOrdID = getString(payload, "ClOrdID")
	n.HandlInst = getString(payload, "HandlInst")
	n.Symbol = getString(payload, "Symbol")
	n.Side = getString(payload, "Side")
	n.TransactTime = getString(payload, "TransactTime")
	n.OrderQty = getString(payload, "OrderQty")
	n.OrdType = getString(payload, "OrdType")
	n.Price = getString(payload, "Price")

	if v, ok := payload.Find("NoAllocs"); ok {
		if reps, ok := v.([]fix.Payload); ok {
			for _, rep := range reps {
				n.Allocs = append(n.Allocs, Alloc{
					AllocAccount: getString(rep, "AllocAccount"),
					AllocQty:     getString(rep, "AllocQty"),
				})
			}
		}
	}

	return n
}
