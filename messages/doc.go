// Package messages provides typed helper structs for common FIX 4.4
// messages.
//
// Each message type provides:
//   - A struct with fields corresponding to the message's declared
//     tags, named after the dictionary's field names
//   - A ToPayload method that renders the struct into the fix.Payload
//     serialize.Message expects
//   - A XxxFromPayload function that populates the struct from a
//     payload already produced by parse.Parse
//
// A wrapper holds no parsing or serialization logic of its own: it is
// a thin Get/Set facade over fix.Payload, the same generic
// representation convert and validate operate on. Building a message
// by hand with fix.Payload literals works exactly the same; these
// wrappers only save the caller from remembering field names.
//
// # Supported messages
//
// The following FIX 4.4 messages have typed wrappers:
//   - Logon (A) - logon.go
//   - Heartbeat (0) - heartbeat.go
//   - NewOrderSingle (D) - neworder.go
//   - ExecutionReport (8) - executionreport.go
//
// # Usage example
//
// Sending a NewOrderSingle:
//
//	order := &messages.NewOrderSingle{
//	    Header:   messages.Header{SenderCompID: "CLIENT1", TargetCompID: "BROKER", MsgSeqNum: "1", SendingTime: sendingTime},
//	    ClOrdID:  "ORD1",
//	    Symbol:   "IBM",
//	    Side:     "1",
//	    OrdType:  "2",
//	    OrderQty: "100",
//	    Price:    "50.25",
//	}
//	wire, err := order.Serialize(protocol)
//
// Reading one back:
//
//	result, err := parse.New().Parse(protocol, buf)
//	if err != nil {
//	    return err
//	}
//	order := messages.NewOrderSingleFromPayload(result.Payload)
//	fmt.Println(order.ClOrdID, order.Symbol)
//
// # Header fields
//
// Header carries the four session-identifying fields every message
// shares (SenderCompID, TargetCompID, MsgSeqNum, SendingTime). It is
// embedded by value in every wrapper and rendered ahead of the
// message's own fields; serialize.Message routes each name to the
// composite (header or message body) that actually declares it.
//
// # Repeating groups
//
// NewOrderSingle's NoAllocs group is represented as a slice of a small
// per-repetition struct (Alloc). Wrappers for messages without a
// group field do not need this pattern.
package messages
