// Package parse frames a byte buffer as a FIX tag-value wire message,
// verifies its protocol id and checksum, tokenizes its body into
// tag/value pairs, and reconstructs a typed payload by recursive
// descent driven by the Message declaration it names.
//
// # Basic usage
//
//	p := parse.New()
//	result, err := p.Parse(protocol, buf)
//	if fix.IsNeedMore(err) {
//	    // read more bytes and retry
//	}
//	if err != nil {
//	    log.Fatal("parse error:", err)
//	}
//	fmt.Println(result.Message.Name(), result.Payload)
//
// Parse never mutates buf and never blocks on I/O; a caller reading
// from a stream re-invokes it as more bytes arrive, exactly the
// amount reported by Result.Consumed each time a message completes.
// [NewScanner] wraps this loop around an io.Reader directly.
//
// # Parser options
//
// DoS protection limits mirror the ones a schema-driven parser needs
// most: an unbounded BodyLength or group repetition count let a
// malicious sender force unbounded allocation before framing even
// completes.
//
//	p := parse.New(
//	    parse.WithMaxBodyLength(1 << 20),
//	    parse.WithMaxGroupRepetitions(10000),
//	)
//
// # Error classification
//
// Parse returns one of [fix.WireError]'s variants for anything wrong
// with the framing, checksum, or tokenizing of the wire bytes
// themselves, and one of [fix.PayloadError]'s variants (MissingRequired,
// Duplicate) when the reconstructed payload itself is invalid against
// the Message's declaration — the same taxonomy serialize produces,
// since both directions validate the same shape.
package parse
