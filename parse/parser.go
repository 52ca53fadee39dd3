package parse

import (
	"context"
	"fmt"

	"github.com/go-fixproto/fixproto/fix"
)

// Result is one fully parsed message: the Message declaration it was
// recognized as, the payload reconstructed from the wire, and the
// number of buf bytes it consumed.
type Result struct {
	Message  fix.Message
	Payload  fix.Payload
	Consumed int
}

// Parser frames and decodes FIX wire messages against a caller-supplied
// Protocol.
type Parser interface {
	// Parse locates, verifies, and decodes one message at the start of
	// buf. A buffer that doesn't yet hold a complete message returns an
	// error satisfying fix.IsNeedMore, with Result nil; buf is never
	// consumed in that case, so the caller appends more bytes and
	// retries the same call.
	Parse(protocol *fix.Protocol, buf []byte) (*Result, error)

	// ParseContext is Parse with cancellation support, checked once up
	// front and once more between the header/body/trailer walk phases.
	ParseContext(ctx context.Context, protocol *fix.Protocol, buf []byte) (*Result, error)
}

type parser struct {
	config parserConfig
}

// New creates a Parser with the given options.
func New(opts ...ParserOption) Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &parser{config: cfg}
}

func (p *parser) Parse(protocol *fix.Protocol, buf []byte) (*Result, error) {
	return p.ParseContext(context.Background(), protocol, buf)
}

func (p *parser) ParseContext(ctx context.Context, protocol *fix.Protocol, buf []byte) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	frame, err := frameMessage(buf, p.config.maxBodyLength)
	if err != nil {
		return nil, err
	}

	if frame.beginString != protocol.ProtocolID() {
		return nil, &fix.WireError{Kind: fix.WireWrongProtocol, Expected: protocol.ProtocolID(), Got: frame.beginString}
	}

	sum := checksum(buf[:frame.consumed-7])
	computed := fmt.Sprintf("%03d", sum)
	if computed != frame.checksum {
		return nil, &fix.WireError{Kind: fix.WireChecksumMismatch, Expected: computed, Got: frame.checksum}
	}

	toks, err := tokenize(frame.body)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 || toks[0].Tag != 35 {
		return nil, &fix.WireError{Kind: fix.WireFramingError, Context: "MsgType (35) must be the first field in the body"}
	}
	msg, ok := protocol.MessageByType(toks[0].Value)
	if !ok {
		return nil, &fix.WireError{Kind: fix.WireUnknownMessageType, Context: toks[0].Value}
	}

	cur := &cursor{toks: toks[1:]}

	headerPayload, err := walkComposite(protocol.Header(), cur, p.config.maxGroupRepetitions)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	bodyPayload, err := walkComposite(msg.Base(), cur, p.config.maxGroupRepetitions)
	if err != nil {
		return nil, err
	}
	trailerPayload, err := walkComposite(protocol.Trailer(), cur, p.config.maxGroupRepetitions)
	if err != nil {
		return nil, err
	}

	if rem, ok := cur.peek(); ok {
		return nil, &fix.WireError{Kind: fix.WireUnknownTag, Tag: rem.Tag, Context: msg.Name()}
	}

	full := make(fix.Payload, 0, len(headerPayload)+len(bodyPayload)+len(trailerPayload))
	full = append(full, headerPayload...)
	full = append(full, bodyPayload...)
	full = append(full, trailerPayload...)

	return &Result{Message: msg, Payload: full, Consumed: frame.consumed}, nil
}
