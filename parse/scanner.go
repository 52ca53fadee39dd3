package parse

import (
	"bufio"
	"io"

	"github.com/go-fixproto/fixproto/fix"
)

// Scanner reads successive FIX messages from a stream, buffering only
// as many bytes as a message actually needs (plus whatever arrived in
// one underlying Read).
type Scanner interface {
	// Scan advances to the next message. Returns true if a message was
	// found.
	Scan() bool
	// Result returns the last scanned message, or nil if Scan hasn't
	// been called or returned false.
	Result() *Result
	// Err returns any error encountered, or nil if the stream simply
	// ended cleanly between messages.
	Err() error
}

type scanner struct {
	reader   *bufio.Reader
	parser   Parser
	protocol *fix.Protocol
	buf      []byte
	result   *Result
	err      error
}

// NewScanner creates a Scanner that decodes messages of protocol read
// from r.
func NewScanner(r io.Reader, protocol *fix.Protocol, opts ...ParserOption) Scanner {
	return &scanner{
		reader:   bufio.NewReader(r),
		parser:   New(opts...),
		protocol: protocol,
	}
}

func (s *scanner) Scan() bool {
	s.result = nil

	for {
		if len(s.buf) > 0 {
			result, err := s.parser.Parse(s.protocol, s.buf)
			if err == nil {
				s.buf = s.buf[result.Consumed:]
				s.result = result
				return true
			}
			if !fix.IsNeedMore(err) {
				s.err = err
				return false
			}
		}

		chunk := make([]byte, 4096)
		n, err := s.reader.Read(chunk)
		if n > 0 {
			s.buf = append(s.buf, chunk[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				if len(s.buf) == 0 {
					return false
				}
				// A partial message remains with no more bytes coming.
				s.err = &fix.WireError{Kind: fix.WireFramingError, Context: "stream ended mid-message"}
				return false
			}
			s.err = err
			return false
		}
	}
}

func (s *scanner) Result() *Result { return s.result }
func (s *scanner) Err() error      { return s.err }
