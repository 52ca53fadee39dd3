package parse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-fixproto/fixproto/fix"
)

// wireFrame is the result of locating one complete message in buf:
// the raw BeginString value, the body bytes from MsgType through the
// last trailer field before CheckSum, the CheckSum digits as found on
// the wire, and the total byte count consumed.
type wireFrame struct {
	beginString string
	body        []byte
	checksum    string
	consumed    int
}

// frameMessage locates "8=<BeginString>", "9=<BodyLength>", reads
// exactly BodyLength body bytes, and requires the following 7 bytes to
// be "10=<ddd>" SOH-terminated (spec §4.7 steps 1-3). It never blocks:
// an incomplete buffer returns a WireNeedMore error with zero bytes
// consumed, so the caller can append more bytes and retry.
func frameMessage(buf []byte, maxBodyLength int) (*wireFrame, error) {
	if len(buf) < 2 {
		return nil, needMore()
	}
	if string(buf[:2]) != "8=" {
		return nil, framingError("message does not start with \"8=\"")
	}

	beginEnd := bytes.IndexByte(buf[2:], fix.SOH)
	if beginEnd < 0 {
		return nil, needMore()
	}
	beginEnd += 2
	beginString := string(buf[2:beginEnd])

	pos := beginEnd + 1
	if len(buf)-pos < 2 {
		return nil, needMore()
	}
	if string(buf[pos:pos+2]) != "9=" {
		return nil, framingError("second field is not BodyLength (\"9=\")")
	}

	lenEnd := bytes.IndexByte(buf[pos+2:], fix.SOH)
	if lenEnd < 0 {
		return nil, needMore()
	}
	lenEnd += pos + 2
	bodyLenStr := string(buf[pos+2 : lenEnd])

	bodyLen, err := strconv.Atoi(bodyLenStr)
	if err != nil || bodyLen < 0 {
		return nil, framingError(fmt.Sprintf("invalid BodyLength %q", bodyLenStr))
	}
	if maxBodyLength > 0 && bodyLen > maxBodyLength {
		return nil, framingError(fmt.Sprintf("BodyLength %d exceeds limit %d", bodyLen, maxBodyLength))
	}

	bodyStart := lenEnd + 1
	need := bodyStart + bodyLen + 7
	if len(buf) < need {
		return nil, needMore()
	}

	body := buf[bodyStart : bodyStart+bodyLen]
	trailer := buf[bodyStart+bodyLen : need]
	if string(trailer[:3]) != "10=" || trailer[6] != fix.SOH {
		return nil, framingError("trailing field is not a well-formed CheckSum (\"10=ddd\")")
	}

	return &wireFrame{
		beginString: beginString,
		body:        body,
		checksum:    string(trailer[3:6]),
		consumed:    need,
	}, nil
}

func needMore() error {
	return &fix.WireError{Kind: fix.WireNeedMore}
}

func framingError(context string) error {
	return &fix.WireError{Kind: fix.WireFramingError, Context: context}
}

// checksum computes the FIX checksum: the sum of all given bytes,
// mod 256.
func checksum(b []byte) int {
	var sum int
	for _, c := range b {
		sum += int(c)
	}
	return sum % 256
}

// rawToken is one tag=value pair split out of the wire body, before
// any schema-driven interpretation.
type rawToken struct {
	Tag   int
	Value string
}

// tokenize splits body on SOH, then each part on its first '=', into
// raw (tag, value) pairs. A DATA-typed field's raw value is permitted
// by the protocol to itself contain SOH bytes; honoring that requires
// knowing, while tokenizing, that the immediately preceding LENGTH
// field governs exactly how many raw bytes follow — a pairing this
// dictionary format doesn't declare explicitly. This tokenizer takes
// the common-case separator-based approach instead, which is exact
// for every field the bundled dictionary declares.
func tokenize(body []byte) ([]rawToken, error) {
	parts := bytes.Split(body, []byte{fix.SOH})
	toks := make([]rawToken, 0, len(parts))
	for i, part := range parts {
		if len(part) == 0 {
			if i == len(parts)-1 {
				continue
			}
			return nil, &fix.WireError{Kind: fix.WireMalformedField, Context: "empty field"}
		}
		eq := bytes.IndexByte(part, '=')
		if eq <= 0 {
			return nil, &fix.WireError{Kind: fix.WireMalformedField, Context: "missing '=' or empty tag"}
		}
		tag, err := strconv.Atoi(string(part[:eq]))
		if err != nil || tag <= 0 {
			return nil, &fix.WireError{Kind: fix.WireMalformedField, Context: fmt.Sprintf("non-numeric tag %q", part[:eq])}
		}
		toks = append(toks, rawToken{Tag: tag, Value: string(part[eq+1:])})
	}
	return toks, nil
}
