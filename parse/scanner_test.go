package parse

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/schema"
	"github.com/go-fixproto/fixproto/serialize"
	"github.com/go-fixproto/fixproto/testdata"
)

func TestScanner_SingleMessage(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	wire, err := serialize.Message(protocol, "Logon", logonPayload())
	if err != nil {
		t.Fatalf("serialize.Message: %v", err)
	}

	s := NewScanner(bytes.NewReader(wire), protocol)
	if !s.Scan() {
		t.Fatalf("expected Scan() to return true, got error: %v", s.Err())
	}
	if s.Result().Message.Name() != "Logon" {
		t.Errorf("expected Logon, got %s", s.Result().Message.Name())
	}

	if s.Scan() {
		t.Fatal("expected Scan() to return false once the stream is exhausted")
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestScanner_MultipleMessages(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	logon, err := serialize.Message(protocol, "Logon", logonPayload())
	if err != nil {
		t.Fatalf("serialize.Message: %v", err)
	}
	heartbeat, err := serialize.Message(protocol, "Heartbeat", fix.Payload{
		{Name: "SenderCompID", Value: "CLIENT1"},
		{Name: "TargetCompID", Value: "BROKER"},
		{Name: "MsgSeqNum", Value: "2"},
		{Name: "SendingTime", Value: "20090107-18:15:20"},
	})
	if err != nil {
		t.Fatalf("serialize.Message: %v", err)
	}

	var stream bytes.Buffer
	stream.Write(logon)
	stream.Write(heartbeat)

	s := NewScanner(&stream, protocol)

	if !s.Scan() {
		t.Fatalf("first Scan() failed: %v", s.Err())
	}
	if s.Result().Message.Name() != "Logon" {
		t.Errorf("expected Logon, got %s", s.Result().Message.Name())
	}

	if !s.Scan() {
		t.Fatalf("second Scan() failed: %v", s.Err())
	}
	if s.Result().Message.Name() != "Heartbeat" {
		t.Errorf("expected Heartbeat, got %s", s.Result().Message.Name())
	}

	if s.Scan() {
		t.Fatal("expected no more messages")
	}
}

func TestScanner_EmptyReader(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	s := NewScanner(bytes.NewReader(nil), protocol)

	if s.Scan() {
		t.Fatal("expected Scan() to return false for an empty reader")
	}
	if s.Result() != nil {
		t.Error("expected Result() to return nil")
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestScanner_TruncatedStream(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	wire, err := serialize.Message(protocol, "Logon", logonPayload())
	if err != nil {
		t.Fatalf("serialize.Message: %v", err)
	}

	s := NewScanner(bytes.NewReader(wire[:len(wire)-5]), protocol)
	if s.Scan() {
		t.Fatal("expected Scan() to fail on a truncated stream")
	}
	if s.Err() == nil {
		t.Fatal("expected an error describing the truncated message")
	}
}

// slowReader returns at most one byte per Read call, exercising the
// scanner's incremental buffering path.
type slowReader struct {
	data []byte
	pos  int
}

func (r *slowReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestScanner_OneByteAtATime(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	wire, err := serialize.Message(protocol, "Logon", logonPayload())
	if err != nil {
		t.Fatalf("serialize.Message: %v", err)
	}

	s := NewScanner(&slowReader{data: wire}, protocol)
	if !s.Scan() {
		t.Fatalf("Scan() failed: %v", s.Err())
	}
	if s.Result().Message.Name() != "Logon" {
		t.Errorf("expected Logon, got %s", s.Result().Message.Name())
	}
}

func BenchmarkScanner_SingleMessage(b *testing.B) {
	rawDict, ok := testdata.Dictionary("fix44")
	if !ok {
		b.Fatal("fix44 dictionary not embedded")
	}
	protocol, err := schema.Load(bytes.NewReader(rawDict))
	if err != nil {
		b.Fatalf("schema.Load: %v", err)
	}
	wire, err := serialize.Message(protocol, "Logon", logonPayload())
	if err != nil {
		b.Fatalf("serialize.Message: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewScanner(bytes.NewReader(wire), protocol)
		for s.Scan() {
			_ = s.Result()
		}
		if s.Err() != nil {
			b.Fatal(s.Err())
		}
	}
}
