package convert

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/schema"
	"github.com/go-fixproto/fixproto/testdata"
)

func loadProtocol(t *testing.T) *fix.Protocol {
	t.Helper()
	raw, ok := testdata.Dictionary("fix44")
	if !ok {
		t.Fatal("fix44 dictionary not embedded")
	}
	protocol, err := schema.Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("schema.Load: %v", err)
	}
	return protocol
}

func TestNewConverter(t *testing.T) {
	c := NewConverter()
	if c == nil {
		t.Fatal("NewConverter() returned nil")
	}
}

func TestConverter_MarshalErrors(t *testing.T) {
	protocol := loadProtocol(t)
	c := NewConverter()

	tests := []struct {
		name    string
		input   interface{}
		wantErr error
	}{
		{name: "nil pointer", input: (*struct{ X string `fix:"11"` })(nil), wantErr: ErrNilPointer},
		{name: "not a struct", input: "string", wantErr: ErrNotStructValue},
		{name: "int value", input: 42, wantErr: ErrNotStructValue},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Marshal(protocol, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Marshal() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToPayload_ByTagNumber(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type NewOrderSingle struct {
		ClOrdID  string  `fix:"11"`
		Symbol   string  `fix:"55"`
		Side     string  `fix:"54"`
		OrderQty float64 `fix:"38"`
		OrdType  string  `fix:"40"`
		Price    float64 `fix:"44,omitempty"`
	}

	order := NewOrderSingle{
		ClOrdID:  "ORD1",
		Symbol:   "IBM",
		Side:     "1",
		OrderQty: 100,
		OrdType:  "1",
	}

	payload, err := ToPayload(protocol, order)
	if err != nil {
		t.Fatalf("ToPayload: %v", err)
	}

	v, ok := payload.Find("ClOrdID")
	if !ok || v != "ORD1" {
		t.Errorf("ClOrdID = %v (found=%v), want ORD1", v, ok)
	}
	v, ok = payload.Find("Symbol")
	if !ok || v != "IBM" {
		t.Errorf("Symbol = %v (found=%v), want IBM", v, ok)
	}
	v, ok = payload.Find("OrderQty")
	if !ok || v != "100" {
		t.Errorf("OrderQty = %v (found=%v), want 100", v, ok)
	}
	if _, ok := payload.Find("Price"); ok {
		t.Error("expected Price to be omitted (omitempty, zero value)")
	}
}

func TestToPayload_UnknownTag(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type Bad struct {
		X string `fix:"999999"`
	}

	_, err := ToPayload(protocol, Bad{X: "x"})
	var ute *ErrUnknownTag
	if !errors.As(err, &ute) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestToPayload_IgnoredField(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type S struct {
		ClOrdID string `fix:"11"`
		Secret  string `fix:"-"`
	}

	payload, err := ToPayload(protocol, S{ClOrdID: "A", Secret: "hidden"})
	if err != nil {
		t.Fatalf("ToPayload: %v", err)
	}
	if _, ok := payload.Find("Secret"); ok {
		t.Error("expected Secret field to be ignored")
	}
}

func TestToPayload_TimeField(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type S struct {
		SendingTime time.Time `fix:"52"`
	}

	when := time.Date(2009, 1, 7, 18, 15, 16, 0, time.UTC)
	payload, err := ToPayload(protocol, S{SendingTime: when})
	if err != nil {
		t.Fatalf("ToPayload: %v", err)
	}
	v, ok := payload.Find("SendingTime")
	if !ok || v != "20090107-18:15:16" {
		t.Errorf("SendingTime = %v (found=%v), want 20090107-18:15:16", v, ok)
	}
}

func TestToPayload_Group(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type Alloc struct {
		AllocAccount string  `fix:"79"`
		AllocQty     float64 `fix:"80"`
	}
	type NewOrderSingle struct {
		ClOrdID string  `fix:"11"`
		Allocs  []Alloc `fix:"NoAllocs"`
	}

	order := NewOrderSingle{
		ClOrdID: "ORD1",
		Allocs: []Alloc{
			{AllocAccount: "ACC1", AllocQty: 60},
			{AllocAccount: "ACC2", AllocQty: 40},
		},
	}

	payload, err := ToPayload(protocol, order)
	if err != nil {
		t.Fatalf("ToPayload: %v", err)
	}
	v, ok := payload.Find("NoAllocs")
	if !ok {
		t.Fatal("expected NoAllocs in payload")
	}
	reps, ok := v.([]fix.Payload)
	if !ok {
		t.Fatalf("expected []fix.Payload, got %T", v)
	}
	if len(reps) != 2 {
		t.Fatalf("expected 2 repetitions, got %d", len(reps))
	}
	if acc, _ := reps[0].Find("AllocAccount"); acc != "ACC1" {
		t.Errorf("reps[0].AllocAccount = %v, want ACC1", acc)
	}
	if qty, _ := reps[1].Find("AllocQty"); qty != "40" {
		t.Errorf("reps[1].AllocQty = %v, want 40", qty)
	}
}

func TestRoundTrip_NewOrderSingleWithGroup(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type Alloc struct {
		AllocAccount string  `fix:"79"`
		AllocQty     float64 `fix:"80"`
	}
	type NewOrderSingle struct {
		ClOrdID      string    `fix:"11"`
		Symbol       string    `fix:"55"`
		Side         string    `fix:"54"`
		TransactTime time.Time `fix:"60"`
		OrderQty     float64   `fix:"38"`
		OrdType      string    `fix:"40"`
		Allocs       []Alloc   `fix:"NoAllocs"`
	}

	want := NewOrderSingle{
		ClOrdID:      "ORD1",
		Symbol:       "IBM",
		Side:         "1",
		TransactTime: time.Date(2009, 1, 7, 18, 15, 17, 0, time.UTC),
		OrderQty:     100,
		OrdType:      "1",
		Allocs: []Alloc{
			{AllocAccount: "ACC1", AllocQty: 60},
			{AllocAccount: "ACC2", AllocQty: 40},
		},
	}

	payload, err := ToPayload(protocol, want)
	if err != nil {
		t.Fatalf("ToPayload: %v", err)
	}

	var got NewOrderSingle
	if err := FromPayload(protocol, payload, &got); err != nil {
		t.Fatalf("FromPayload: %v", err)
	}

	if got.ClOrdID != want.ClOrdID || got.Symbol != want.Symbol || got.OrdType != want.OrdType {
		t.Errorf("got = %+v, want %+v", got, want)
	}
	if !got.TransactTime.Equal(want.TransactTime) {
		t.Errorf("TransactTime = %v, want %v", got.TransactTime, want.TransactTime)
	}
	if len(got.Allocs) != 2 || got.Allocs[0].AllocAccount != "ACC1" || got.Allocs[1].AllocQty != 40 {
		t.Errorf("Allocs round-trip mismatch: %+v", got.Allocs)
	}
}

func TestFromPayload_MissingFieldLeftZero(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)

	type S struct {
		ClOrdID string `fix:"11"`
		Symbol  string `fix:"55"`
	}

	payload := fix.Payload{{Name: "ClOrdID", Value: "ORD1"}}
	var got S
	if err := FromPayload(protocol, payload, &got); err != nil {
		t.Fatalf("FromPayload: %v", err)
	}
	if got.ClOrdID != "ORD1" {
		t.Errorf("ClOrdID = %q, want ORD1", got.ClOrdID)
	}
	if got.Symbol != "" {
		t.Errorf("Symbol = %q, want empty", got.Symbol)
	}
}

func TestFromPayload_NotPointer(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	type S struct {
		ClOrdID string `fix:"11"`
	}
	err := FromPayload(protocol, fix.Payload{}, S{})
	if !errors.Is(err, ErrNotPointer) {
		t.Fatalf("expected ErrNotPointer, got %v", err)
	}
}

func TestConverter_WithOptions(t *testing.T) {
	t.Parallel()

	protocol := loadProtocol(t)
	type S struct {
		ClOrdID string `custom:"11"`
	}

	c := NewConverter(WithTagName("custom"))
	payload, err := c.Marshal(protocol, S{ClOrdID: "X"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if v, ok := payload.Find("ClOrdID"); !ok || v != "X" {
		t.Errorf("ClOrdID = %v (found=%v), want X", v, ok)
	}
}
