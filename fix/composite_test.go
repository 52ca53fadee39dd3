package fix

import "testing"

func buildComposite(t *testing.T) *BaseComposite {
	t.Helper()
	clOrdID := NewField(11, "ClOrdID", TypeString, nil)
	symbol := NewField(55, "Symbol", TypeString, nil)
	bc, err := NewBaseComposite("Instrument", []Child{
		{Composite: clOrdID, Required: true},
		{Composite: symbol, Required: false},
	})
	if err != nil {
		t.Fatalf("NewBaseComposite: %v", err)
	}
	return bc
}

func TestBaseComposite_DuplicateChildRejected(t *testing.T) {
	t.Parallel()
	f := NewField(11, "ClOrdID", TypeString, nil)
	_, err := NewBaseComposite("Dup", []Child{
		{Composite: f, Required: true},
		{Composite: f, Required: false},
	})
	if err == nil {
		t.Fatal("expected an error for a duplicate child name")
	}
}

func TestBaseComposite_SerializeOrderAndRequired(t *testing.T) {
	t.Parallel()
	bc := buildComposite(t)

	b, err := bc.Serialize(Payload{{Name: "ClOrdID", Value: "ORD1"}})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := "11=ORD1" + string(SOH)
	if string(b) != want {
		t.Errorf("got %q, want %q", b, want)
	}
}

func TestBaseComposite_SerializeMissingRequired(t *testing.T) {
	t.Parallel()
	bc := buildComposite(t)
	if _, err := bc.Serialize(Payload{{Name: "Symbol", Value: "IBM"}}); err == nil {
		t.Fatal("expected an error for a missing required child")
	}
}

func TestBaseComposite_SerializeUnknownChild(t *testing.T) {
	t.Parallel()
	bc := buildComposite(t)
	_, err := bc.Serialize(Payload{
		{Name: "ClOrdID", Value: "ORD1"},
		{Name: "NoSuchField", Value: "x"},
	})
	if err == nil {
		t.Fatal("expected an error for an undeclared child")
	}
	pe, ok := err.(*PayloadError)
	if !ok || pe.Kind != PayloadUnknownChild {
		t.Errorf("got %#v, want a PayloadUnknownChild PayloadError", err)
	}
}

func TestBaseComposite_SerializeDuplicateChild(t *testing.T) {
	t.Parallel()
	bc := buildComposite(t)
	_, err := bc.Serialize(Payload{
		{Name: "ClOrdID", Value: "ORD1"},
		{Name: "ClOrdID", Value: "ORD2"},
	})
	if err == nil {
		t.Fatal("expected an error for a duplicate child in the payload")
	}
	pe, ok := err.(*PayloadError)
	if !ok || pe.Kind != PayloadDuplicate {
		t.Errorf("got %#v, want a PayloadDuplicate PayloadError", err)
	}
}

func TestBaseComposite_TagsIncludesComponentChildrenTransparently(t *testing.T) {
	t.Parallel()
	inner, err := NewBaseComposite("Inner", []Child{
		{Composite: NewField(1, "Account", TypeString, nil), Required: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	comp := NewComponent(inner)

	outer, err := NewBaseComposite("Outer", []Child{
		{Composite: comp, Required: true},
		{Composite: NewField(55, "Symbol", TypeString, nil), Required: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	tags := outer.Tags()
	if !tags[1] || !tags[55] {
		t.Errorf("Tags() = %v, want 1 and 55 present", tags)
	}
}
