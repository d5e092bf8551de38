package catalog

import "testing"

type fakeBody struct{ id uint32 }

func (f fakeBody) MessageID() uint32 { return f.id }

func TestRegisterAndLookup(t *testing.T) {
	Register(Entry{
		ID:         999,
		EncodedLen: 4,
		ExtraCRC:   7,
		Parse:      func(payload []byte) (Body, error) { return fakeBody{999}, nil },
	})

	e, ok := Lookup(999)
	if !ok {
		t.Fatalf("Lookup(999) ok = false, want true")
	}
	if e.EncodedLen != 4 || e.ExtraCRC != 7 {
		t.Fatalf("Lookup(999) = %+v, want EncodedLen=4 ExtraCRC=7", e)
	}

	body, err := e.Parse(nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if body.MessageID() != 999 {
		t.Fatalf("Parse().MessageID() = %d, want 999", body.MessageID())
	}
}

func TestExtraCRCAndEncodedLenUnknownID(t *testing.T) {
	if _, ok := ExtraCRC(0xDEAD); ok {
		t.Fatalf("ExtraCRC(unknown) ok = true, want false")
	}
	if _, ok := EncodedLen(0xDEAD); ok {
		t.Fatalf("EncodedLen(unknown) ok = true, want false")
	}
}

func TestLookupUnknownID(t *testing.T) {
	if _, ok := Lookup(0xDEAD); ok {
		t.Fatalf("Lookup(unknown) ok = true, want false")
	}
}
