package models

import (
	"reflect"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"a locked room", "an old letter", "a missing key"}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out StringList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip changed the list: %v != %v", out, in)
	}
}

func TestStringListNilValue(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "[]" {
		t.Errorf("nil list should store as empty JSON array, got %v", v)
	}
}

func TestStringListScanNil(t *testing.T) {
	l := StringList{"x"}
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if l != nil {
		t.Errorf("Scan(nil) should reset the list, got %v", l)
	}
}

func TestStringListScanUnsupported(t *testing.T) {
	var l StringList
	if err := l.Scan(42); err == nil {
		t.Errorf("expected error for unsupported source type")
	}
}
