package controllers

import (
	"errors"
	"reflect"
	"testing"
)

func TestCleanElements(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		want    []string
		wantErr error
	}{
		{"three kept verbatim", []string{"a", "b", "c"}, []string{"a", "b", "c"}, nil},
		{"four accepted", []string{"a", "b", "c", "d"}, []string{"a", "b", "c", "d"}, nil},
		{"whitespace trimmed", []string{" a ", "b", "\tc"}, []string{"a", "b", "c"}, nil},
		{"two rejected", []string{"a", "b"}, nil, errTooFewElements},
		{"empty entries dropped before count", []string{"a", "b", "", "  "}, nil, errTooFewElements},
		{"five rejected", []string{"a", "b", "c", "d", "e"}, nil, errTooManyElements},
		{"nil rejected", nil, nil, errTooFewElements},
	}
	for _, c := range cases {
		got, err := CleanElements(c.in)
		if c.wantErr != nil {
			if !errors.Is(err, c.wantErr) {
				t.Errorf("%s: got err %v, want %v", c.name, err, c.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCleanElementsRejectsOversizeBeforeTrimming(t *testing.T) {
	// Five raw entries fail even though only three would survive trimming.
	_, err := CleanElements([]string{"a", "b", "c", "", " "})
	if !errors.Is(err, errTooManyElements) {
		t.Errorf("raw length check should run first, got %v", err)
	}
}
