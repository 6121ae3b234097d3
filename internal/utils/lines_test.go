package utils

import (
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix endings", "one\ntwo\nthree\n", []string{"one", "two", "three"}},
		{"windows endings", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"missing final newline", "one\ntwo", []string{"one", "two"}},
		{"blank lines kept", "one\n\ntwo\n", []string{"one", "", "two"}},
		{"empty input", "", nil},
		{"unicode", "héllo\nwörld\n", []string{"héllo", "wörld"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ReadLines returned error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestReadLinesRejectsInvalidUTF8(t *testing.T) {
	_, err := ReadLines(strings.NewReader("ok\nbad\xff\xfe\n"))
	if err == nil {
		t.Fatal("expected an error for invalid UTF-8")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name line 2, got %q", err)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"b", "a", "b", "c", "a", "A"})
	want := []string{"b", "a", "c", "A"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Unique() = %q, want %q", got, want)
	}
}

func TestIsWordStart(t *testing.T) {
	testCases := []struct {
		prev, curr rune
		want       bool
	}{
		{'/', 'a', true},
		{'_', 'x', true},
		{' ', 'Q', true},
		{'o', 'B', true},
		{'o', 'b', false},
		{'O', 'B', false},
		{'1', 'a', false},
	}
	for _, tc := range testCases {
		if got := IsWordStart(tc.prev, tc.curr); got != tc.want {
			t.Errorf("IsWordStart(%q, %q) = %v, want %v", tc.prev, tc.curr, got, tc.want)
		}
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold('a', 'A') || !EqualFold('É', 'é') {
		t.Error("expected case-insensitive equality")
	}
	if EqualFold('a', 'b') {
		t.Error("'a' and 'b' must differ")
	}
}
