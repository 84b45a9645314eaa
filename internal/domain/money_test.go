package domain

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	cases := []struct {
		in   Money
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{12345, "123.45"},
		{-250, "-2.50"},
	}

	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Money(%d).String() = %q, want %q", int64(tc.in), got, tc.want)
		}
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: 30050})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"total":300.50}`
	if string(payload) != want {
		t.Errorf("expected %s, got %s", want, payload)
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{"0", 0},
		{"10", 1000},
		{"10.5", 1050},
		{"10.50", 1050},
		{"300.07", 30007},
		{"-2.50", -250},
	}

	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if err != nil {
			t.Errorf("ParseMoney(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseMoneyRejectsExcessPrecision(t *testing.T) {
	if _, err := ParseMoney("1.005"); err == nil {
		t.Errorf("expected error for three decimal places")
	}
	if _, err := ParseMoney(""); err == nil {
		t.Errorf("expected error for empty input")
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	original := Money(99999)
	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Money
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded != original {
		t.Errorf("round trip changed value: %d -> %d", original, decoded)
	}
}
