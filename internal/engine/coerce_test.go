package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want decimal.Decimal
	}{
		{name: "nil", in: nil, want: decimal.Zero},
		{name: "float", in: 1234.5, want: decimal.NewFromFloat(1234.5)},
		{name: "int", in: 700, want: decimal.NewFromInt(700)},
		{name: "int64", in: int64(-50), want: decimal.NewFromInt(-50)},
		{name: "json number", in: json.Number("99.99"), want: decimal.RequireFromString("99.99")},
		{name: "numeric string", in: "350", want: decimal.NewFromInt(350)},
		{name: "garbage string", in: "not a number", want: decimal.Zero},
		{name: "bool", in: true, want: decimal.Zero},
		{name: "map", in: map[string]any{}, want: decimal.Zero},
		{name: "decimal passthrough", in: decimal.NewFromInt(42), want: decimal.NewFromInt(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceAmount(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("coerceAmount(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	ref := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     any
		want   time.Time
		wantOK bool
	}{
		{name: "epoch millis float", in: float64(ref.UnixMilli()), want: ref, wantOK: true},
		{name: "epoch millis int64", in: ref.UnixMilli(), want: ref, wantOK: true},
		{name: "epoch millis json number", in: json.Number("1710412200000"), want: ref, wantOK: true},
		{name: "rfc3339 string", in: "2024-03-15T10:30:00Z", want: ref, wantOK: true},
		{name: "nil", in: nil, wantOK: false},
		{name: "garbage string", in: "yesterday", wantOK: false},
		{name: "bool", in: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseInstant(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("parseInstant(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("parseInstant(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
