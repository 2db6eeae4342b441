package lxinfo

import (
	"errors"
	"testing"
)

func TestProperUnit(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"below one KiB", 1023, "1023 B"},
		{"exactly one KiB", 1024, "1.0 KiB"},
		{"one and a half KiB", 1536, "1.5 KiB"},
		{"exactly one MiB", 1 << 20, "1.0 MiB"},
		{"exactly one GiB", 1 << 30, "1.0 GiB"},
		{"three GiB", 3 << 30, "3.0 GiB"},
		{"exactly one TiB", 1 << 40, "1.0 TiB"},
		{"rounding carries into the quotient", 1048570, "1024.0 KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProperUnit(tt.bytes); got != tt.want {
				t.Errorf("ProperUnit(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestProperUnitKB(t *testing.T) {
	tests := []struct {
		name string
		kb   float64
		want string
	}{
		{"zero", 0, "0 B"},
		{"one GiB worth of kB", 1048576, "1.0 GiB"},
		{"typical MemTotal row", 16384000, "15.6 GiB"},
		{"fractional kB", 512.5, "512.5 KiB"},
		{"two MiB worth of kB", 2048, "2.0 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProperUnitKB(tt.kb)
			if err != nil {
				t.Fatalf("ProperUnitKB(%v) returned error: %v", tt.kb, err)
			}
			if got != tt.want {
				t.Errorf("ProperUnitKB(%v) = %q, want %q", tt.kb, got, tt.want)
			}
		})
	}
}

func TestProperUnitKBNegative(t *testing.T) {
	_, err := ProperUnitKB(-1)
	if err == nil {
		t.Fatal("ProperUnitKB(-1) returned no error")
	}
	if !errors.Is(err, ErrNegativeSize) {
		t.Errorf("ProperUnitKB(-1) error = %v, want ErrNegativeSize", err)
	}
}
