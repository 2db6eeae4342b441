package lxinfo

import (
	"strings"
	"testing"
)

func TestBufToString(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{"terminator mid-buffer", []byte{'m', 'y', 'h', 'o', 's', 't', 0, 'x', 'x', 'x'}, "myhost"},
		{"terminator first", []byte{0, 'j', 'u', 'n', 'k'}, ""},
		{"no terminator", []byte{'f', 'u', 'l', 'l'}, "full"},
		{"empty buffer", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bufToString(tt.buf); got != tt.want {
				t.Errorf("bufToString(%v) = %q, want %q", tt.buf, got, tt.want)
			}
		})
	}
}

func TestGetIdentity(t *testing.T) {
	for _, kind := range []struct {
		name string
		kind IdentityKind
	}{
		{"hostname", HostName},
		{"kernel version", KernelVersion},
		{"machine", Machine},
	} {
		t.Run(kind.name, func(t *testing.T) {
			got, err := GetIdentity(kind.kind)
			if err != nil {
				t.Fatalf("GetIdentity failed: %v", err)
			}
			if got == "" {
				t.Error("GetIdentity returned an empty field")
			}
			if strings.ContainsRune(got, 0) {
				t.Errorf("GetIdentity returned %q with an embedded NUL", got)
			}
		})
	}
}

func TestGetIdentityUsername(t *testing.T) {
	got, err := GetIdentity(Username)
	if err != nil {
		// Containers and stripped-down hosts often have no usable
		// session table at all.
		t.Skipf("login sessions unavailable on this host: %v", err)
	}
	if got == "" {
		t.Error("GetIdentity(Username) returned an empty name")
	}
}

func TestGetIdentityUnknownKind(t *testing.T) {
	if _, err := GetIdentity(IdentityKind(42)); err == nil {
		t.Error("GetIdentity(42) returned no error")
	}
}
