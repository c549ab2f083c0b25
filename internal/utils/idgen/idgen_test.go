package idgen

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		wantPrefix string
	}{
		{name: "conversation id", prefix: PrefixConversation, wantPrefix: "conv_"},
		{name: "file id", prefix: PrefixFile, wantPrefix: "file_"},
		{name: "contact id", prefix: PrefixContact, wantPrefix: "contact_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.prefix)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("New(%q) = %q, want prefix %q", tt.prefix, got, tt.wantPrefix)
			}
			if got != strings.ToLower(got) {
				t.Errorf("New(%q) = %q, want lowercase", tt.prefix, got)
			}
			if !IsValid(tt.prefix, got) {
				t.Errorf("IsValid rejected generated id %q", got)
			}
		})
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New(PrefixConversation)
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	if IsValid(PrefixConversation, "file_01hzx8k3q0r6m4b2d9e7f5g1h3") {
		t.Errorf("wrong prefix must be rejected")
	}
	if IsValid(PrefixConversation, "conv_not-a-ulid") {
		t.Errorf("garbage must be rejected")
	}
}
