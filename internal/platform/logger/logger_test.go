package logger

import (
	"strings"
	"testing"
)

func TestSanitizeRedactsHealthData(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"answers", map[string]interface{}{"physical_abuse": "yes"},
		"user_id", "3f1c0a0e-8b55-4c1e-9a7e-5f3d0b1f6a11",
		"regions", 4,
		"dangling",
	})
	if out[1] != "[REDACTED]" {
		t.Fatalf("answers not redacted: %v", out[1])
	}
	if s, ok := out[3].(string); !ok || !strings.HasPrefix(s, "hash:") {
		t.Fatalf("user_id not hashed: %v", out[3])
	}
	if out[5] != 4 {
		t.Fatalf("plain value changed: %v", out[5])
	}
	if out[len(out)-1] != "dangling" {
		t.Fatalf("odd trailing key dropped: %v", out)
	}
}

func TestSanitizeNestedMap(t *testing.T) {
	got := sanitizeValue("payload", map[string]interface{}{"responses": []interface{}{1, 2}, "count": 2})
	m, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("want map, got %T", got)
	}
	if m["responses"] != "[REDACTED]" || m["count"] != 2 {
		t.Fatalf("nested=%v", m)
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "test"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.With("component", "test").Debug("hello")
	}
	NewNop().Info("discarded", "user_id", "x")
}
