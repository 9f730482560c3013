package cli

import (
	"testing"
)

func TestGroupDigits(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		42:      "42",
		999:     "999",
		1000:    "1,000",
		32768:   "32,768",
		131072:  "131,072",
		1234567: "1,234,567",
		-4096:   "-4,096",
	}
	for n, want := range cases {
		if got := groupDigits(n); got != want {
			t.Fatalf("groupDigits(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestAsInt(t *testing.T) {
	if n, ok := asInt(float64(32768)); !ok || n != 32768 {
		t.Fatalf("integral float: got %d, %v", n, ok)
	}
	if _, ok := asInt(float64(1.5)); ok {
		t.Fatalf("fractional float must not convert")
	}
	if _, ok := asInt("32768"); ok {
		t.Fatalf("string must not convert")
	}
	if _, ok := asInt(nil); ok {
		t.Fatalf("nil must not convert")
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(nil); got != "N/A" {
		t.Fatalf("nil: got %q", got)
	}
	if got := formatValue(float64(1234567)); got != "1234567" {
		t.Fatalf("integral float must not use exponent form: got %q", got)
	}
	if got := formatValue("llama"); got != "llama" {
		t.Fatalf("string: got %q", got)
	}
	if got := formatValue(map[string]any{"type": "linear"}); got != `{"type":"linear"}` {
		t.Fatalf("map: got %q", got)
	}
}

func TestRelevantKeys(t *testing.T) {
	cfg := map[string]any{
		"max_position_embeddings": 1,
		"rope_scaling":            nil,
		"sliding_window":          2,
		"n_ctx":                   3,
		"hidden_size":             4,
		"vocab_size":              5,
	}
	got := relevantKeys(cfg)
	want := []string{"max_position_embeddings", "n_ctx", "rope_scaling", "sliding_window"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
