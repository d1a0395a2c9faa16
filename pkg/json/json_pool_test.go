package json

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func TestMarshalUnmarshal(t *testing.T) {
	in := sample{Value: 9.81, Unit: "m/s2"}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"value":9.81,"unit":"m/s2"}` {
		t.Errorf("unexpected output: %s", data)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(sample{Value: 1, Unit: "m"}, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"value\"") {
		t.Errorf("expected indented output, got: %s", data)
	}
}

func TestMarshalToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := MarshalToWriter(&buf, sample{Value: 5, Unit: "km"}); err != nil {
		t.Fatalf("MarshalToWriter failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"value":5,"unit":"km"}` {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestMarshalToBuffer(t *testing.T) {
	buf, err := MarshalToBuffer(sample{Value: 5, Unit: "km"})
	if err != nil {
		t.Fatalf("MarshalToBuffer failed: %v", err)
	}
	defer PutBuffer(buf)

	if !strings.Contains(buf.String(), `"unit":"km"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestBufferPoolReuse(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("leftover")
	PutBuffer(buf)

	again := GetBuffer()
	defer PutBuffer(again)
	if again.Len() != 0 {
		t.Errorf("pooled buffer not reset: %q", again.String())
	}
}

func TestStreamingEncoderArray(t *testing.T) {
	var buf bytes.Buffer
	enc := NewStreamingEncoder(&buf, true)

	for _, s := range []sample{{1, "m"}, {2, "km"}} {
		if err := enc.Encode(s); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[") || !strings.HasSuffix(out, "]") {
		t.Errorf("expected array framing, got: %s", out)
	}
	if !strings.Contains(out, `"unit":"m"`) || !strings.Contains(out, `"unit":"km"`) {
		t.Errorf("missing records: %s", out)
	}
}

func TestStreamingEncoderLineDelimited(t *testing.T) {
	var buf bytes.Buffer
	enc := NewStreamingEncoder(&buf, false)

	for _, s := range []sample{{1, "m"}, {2, "km"}} {
		if err := enc.Encode(s); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
}

func BenchmarkMarshal(b *testing.B) {
	v := sample{Value: 9.81, Unit: "m/s2"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(v); err != nil {
			b.Fatal(err)
		}
	}
}
