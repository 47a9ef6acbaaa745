package render

import (
	"bytes"
	"testing"

	"github.com/shelfmark/shelfmark/pkg/cache"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestQREncoderProducesPNG(t *testing.T) {
	png, err := QREncoder{}.Encode("STOWAGE-A12-B3")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestQREncoderDeterministic(t *testing.T) {
	a, err := QREncoder{}.Encode("CHILLER-C5-D1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := QREncoder{}.Encode("CHILLER-C5-D1")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same input should encode to identical bytes")
	}

	c, err := QREncoder{}.Encode("CHILLER-C5-D2")
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, c) {
		t.Error("different inputs should encode differently")
	}
}

func TestQREncoderRejectsEmpty(t *testing.T) {
	_, err := QREncoder{}.Encode("")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

// countingEncoder counts how many times each value is actually encoded.
type countingEncoder struct {
	calls map[string]int
}

func (e *countingEncoder) Encode(text string) ([]byte, error) {
	e.calls[text]++
	return []byte("qr|" + text), nil
}

func TestCachedEncoderEncodesOnce(t *testing.T) {
	inner := &countingEncoder{calls: make(map[string]int)}
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	enc := &CachedEncoder{Next: inner, Cache: fileCache}

	for i := 0; i < 5; i++ {
		png, err := enc.Encode("FROZEN-E2-F4")
		if err != nil {
			t.Fatal(err)
		}
		if string(png) != "qr|FROZEN-E2-F4" {
			t.Fatalf("round %d returned %q", i, png)
		}
	}

	if inner.calls["FROZEN-E2-F4"] != 1 {
		t.Errorf("inner encoder called %d times, want 1", inner.calls["FROZEN-E2-F4"])
	}
}

func TestCachedEncoderNullCacheDegrades(t *testing.T) {
	inner := &countingEncoder{calls: make(map[string]int)}
	enc := &CachedEncoder{Next: inner, Cache: cache.NewNullCache()}

	for i := 0; i < 3; i++ {
		if _, err := enc.Encode("A"); err != nil {
			t.Fatal(err)
		}
	}
	if inner.calls["A"] != 3 {
		t.Errorf("inner encoder called %d times, want 3 with a null cache", inner.calls["A"])
	}
}
