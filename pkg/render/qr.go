package render

import (
	"context"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/shelfmark/shelfmark/pkg/cache"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// Encoder turns text into a square scannable bitmap (PNG bytes). The image
// is held in memory only; nothing is persisted by encoding.
type Encoder interface {
	Encode(text string) ([]byte, error)
}

// qrPixels is the edge length of generated QR images. The PDF surface scales
// the image to the label geometry, so this only bounds scan resolution.
const qrPixels = 256

// QREncoder encodes text as a QR code with low error correction, matching
// the density/robustness trade-off appropriate for short location codes.
type QREncoder struct{}

// Encode returns a square PNG encoding text verbatim.
func (QREncoder) Encode(text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot encode empty code value")
	}
	png, err := qrcode.Encode(text, qrcode.Low, qrPixels)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode QR for %q", text)
	}
	return png, nil
}

// CachedEncoder wraps an Encoder with a byte cache keyed on the encoded
// text. Repeated location codes (within a run or across runs with a file
// cache) are encoded once.
type CachedEncoder struct {
	Next  Encoder
	Cache cache.Cache
	TTL   time.Duration
}

// Encode returns the cached image for text if present, otherwise encodes and
// stores it. Cache failures degrade to plain encoding.
func (e *CachedEncoder) Encode(text string) ([]byte, error) {
	ctx := context.Background()
	key := "qr:" + cache.Hash([]byte(text))

	if data, hit, err := e.Cache.Get(ctx, key); err == nil && hit {
		return data, nil
	}

	png, err := e.Next.Encode(text)
	if err != nil {
		return nil, err
	}
	_ = e.Cache.Set(ctx, key, png, e.TTL)
	return png, nil
}
