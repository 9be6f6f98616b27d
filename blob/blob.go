// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blob

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// ObjectStore writes binary objects under string keys. Implementations must
// be safe for concurrent use.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// UploadImage decodes a base64 image (with or without a data-URI prefix)
// and writes it under a timestamped key. Returns the storage key. Callers
// are expected to fall back to persisting the raw base64 inline when this
// fails.
func UploadImage(ctx context.Context, store ObjectStore, imageData, filename string) (string, error) {
	contentType := "image/jpeg"
	if strings.Contains(imageData, "png") {
		contentType = "image/png"
	}

	// Strip any data:image/...;base64, prefix
	raw := imageData
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[i+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}

	key := fmt.Sprintf("images/%d-%s", time.Now().UnixMilli(), filename)
	if err := store.Put(ctx, key, decoded, contentType); err != nil {
		return "", fmt.Errorf("failed to store %s: %w", key, err)
	}

	return key, nil
}
