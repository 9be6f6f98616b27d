// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package blob stores captured signature and photo images.

# Uploads

	key, err := blob.UploadImage(ctx, store, dataURI, "signature-abc.png")

UploadImage strips any data-URI prefix, decodes the base64 payload and
writes it under "images/{unix-millis}-{filename}" with the content type
(png vs jpeg) sniffed from the data URI. On failure the caller falls back
to persisting the raw base64 inline in the participant row; the persisted
kind column records which shape won.

# Implementations

  - MinioStore: S3-compatible bucket (R2, MinIO, S3) for production.
  - MemStore: in-memory map for local development and tests, with a
    failure mode to exercise the fallback path.

Storage calls carry the caller's context; the configured storage timeout
bounds each write.
*/
package blob
