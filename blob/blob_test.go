// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blob

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestUploadImage(t *testing.T) {
	store := NewMemStore()
	payload := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))

	key, err := UploadImage(context.Background(), store, payload, "photo-p1.jpg")
	if err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	if !strings.HasPrefix(key, "images/") || !strings.HasSuffix(key, "-photo-p1.jpg") {
		t.Errorf("UploadImage() key = %q, want images/{millis}-photo-p1.jpg", key)
	}

	obj, ok := store.Get(key)
	if !ok {
		t.Fatalf("UploadImage() stored nothing under %q", key)
	}
	if string(obj.Data) != "jpeg bytes" {
		t.Errorf("stored data = %q, want decoded payload", obj.Data)
	}
	if obj.ContentType != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", obj.ContentType)
	}
}

func TestUploadImageDataURI(t *testing.T) {
	store := NewMemStore()
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png bytes"))

	key, err := UploadImage(context.Background(), store, payload, "signature-p1.png")
	if err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	obj, _ := store.Get(key)
	if string(obj.Data) != "png bytes" {
		t.Errorf("stored data = %q, want prefix stripped before decoding", obj.Data)
	}
	if obj.ContentType != "image/png" {
		t.Errorf("content type = %q, want image/png", obj.ContentType)
	}
}

func TestUploadImageInvalidBase64(t *testing.T) {
	store := NewMemStore()

	_, err := UploadImage(context.Background(), store, "not-valid-base64!!!", "photo.jpg")
	if err == nil {
		t.Fatal("UploadImage() accepted invalid base64")
	}
	if store.Len() != 0 {
		t.Errorf("store holds %d objects, want 0 after decode failure", store.Len())
	}
}

func TestUploadImageStoreFailure(t *testing.T) {
	store := NewMemStore()
	store.SetFail(true)

	payload := base64.StdEncoding.EncodeToString([]byte("x"))
	_, err := UploadImage(context.Background(), store, payload, "photo.jpg")
	if !errors.Is(err, ErrPutFailed) {
		t.Errorf("UploadImage() error = %v, want %v", err, ErrPutFailed)
	}
}

func TestMemStoreContextCancelled(t *testing.T) {
	store := NewMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, "k", []byte("v"), "image/jpeg")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Put() error = %v, want context.Canceled", err)
	}
}

func TestMemStoreCopiesData(t *testing.T) {
	store := NewMemStore()
	data := []byte("original")

	if err := store.Put(context.Background(), "k", data, "image/jpeg"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	data[0] = 'X'

	obj, _ := store.Get("k")
	if string(obj.Data) != "original" {
		t.Errorf("stored data = %q, want a copy unaffected by caller mutation", obj.Data)
	}
}
