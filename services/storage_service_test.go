package services

import (
	"bytes"
	"context"
	"testing"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorageService(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorageService error: %v", err)
	}

	key := ArtifactKey(99)
	payload := []byte{0xff, 0xd8, 0xff, 0xe0}
	if err := store.SaveArtifact(ctx, key, payload, "image/jpeg"); err != nil {
		t.Fatalf("SaveArtifact error: %v", err)
	}

	got, err := store.GetArtifact(ctx, key)
	if err != nil {
		t.Fatalf("GetArtifact error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("artifact bytes differ: %v != %v", got, payload)
	}

	if err := store.DeleteArtifact(ctx, key); err != nil {
		t.Fatalf("DeleteArtifact error: %v", err)
	}
	if _, err := store.GetArtifact(ctx, key); err == nil {
		t.Fatalf("expected error after deletion")
	}
}

func TestNewStorageServiceUnknownType(t *testing.T) {
	if _, err := NewStorageService("ftp", "somewhere", false); err == nil {
		t.Fatalf("expected error for unknown storage type")
	}
}

func TestArtifactKey(t *testing.T) {
	if got := ArtifactKey(7); got != "artifacts/invocations/inv_7.jpg" {
		t.Fatalf("unexpected key: %s", got)
	}
}
