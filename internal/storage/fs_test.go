package storage_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vocamind/vocamind-skill/internal/storage"
)

func TestFSStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := storage.NewFSStore(dir, "http://localhost:8080/audio/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ok, err := s.Exists(ctx, "abc.mp3")
	if err != nil || ok {
		t.Fatalf("Exists before put = (%v, %v), want (false, nil)", ok, err)
	}

	opts := storage.PutOptions{Public: true, Tags: map[string]string{"WordId": "w1", "Word": "cat"}}
	if err := s.Put(ctx, "abc.mp3", strings.NewReader("audio-bytes"), opts); err != nil {
		t.Fatalf("put: %v", err)
	}

	ok, err = s.Exists(ctx, "abc.mp3")
	if err != nil || !ok {
		t.Fatalf("Exists after put = (%v, %v), want (true, nil)", ok, err)
	}

	rc, err := s.Get("abc.mp3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer rc.Close()
	buf, _ := io.ReadAll(rc)
	if string(buf) != "audio-bytes" {
		t.Errorf("content = %q", buf)
	}

	// tags land in the sidecar
	raw, err := os.ReadFile(filepath.Join(dir, "abc.mp3.tags.json"))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	var tags map[string]string
	if err := json.Unmarshal(raw, &tags); err != nil {
		t.Fatalf("decode sidecar: %v", err)
	}
	if tags["WordId"] != "w1" || tags["Word"] != "cat" {
		t.Errorf("tags = %v", tags)
	}
}

func TestFSStorePublicURL(t *testing.T) {
	s, err := storage.NewFSStore(t.TempDir(), "https://skill.example.com/audio/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	got := s.PublicURL("abc.mp3")
	if got != "https://skill.example.com/audio/abc.mp3" {
		t.Errorf("url = %q", got)
	}
}

func TestFSStoreRejectsEmptyKey(t *testing.T) {
	s, err := storage.NewFSStore(t.TempDir(), "http://localhost:8080/audio")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := s.Put(context.Background(), "", strings.NewReader("x"), storage.PutOptions{}); err == nil {
		t.Fatalf("expected an error for the empty key")
	}
}
