package speech

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/vocamind/vocamind-skill/internal/lexicon"
	"github.com/vocamind/vocamind-skill/internal/storage"
)

// AudioCache deduplicates synthesis across words sharing a definition text.
// Objects are keyed by a digest of the casefolded definition, so two words
// with the same definition resolve to the same stored artifact.
//
// There is no single-flight guard: concurrent first requests for one
// definition may both synthesize and both store. The writes land on the same
// key with the same content, so last-write-wins is harmless.
type AudioCache struct {
	blobs storage.BlobStore
	synth Synthesizer
}

func NewAudioCache(blobs storage.BlobStore, synth Synthesizer) *AudioCache {
	return &AudioCache{blobs: blobs, synth: synth}
}

// CacheKey is the object key for a definition text.
func CacheKey(definition string) string {
	sum := sha1.Sum([]byte(strings.ToLower(definition)))
	return hex.EncodeToString(sum[:]) + ".mp3"
}

// Resolve returns a publicly resolvable URL for the spoken definition,
// synthesizing and storing it on a cache miss. An existence-check failure is
// treated as a miss: re-synthesizing is cheaper than blocking the user.
func (c *AudioCache) Resolve(ctx context.Context, w lexicon.Word) (string, error) {
	key := CacheKey(w.Definition)

	exists, err := c.blobs.Exists(ctx, key)
	if err != nil {
		log.Printf("speech: existence check for %s: %v", key, err)
		exists = false
	}
	if exists {
		return c.blobs.PublicURL(key), nil
	}

	audio, err := c.synth.Synthesize(ctx, w.Definition)
	if err != nil {
		return "", fmt.Errorf("synthesize definition: %w", err)
	}
	opts := storage.PutOptions{
		Public: true,
		Tags:   map[string]string{"WordId": w.ID, "Word": w.Word},
	}
	if err := c.blobs.Put(ctx, key, bytes.NewReader(audio), opts); err != nil {
		return "", fmt.Errorf("store definition audio: %w", err)
	}
	return c.blobs.PublicURL(key), nil
}
