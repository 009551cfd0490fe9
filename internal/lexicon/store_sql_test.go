package lexicon_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vocamind/vocamind-skill/internal/db"
	"github.com/vocamind/vocamind-skill/internal/lexicon"
)

func openStore(t *testing.T) *lexicon.SQLStore {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return lexicon.NewSQLStore(dbh, "sqlite")
}

func TestFindUser(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	u, err := store.FindUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("find unknown user: %v", err)
	}
	if u != nil {
		t.Fatalf("unknown user = %+v, want nil", u)
	}

	if err := store.UpsertUser(ctx, lexicon.User{ID: "u1", Name: "Alice"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	u, err = store.FindUser(ctx, "u1")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if u == nil || u.Name != "Alice" {
		t.Errorf("user = %+v", u)
	}
}

func TestRandomTestWordEligibility(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	if err := store.UpsertUser(ctx, lexicon.User{ID: "u1"}); err != nil {
		t.Fatalf("upsert user: %v", err)
	}
	cat := lexicon.Word{ID: "w1", Word: "cat", Definition: "a small feline"}
	dog := lexicon.Word{ID: "w2", Word: "dog", Definition: "a loyal companion"}
	for _, w := range []lexicon.Word{cat, dog} {
		if err := store.PutWord(ctx, w); err != nil {
			t.Fatalf("put word: %v", err)
		}
	}

	// nothing learned yet
	w, err := store.RandomTestWord(ctx, "u1")
	if err != nil {
		t.Fatalf("random word: %v", err)
	}
	if w != nil {
		t.Fatalf("word before learning = %+v, want nil", w)
	}

	if err := store.LearnWord(ctx, "u1", "w1"); err != nil {
		t.Fatalf("learn: %v", err)
	}
	w, err = store.RandomTestWord(ctx, "u1")
	if err != nil {
		t.Fatalf("random word: %v", err)
	}
	if w == nil || w.ID != "w1" {
		t.Fatalf("word = %+v, want the learned cat", w)
	}

	// passing the test removes the word from the pool
	if err := store.RecordProgress(ctx, "u1", "w1"); err != nil {
		t.Fatalf("record progress: %v", err)
	}
	w, err = store.RandomTestWord(ctx, "u1")
	if err != nil {
		t.Fatalf("random word: %v", err)
	}
	if w != nil {
		t.Fatalf("word after passing = %+v, want nil", w)
	}
}

func TestRecordProgressIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	if err := store.UpsertUser(ctx, lexicon.User{ID: "u1"}); err != nil {
		t.Fatalf("upsert user: %v", err)
	}
	if err := store.PutWord(ctx, lexicon.Word{ID: "w1", Word: "cat", Definition: "a small feline"}); err != nil {
		t.Fatalf("put word: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.RecordProgress(ctx, "u1", "w1"); err != nil {
			t.Fatalf("record progress (call %d): %v", i+1, err)
		}
	}
}

func TestPutWordUpserts(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	w := lexicon.Word{ID: "w1", Word: "cat", Definition: "a small feline"}
	if err := store.PutWord(ctx, w); err != nil {
		t.Fatalf("put: %v", err)
	}
	w.Definition = "a small domesticated feline"
	w.Image = "https://img.example.com/cat.png"
	if err := store.PutWord(ctx, w); err != nil {
		t.Fatalf("put again: %v", err)
	}

	got, err := store.GetWord(ctx, "w1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Definition != w.Definition || got.Image != w.Image {
		t.Errorf("word = %+v", got)
	}

	words, err := store.ListWords(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(words) != 1 {
		t.Errorf("list = %+v, want a single word", words)
	}
}
