package lexicon

import "context"

// Store is the user/word store behind the quiz. FindUser and RandomTestWord
// return (nil, nil) when nothing matches; an error means the lookup itself
// failed.
type Store interface {
	FindUser(ctx context.Context, id string) (*User, error)
	UpsertUser(ctx context.Context, u User) error

	PutWord(ctx context.Context, w Word) error
	GetWord(ctx context.Context, id string) (Word, error)
	ListWords(ctx context.Context) ([]Word, error)

	// LearnWord marks a word as learned by the user, making it eligible
	// for testing.
	LearnWord(ctx context.Context, userID, wordID string) error

	// RandomTestWord picks a random learned word the user has not yet
	// passed a test on.
	RandomTestWord(ctx context.Context, userID string) (*Word, error)

	// RecordProgress marks a word as passed. Idempotent.
	RecordProgress(ctx context.Context, userID, wordID string) error
}
