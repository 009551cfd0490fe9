package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) FindUser(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,name FROM users WHERE id=$1`, id)
	var u User
	if err := row.Scan(&u.ID, &u.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLStore) UpsertUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id,name) VALUES ($1,$2)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name`, u.ID, u.Name)
	return err
}

func (s *SQLStore) PutWord(ctx context.Context, w Word) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO words (id,word,definition,image,audio,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET word=EXCLUDED.word, definition=EXCLUDED.definition,
			image=EXCLUDED.image, audio=EXCLUDED.audio`,
		w.ID, w.Word, w.Definition, w.Image, w.Audio, time.Now().Unix())
	return err
}

func (s *SQLStore) GetWord(ctx context.Context, id string) (Word, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,word,definition,image,audio FROM words WHERE id=$1`, id)
	var w Word
	if err := row.Scan(&w.ID, &w.Word, &w.Definition, &w.Image, &w.Audio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Word{}, errors.New("word not found")
		}
		return Word{}, err
	}
	return w, nil
}

func (s *SQLStore) ListWords(ctx context.Context) ([]Word, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,word,definition,image,audio FROM words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Word{}
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Word, &w.Definition, &w.Image, &w.Audio); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *SQLStore) LearnWord(ctx context.Context, userID, wordID string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO learned (user_id,word_id,learned_at) VALUES ($1,$2,$3)
		ON CONFLICT (user_id,word_id) DO NOTHING`, userID, wordID, time.Now().Unix())
	return err
}

func (s *SQLStore) RandomTestWord(ctx context.Context, userID string) (*Word, error) {
	row := s.db.QueryRowContext(ctx, `SELECT w.id,w.word,w.definition,w.image,w.audio
		FROM words w
		JOIN learned l ON l.word_id=w.id AND l.user_id=$1
		WHERE NOT EXISTS (SELECT 1 FROM progress p WHERE p.user_id=$1 AND p.word_id=w.id)
		ORDER BY RANDOM() LIMIT 1`, userID)
	var w Word
	if err := row.Scan(&w.ID, &w.Word, &w.Definition, &w.Image, &w.Audio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (s *SQLStore) RecordProgress(ctx context.Context, userID, wordID string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO progress (user_id,word_id,passed_at) VALUES ($1,$2,$3)
		ON CONFLICT (user_id,word_id) DO NOTHING`, userID, wordID, time.Now().Unix())
	return err
}
