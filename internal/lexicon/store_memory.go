package lexicon

import (
	"context"
	"errors"
	"math/rand"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	users   map[string]User
	words   map[string]Word
	learned map[string]map[string]bool // userID -> wordID set
	passed  map[string]map[string]bool
}

// NewInMemoryStore backs the quiz without a database. Used by tests and dev
// wiring.
func NewInMemoryStore() Store {
	return &memoryStore{
		users:   map[string]User{},
		words:   map[string]Word{},
		learned: map[string]map[string]bool{},
		passed:  map[string]map[string]bool{},
	}
}

func (m *memoryStore) FindUser(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryStore) UpsertUser(ctx context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return nil
}

func (m *memoryStore) PutWord(ctx context.Context, w Word) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[w.ID] = w
	return nil
}

func (m *memoryStore) GetWord(ctx context.Context, id string) (Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.words[id]
	if !ok {
		return Word{}, errors.New("word not found")
	}
	return w, nil
}

func (m *memoryStore) ListWords(ctx context.Context) ([]Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Word, 0, len(m.words))
	for _, w := range m.words {
		out = append(out, w)
	}
	return out, nil
}

func (m *memoryStore) LearnWord(ctx context.Context, userID, wordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.words[wordID]; !ok {
		return errors.New("word not found")
	}
	if m.learned[userID] == nil {
		m.learned[userID] = map[string]bool{}
	}
	m.learned[userID][wordID] = true
	return nil
}

func (m *memoryStore) RandomTestWord(ctx context.Context, userID string) (*Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	eligible := []Word{}
	for id := range m.learned[userID] {
		if m.passed[userID][id] {
			continue
		}
		if w, ok := m.words[id]; ok {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	w := eligible[rand.Intn(len(eligible))]
	return &w, nil
}

func (m *memoryStore) RecordProgress(ctx context.Context, userID, wordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.passed[userID] == nil {
		m.passed[userID] = map[string]bool{}
	}
	m.passed[userID][wordID] = true
	return nil
}
