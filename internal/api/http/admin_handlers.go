package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vocamind/vocamind-skill/internal/lexicon"
)

func PutWordHandler(store lexicon.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var word lexicon.Word
		if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if word.Word == "" || word.Definition == "" {
			http.Error(w, "word and definition required", 400)
			return
		}
		if word.ID == "" {
			word.ID = uuid.NewString()
		}
		if err := store.PutWord(r.Context(), word); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(word)
	}
}

func ListWordsHandler(store lexicon.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words, err := store.ListWords(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(words)
	}
}

func UpsertUserHandler(store lexicon.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u lexicon.User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if u.ID == "" {
			http.Error(w, "id required", 400)
			return
		}
		if err := store.UpsertUser(r.Context(), u); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

// POST /admin/users/{userID}/learn  { "word_id": "..." }
// Marks a word learned so the quiz can draw it.
func LearnWordHandler(store lexicon.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		var req struct {
			WordID string `json:"word_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.WordID == "" {
			http.Error(w, "word_id required", 400)
			return
		}
		if err := store.LearnWord(r.Context(), userID, req.WordID); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": userID, "word_id": req.WordID})
	}
}
