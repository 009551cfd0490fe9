package http

import (
	"encoding/json"
	"net/http"

	"github.com/vocamind/vocamind-skill/internal/convo"
	"github.com/vocamind/vocamind-skill/internal/quiz"
)

// SkillInvokeHandler is the conversation webhook. Intentionally
// unauthenticated: the platform is the only expected caller.
func SkillInvokeHandler(engine *quiz.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req convo.IntentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		var resp convo.Response
		switch req.CurrentIntent.Name {
		case "Test":
			resp = engine.HandleTest(r.Context(), req)
		case "Stop":
			resp = convo.Close(nil, "Fulfilled", []convo.Fragment{
				convo.Text("Bye! Come back to practice more words."),
			})
		default:
			resp = convo.Close(nil, "Fulfilled", []convo.Fragment{
				convo.Text("Say \"Test\" to practice your words.",
					convo.Opt("Test", "Test"),
					convo.Opt("Stop", "Stop"),
				),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
