package quiz

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/vocamind/vocamind-skill/internal/convo"
	"github.com/vocamind/vocamind-skill/internal/lexicon"
)

// SlotWord is the slot the quiz elicits and reads the guess from.
const SlotWord = "Word"

const maxAttempts = 2

var affirmations = []string{
	"Good!",
	"Correct",
	"Your answer is correct",
	"That's right",
}

// Store is the slice of the user/word store the quiz consumes. FindUser and
// RandomTestWord return (nil, nil) when nothing matches.
type Store interface {
	FindUser(ctx context.Context, id string) (*lexicon.User, error)
	RandomTestWord(ctx context.Context, userID string) (*lexicon.Word, error)
	RecordProgress(ctx context.Context, userID, wordID string) error
}

// Engine runs one quiz turn. It owns no state between invocations: the
// active round travels inside the session attributes of the envelope.
type Engine struct {
	store Store
	audio AudioResolver
}

func NewEngine(store Store, audio AudioResolver) *Engine {
	return &Engine{store: store, audio: audio}
}

// HandleTest processes a Test-intent invocation. Store failures never reach
// the user verbatim: they are logged and replaced with a generic close.
func (e *Engine) HandleTest(ctx context.Context, req convo.IntentRequest) convo.Response {
	user, err := e.store.FindUser(ctx, req.UserID)
	if err != nil {
		log.Printf("quiz: find user %s: %v", req.UserID, err)
		return somethingWentWrong()
	}
	if user == nil {
		return unknownUser()
	}

	_, hasSlot := req.CurrentIntent.Slots[SlotWord]
	rs, active := loadRound(req.SessionAttributes)
	if hasSlot && active {
		return e.continueRound(ctx, *user, req, rs)
	}
	return e.startRound(ctx, *user, req)
}

func (e *Engine) startRound(ctx context.Context, user lexicon.User, req convo.IntentRequest) convo.Response {
	w, err := e.store.RandomTestWord(ctx, user.ID)
	if err != nil {
		log.Printf("quiz: random word for user %s: %v", user.ID, err)
		return somethingWentWrong()
	}
	if w == nil {
		return noWordsAvailable()
	}
	msgs := TaskMessages(ctx, e.audio, *w)
	session := saveRound(roundState{Word: *w, Attempts: 0})
	return convo.ElicitSlot(session, req.CurrentIntent.Name, req.CurrentIntent.Slots, SlotWord, msgs)
}

func (e *Engine) continueRound(ctx context.Context, user lexicon.User, req convo.IntentRequest, rs roundState) convo.Response {
	var raw string
	if v := req.CurrentIntent.Slots[SlotWord]; v != nil {
		raw = *v
	}
	g := Normalize(raw)

	switch {
	case g.DeclaredUnknown:
		return skipTest(rs.Word)

	case strings.ToLower(rs.Word.Word) == g.Text:
		if err := e.store.RecordProgress(ctx, user.ID, rs.Word.ID); err != nil {
			log.Printf("quiz: record progress user=%s word=%s: %v", user.ID, rs.Word.ID, err)
			return somethingWentWrong()
		}
		return correctAnswer()

	case rs.Attempts >= maxAttempts:
		// wrong after the final hint: same outcome as an explicit skip
		return skipTest(rs.Word)

	default:
		rs.Attempts++
		msgs := HintMessages(rs.Word, rs.Attempts, req.InputTranscript)
		session := saveRound(rs)
		return convo.ElicitSlot(session, req.CurrentIntent.Name,
			map[string]*string{SlotWord: nil}, SlotWord, msgs)
	}
}

func correctAnswer() convo.Response {
	reply := affirmations[rand.Intn(len(affirmations))]
	return convo.Close(nil, "Fulfilled", []convo.Fragment{
		convo.Text(reply,
			convo.Opt("Next test", "Test"),
			convo.Opt("Learn", "Learn"),
			convo.Opt("Stop", "Stop"),
		),
	})
}

func skipTest(w lexicon.Word) convo.Response {
	return convo.Close(nil, "Fulfilled", []convo.Fragment{
		convo.Text(`Too bad! The answer is "`+w.Word+`"`,
			convo.Opt("Next test", "Test"),
			convo.Opt("Learn", "Learn"),
			convo.Opt("Stop", "Stop"),
		),
	})
}

func unknownUser() convo.Response {
	return convo.Close(nil, "Fulfilled", []convo.Fragment{
		convo.Text("You haven't learned any words yet!",
			convo.Opt("Learn", "Learn"),
			convo.Opt("Stop", "Stop"),
		),
	})
}

func noWordsAvailable() convo.Response {
	return convo.Close(nil, "Fulfilled", []convo.Fragment{
		convo.Text("You haven't learned any words yet",
			convo.Opt("Learn", "Learn"),
			convo.Opt("Stop", "Stop"),
		),
	})
}

func somethingWentWrong() convo.Response {
	return convo.Close(nil, "Fulfilled", []convo.Fragment{
		convo.Text("Something went wrong",
			convo.Opt("Test", "Test"),
			convo.Opt("Learn", "Learn"),
		),
	})
}
