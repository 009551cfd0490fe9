package quiz

import (
	"context"
	"fmt"
	"log"

	"github.com/vocamind/vocamind-skill/internal/convo"
	"github.com/vocamind/vocamind-skill/internal/lexicon"
)

// AudioResolver resolves a word's definition to a playable audio URL.
// Satisfied by speech.AudioCache.
type AudioResolver interface {
	Resolve(ctx context.Context, w lexicon.Word) (string, error)
}

// TaskMessages builds the opening prompt of a round. It is the only hint
// step with an external call: the definition audio is resolved through the
// cache, and any failure degrades to the plain definition text.
func TaskMessages(ctx context.Context, audio AudioResolver, w lexicon.Word) []convo.Fragment {
	url, err := audio.Resolve(ctx, w)
	if err != nil {
		log.Printf("quiz: definition audio for word %s: %v", w.ID, err)
	}
	if err == nil && url != "" {
		return []convo.Fragment{
			convo.Text("Listen to the definition and guess the word:"),
			convo.Audio(url),
		}
	}
	return []convo.Fragment{
		convo.Text("Read the definition and guess the word:"),
		convo.Text(w.Definition),
	}
}

// HintMessages builds the re-prompt for attempts 1 and 2. Pure: no external
// calls, no failure modes. Attempt 1 shows the definition (plus image when
// the word has one); attempt 2 adds the pre-recorded clip if there is one,
// otherwise the message is just the incorrect/not-understood prefix.
func HintMessages(w lexicon.Word, attempts int, transcript string) []convo.Fragment {
	var msgs []convo.Fragment

	if transcript != "" {
		msgs = append(msgs, convo.Text(fmt.Sprintf("Your input %q is incorrect. Try again!", transcript)))
	} else {
		msgs = append(msgs, convo.Text("I couldn't understand. Please, try again"))
	}

	if attempts == 1 {
		msgs = append(msgs, convo.Text("Here's a hint:"))
		if w.Image != "" {
			msgs = append(msgs, convo.Image(w.Image))
		}
		msgs = append(msgs, convo.Text(w.Definition, convo.Opt("I don't know", "Skip")))
	}

	if attempts == 2 && w.Audio != "" {
		msgs = append(msgs, convo.Text("Here's the final hint"))
		msgs = append(msgs, convo.Audio(w.Audio, convo.Opt("I don't know", "Skip")))
	}

	return msgs
}
