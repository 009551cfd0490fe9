package quiz

import (
	"encoding/json"

	"github.com/vocamind/vocamind-skill/internal/lexicon"
)

// sessionRoundKey holds the serialized round in the session attributes. The
// word is embedded by value so no store lookup is needed on later turns, and
// the attempt counter lives nowhere else.
const sessionRoundKey = "round"

type roundState struct {
	Word     lexicon.Word `json:"word"`
	Attempts int          `json:"attempts"`
}

// loadRound reports whether the session carries an active round. A missing
// or undecodable payload means no round.
func loadRound(attrs map[string]string) (roundState, bool) {
	raw, ok := attrs[sessionRoundKey]
	if !ok || raw == "" {
		return roundState{}, false
	}
	var rs roundState
	if err := json.Unmarshal([]byte(raw), &rs); err != nil || rs.Word.Word == "" {
		return roundState{}, false
	}
	return rs, true
}

func saveRound(rs roundState) map[string]string {
	buf, err := json.Marshal(rs)
	if err != nil {
		return map[string]string{}
	}
	return map[string]string{sessionRoundKey: string(buf)}
}
