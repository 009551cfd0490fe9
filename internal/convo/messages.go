package convo

import "encoding/json"

// Fragment is one element of the rich-message list rendered to the user.
// Type is "text", "audio" or "image"; options attach button-style replies.
type Fragment struct {
	Type    string   `json:"type"`
	Text    string   `json:"text,omitempty"`
	URL     string   `json:"url,omitempty"`
	Options []Option `json:"options,omitempty"`
}

type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

func Text(s string, opts ...Option) Fragment {
	return Fragment{Type: "text", Text: s, Options: opts}
}

func Audio(url string, opts ...Option) Fragment {
	return Fragment{Type: "audio", URL: url, Options: opts}
}

func Image(url string, opts ...Option) Fragment {
	return Fragment{Type: "image", URL: url, Options: opts}
}

func Opt(text, value string) Option { return Option{Text: text, Value: value} }

// Render encodes a fragment list into the message content string carried in
// the PlainText envelope.
func Render(frags []Fragment) string {
	b, err := json.Marshal(frags)
	if err != nil {
		return ""
	}
	return string(b)
}
