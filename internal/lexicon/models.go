package lexicon

type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Word is an immutable vocabulary item. Image and Audio are optional
// references to an illustration and a pre-recorded pronunciation clip.
type Word struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Image      string `json:"image,omitempty"`
	Audio      string `json:"audio,omitempty"`
}
