package languagetool

import "encoding/json"

// annotation is the "data" form field of a check request.
type annotation struct {
	Parts []part `json:"annotation"`
}

// part is one element of an annotation: plain text, or markup with an
// optional textual interpretation.
type part struct {
	Text        string
	Markup      *string
	InterpretAs string
}

// MarshalJSON writes {"text": ...} or {"markup": ..., "interpretAs": ...}.
func (p part) MarshalJSON() ([]byte, error) {
	if p.Markup == nil {
		return json.Marshal(struct {
			Text string `json:"text"`
		}{p.Text})
	}
	return json.Marshal(struct {
		Markup      string `json:"markup"`
		InterpretAs string `json:"interpretAs,omitempty"`
	}{*p.Markup, p.InterpretAs})
}

type checkResponse struct {
	Matches []rawMatch `json:"matches"`
}

type rawMatch struct {
	Message      string `json:"message"`
	ShortMessage string `json:"shortMessage"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Rule struct {
		ID       string `json:"id"`
		Category struct {
			ID string `json:"id"`
		} `json:"category"`
	} `json:"rule"`
}
