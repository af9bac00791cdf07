package types

type Joke struct {
	Kind      string `json:"kind"`
	Setup     string `json:"setup,omitempty"`
	Punchline string `json:"punchline,omitempty"`
	// Text is set for single-line jokes.
	Text string `json:"text,omitempty"`
}

type Fact struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type NumberFact struct {
	Number   string `json:"number"`
	FactType string `json:"fact_type"`
	Text     string `json:"text"`
	Found    bool   `json:"found"`
}

type TriviaQuestion struct {
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Choices       []string `json:"choices"`
}
