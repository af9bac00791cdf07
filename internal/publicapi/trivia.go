package publicapi

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

const openTriviaURL = "https://opentdb.com/api.php"

// TriviaDifficulties lists the accepted difficulty filters.
var TriviaDifficulties = []string{"easy", "medium", "hard"}

type TriviaService struct {
	client Fetcher
}

func NewTriviaService(client Fetcher) *TriviaService {
	return &TriviaService{client: client}
}

// Questions fetches amount multiple-choice questions. difficulty is ignored when
// it is not one of TriviaDifficulties.
func (s *TriviaService) Questions(ctx context.Context, amount int, difficulty string) ([]types.TriviaQuestion, error) {
	q := url.Values{
		"amount": {strconv.Itoa(amount)},
		"type":   {"multiple"},
	}
	if d := NormalizeDifficulty(difficulty); d != "" {
		q.Set("difficulty", d)
	}
	res, err := s.client.GetJSON(ctx, withQuery(openTriviaURL, q), nil)
	if err != nil {
		return nil, err
	}
	// 1 means no results, 2-5 are token or parameter problems; all are reported as no questions.
	if code := res.Get("response_code").Int(); code != 0 {
		return nil, fmt.Errorf("open trivia response code %d: %w", code, notFound("trivia questions for difficulty", orAny(difficulty)))
	}

	var out []types.TriviaQuestion
	for _, item := range res.Get("results").Array() {
		if len(out) == amount {
			break
		}
		correct := html.UnescapeString(item.Get("correct_answer").String())
		choices := []string{correct}
		for _, wrong := range item.Get("incorrect_answers").Array() {
			choices = append(choices, html.UnescapeString(wrong.String()))
		}
		sort.Strings(choices)
		out = append(out, types.TriviaQuestion{
			Category:      html.UnescapeString(item.Get("category").String()),
			Difficulty:    item.Get("difficulty").String(),
			Question:      html.UnescapeString(item.Get("question").String()),
			CorrectAnswer: correct,
			Choices:       choices,
		})
	}
	if len(out) == 0 {
		return nil, notFound("trivia questions for difficulty", orAny(difficulty))
	}
	return out, nil
}

// NormalizeDifficulty returns the lower-cased difficulty or "" when unknown.
func NormalizeDifficulty(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	for _, known := range TriviaDifficulties {
		if d == known {
			return d
		}
	}
	return ""
}

func orAny(s string) string {
	if NormalizeDifficulty(s) == "" {
		return "any"
	}
	return NormalizeDifficulty(s)
}
