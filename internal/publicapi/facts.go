package publicapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

const (
	uselessFactURL = "https://uselessfacts.jsph.pl/api/v2/facts/random"
	zenQuoteURL    = "https://zenquotes.io/api/random"
	numbersURL     = "http://numbersapi.com"

	defaultFact        = "Did you know? Octopuses have three hearts!"
	defaultQuote       = "The best way to get started is to quit talking and begin doing."
	defaultQuoteAuthor = "Walt Disney"

	FactTrivia = "trivia"
	FactMath   = "math"
	FactDate   = "date"
	FactYear   = "year"
)

// NumberFactTypes lists the numbersapi categories.
var NumberFactTypes = []string{FactTrivia, FactMath, FactDate, FactYear}

// NormalizeFactType returns factType when it is a known category and trivia otherwise.
func NormalizeFactType(factType string) string {
	t := strings.ToLower(strings.TrimSpace(factType))
	for _, known := range NumberFactTypes {
		if t == known {
			return t
		}
	}
	return FactTrivia
}

type FactService struct {
	client Fetcher
}

func NewFactService(client Fetcher) *FactService {
	return &FactService{client: client}
}

func (s *FactService) RandomFact(ctx context.Context) (types.Fact, error) {
	res, err := s.client.GetJSON(ctx, withQuery(uselessFactURL, url.Values{"language": {"en"}}), nil)
	if err != nil {
		return types.Fact{}, err
	}
	text := res.Get("text").String()
	if text == "" {
		text = defaultFact
	}
	return types.Fact{Text: text, Source: res.Get("source_url").String()}, nil
}

func (s *FactService) RandomQuote(ctx context.Context) (types.Quote, error) {
	res, err := s.client.GetJSON(ctx, zenQuoteURL, nil)
	if err != nil {
		return types.Quote{}, err
	}
	first := res.Get("0")
	q := types.Quote{Text: first.Get("q").String(), Author: first.Get("a").String()}
	if q.Text == "" {
		q = types.Quote{Text: defaultQuote, Author: defaultQuoteAuthor}
	}
	if q.Author == "" {
		q.Author = "Unknown"
	}
	return q, nil
}

// NumberFact fetches a fact about number, or a random number when number is nil.
func (s *FactService) NumberFact(ctx context.Context, number *int, factType string) (types.NumberFact, error) {
	factType = NormalizeFactType(factType)
	subject := "random"
	if number != nil {
		subject = strconv.Itoa(*number)
	}
	rawURL := fmt.Sprintf("%s/%s/%s?json", numbersURL, subject, factType)
	res, err := s.client.GetJSON(ctx, rawURL, http.Header{"Accept": []string{"application/json"}})
	if err != nil {
		return types.NumberFact{}, err
	}
	fact := types.NumberFact{
		Number:   res.Get("number").String(),
		FactType: factType,
		Text:     res.Get("text").String(),
		Found:    res.Get("found").Bool(),
	}
	if fact.Number == "" {
		fact.Number = subject
	}
	if fact.Text == "" {
		fact.Text = fmt.Sprintf("%s is a number without a recorded %s fact.", fact.Number, factType)
	}
	return fact, nil
}
