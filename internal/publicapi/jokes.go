package publicapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

const (
	officialJokeURL = "https://official-joke-api.appspot.com"
	dadJokeURL      = "https://icanhazdadjoke.com/"

	JokeGeneral     = "general"
	JokeProgramming = "programming"
	JokeKnockKnock  = "knock-knock"
	JokeDad         = "dad"

	defaultDadJoke = "Why don't scientists trust atoms? Because they make up everything!"
)

// JokeKinds lists the accepted joke types.
var JokeKinds = []string{JokeGeneral, JokeProgramming, JokeKnockKnock, JokeDad}

// RandomJokeURL is the official joke API's mixed random endpoint.
func RandomJokeURL() string { return officialJokeURL + "/random_joke" }

// NormalizeJokeKind maps free-form input onto a known kind, defaulting to general.
func NormalizeJokeKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	for _, known := range JokeKinds {
		if k == known {
			return k
		}
	}
	return JokeGeneral
}

type JokeService struct {
	client Fetcher
}

func NewJokeService(client Fetcher) *JokeService {
	return &JokeService{client: client}
}

func (s *JokeService) RandomJoke(ctx context.Context, kind string) (types.Joke, error) {
	kind = NormalizeJokeKind(kind)
	switch kind {
	case JokeDad:
		res, err := s.client.GetJSON(ctx, dadJokeURL, http.Header{"Accept": []string{"application/json"}})
		if err != nil {
			return types.Joke{}, err
		}
		text := res.Get("joke").String()
		if text == "" {
			text = defaultDadJoke
		}
		return types.Joke{Kind: kind, Text: text}, nil
	case JokeProgramming, JokeKnockKnock:
		res, err := s.client.GetJSON(ctx, officialJokeURL+"/jokes/"+kind+"/random", nil)
		if err != nil {
			return types.Joke{}, err
		}
		joke := res.Get("0")
		return types.Joke{Kind: kind, Setup: joke.Get("setup").String(), Punchline: joke.Get("punchline").String()}, nil
	default:
		res, err := s.client.GetJSON(ctx, RandomJokeURL(), nil)
		if err != nil {
			return types.Joke{}, err
		}
		return types.Joke{Kind: kind, Setup: res.Get("setup").String(), Punchline: res.Get("punchline").String()}, nil
	}
}
