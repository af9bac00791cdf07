package tools

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/curated-mcp/internal/logging"
	"github.com/roivaz/curated-mcp/internal/publicapi"
	"github.com/roivaz/curated-mcp/internal/upstream"
	"github.com/roivaz/curated-mcp/internal/upstream/upstreamtest"
)

func newClient(tr *upstreamtest.Transport) *upstream.Client {
	return upstream.New(
		upstream.WithHTTPClient(tr),
		upstream.WithLogger(logging.New(logr.Discard())),
		upstream.WithTimeout(50*time.Millisecond),
	)
}

func call(t *testing.T, adapter interface {
	ToolAdapter(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := adapter.ToolAdapter(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return res, text.Text
}

func TestGetWeatherParis(t *testing.T) {
	tr := upstreamtest.New().
		JSON("geocoding-api.open-meteo.com/v1/search", `{"results":[{"name":"Paris","latitude":48.85,"longitude":2.35,"country":"France"}]}`).
		JSON("api.open-meteo.com/v1/forecast", `{"current_weather":{"temperature":15,"windspeed":10,"winddirection":180,"weathercode":0,"time":"2026-10-17T12:00"}}`)
	h := &GetWeatherHandler{Service: publicapi.NewWeatherService(newClient(tr))}

	res, text := call(t, h, map[string]any{"city": "Paris"})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "Paris, France")
	assert.Contains(t, text, "15°C")
	assert.Contains(t, text, "59.0°F")
	assert.Contains(t, text, "Clear sky")
	assert.Contains(t, text, "10 km/h")
	assert.NotNil(t, res.StructuredContent)
}

func TestGetWeatherUnknownCity(t *testing.T) {
	tr := upstreamtest.New().
		JSON("geocoding-api.open-meteo.com/v1/search", `{}`).
		JSON("api.open-meteo.com/v1/forecast", `{"current_weather":{}}`)
	h := &GetWeatherHandler{Service: publicapi.NewWeatherService(newClient(tr))}

	res, text := call(t, h, map[string]any{"city": "Atlantis"})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "not found")
	assert.Equal(t, 1, tr.Calls())
}

func TestGetWeatherTimeout(t *testing.T) {
	tr := upstreamtest.New().Fallback(upstreamtest.Response{Delay: time.Second, Body: `{}`})
	h := &GetWeatherHandler{Service: publicapi.NewWeatherService(newClient(tr))}

	res, text := call(t, h, nil)
	assert.True(t, res.IsError)
	assert.Contains(t, text, errorMarker)
	assert.Contains(t, text, "timed out")
}

func TestSunriseSunsetValidatesCoordinates(t *testing.T) {
	tr := upstreamtest.New()
	h := &GetSunriseSunsetHandler{Service: publicapi.NewSunService(newClient(tr))}

	for _, args := range []map[string]any{
		{"latitude": 91.0},
		{"longitude": -181.0},
		{"latitude": "north"},
		{"date": "17/10/2026"},
	} {
		res, _ := call(t, h, args)
		assert.True(t, res.IsError, args)
	}
	assert.Zero(t, tr.Calls())
}

func TestSunriseSunsetDefaults(t *testing.T) {
	tr := upstreamtest.New().JSON("api.sunrise-sunset.org/json",
		`{"status":"OK","results":{"sunrise":"2026-10-17T11:10:00+00:00","sunset":"2026-10-17T22:15:00+00:00","solar_noon":"2026-10-17T16:42:00+00:00","day_length":39900}}`)
	h := &GetSunriseSunsetHandler{Service: publicapi.NewSunService(newClient(tr))}

	res, text := call(t, h, nil)
	assert.False(t, res.IsError)
	assert.Contains(t, text, "11:10:00")
	assert.Contains(t, text, "22:15:00")

	q := tr.Last().URL.Query()
	assert.Equal(t, "40.7128", q.Get("lat"))
	assert.Equal(t, "-74.006", q.Get("lng"))
	assert.Equal(t, "0", q.Get("formatted"))
}

func TestRandomJokeKinds(t *testing.T) {
	tr := upstreamtest.New().
		JSON("official-joke-api.appspot.com/random_joke", `{"type":"general","setup":"Why?","punchline":"Because."}`).
		JSON("official-joke-api.appspot.com/jokes/programming/random", `[{"type":"programming","setup":"Bug?","punchline":"Feature."}]`).
		JSON("icanhazdadjoke.com/", `{"joke":"I'm afraid for the calendar. Its days are numbered."}`)
	h := &GetRandomJokeHandler{Service: publicapi.NewJokeService(newClient(tr))}

	_, text := call(t, h, nil)
	assert.Contains(t, text, "General Joke")
	assert.Contains(t, text, "Because.")

	_, text = call(t, h, map[string]any{"type": "programming"})
	assert.Contains(t, text, "Programming Joke")
	assert.Contains(t, text, "Feature.")

	_, text = call(t, h, map[string]any{"type": "dad"})
	assert.Contains(t, text, "days are numbered")

	_, text = call(t, h, map[string]any{"type": "nonsense"})
	assert.Contains(t, text, "General Joke")
}

func TestNumberFactFallsBackToTrivia(t *testing.T) {
	tr := upstreamtest.New().JSON("numbersapi.com/7/trivia", `{"text":"7 is the number of days in a week.","number":7,"found":true}`)
	h := &GetNumberFactHandler{Service: publicapi.NewFactService(newClient(tr))}

	res, text := call(t, h, map[string]any{"number": 7.0, "fact_type": "astrology"})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "Trivia fact about 7")
	assert.Equal(t, 1, tr.CallsTo("numbersapi.com/7/trivia"))
}

func TestNumberFactRandom(t *testing.T) {
	tr := upstreamtest.New().JSON("numbersapi.com/random/math", `{"text":"12 is a dozen.","number":12,"found":true}`)
	h := &GetNumberFactHandler{Service: publicapi.NewFactService(newClient(tr))}

	_, text := call(t, h, map[string]any{"fact_type": "math"})
	assert.Contains(t, text, "Math fact about 12")
}

func TestNumberFactRejectsNonIntegers(t *testing.T) {
	tr := upstreamtest.New().Fallback(upstreamtest.Response{Body: `{"text":"x","found":true}`})
	h := &GetNumberFactHandler{Service: publicapi.NewFactService(newClient(tr))}

	for _, n := range []any{1e30, -1e30, 2.5, "7.25"} {
		res, text := call(t, h, map[string]any{"number": n})
		assert.True(t, res.IsError, n)
		assert.Contains(t, text, "number must be", n)
	}
	assert.Zero(t, tr.Calls())

	res, _ := call(t, h, map[string]any{"number": 2147483647.0})
	assert.False(t, res.IsError)
	assert.Equal(t, "/2147483647/trivia", tr.Last().URL.Path)
}

func TestLimitArgumentClampsBeforeConverting(t *testing.T) {
	assert.Equal(t, 10, limitArgument(map[string]any{"limit": 1e30}, "limit", 5, 1, 10))
	assert.Equal(t, 1, limitArgument(map[string]any{"limit": -1e30}, "limit", 5, 1, 10))
	assert.Equal(t, 2, limitArgument(map[string]any{"limit": 2.9}, "limit", 5, 1, 10))
	assert.Equal(t, 5, limitArgument(map[string]any{"limit": "lots"}, "limit", 5, 1, 10))
	assert.Equal(t, 5, limitArgument(nil, "limit", 5, 1, 10))
}

func TestTriviaClampsAmount(t *testing.T) {
	tr := upstreamtest.New().JSON("opentdb.com/api.php", `{"response_code":0,"results":[
		{"category":"Science","difficulty":"easy","question":"H&#039;s symbol?","correct_answer":"H","incorrect_answers":["He","O","N"]}]}`)
	h := &GetTriviaHandler{Service: publicapi.NewTriviaService(newClient(tr))}

	res, text := call(t, h, map[string]any{"amount": 50.0})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "H's symbol?")
	assert.Contains(t, text, "Answer: H")
	assert.Equal(t, "10", tr.Last().URL.Query().Get("amount"))
}

func TestTriviaNoResultsIsInformational(t *testing.T) {
	tr := upstreamtest.New().JSON("opentdb.com/api.php", `{"response_code":1,"results":[]}`)
	h := &GetTriviaHandler{Service: publicapi.NewTriviaService(newClient(tr))}

	res, text := call(t, h, map[string]any{"difficulty": "hard"})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "difficulty: hard")
}

func TestAPODRejectsBadDate(t *testing.T) {
	tr := upstreamtest.New()
	h := &GetNASAAPODHandler{Service: publicapi.NewSpaceService(newClient(tr), "")}

	res, text := call(t, h, map[string]any{"date": "yesterday"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "YYYY-MM-DD")
	assert.Zero(t, tr.Calls())
}

func TestAPODErrorPayload(t *testing.T) {
	tr := upstreamtest.New().Handle("api.nasa.gov/planetary/apod", upstreamtest.Response{
		Status: 403,
		Body:   `{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`,
	})
	h := &GetNASAAPODHandler{Service: publicapi.NewSpaceService(newClient(tr), "bad")}

	res, text := call(t, h, nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "❌ NASA API error: An invalid api_key was supplied.", text)
}

func TestPeopleInSpaceGroupsByCraft(t *testing.T) {
	tr := upstreamtest.New().JSON("api.open-notify.org/astros.json", `{"number":3,"message":"success","people":[
		{"name":"A","craft":"ISS"},{"name":"B","craft":"Tiangong"},{"name":"C","craft":"ISS"}]}`)
	h := &GetPeopleInSpaceHandler{Service: publicapi.NewSpaceService(newClient(tr), "")}

	_, text := call(t, h, nil)
	assert.Contains(t, text, "3 people in space")
	assert.Regexp(t, `(?s)ISS\n\s+• A\n\s+• C\n🚀 Tiangong`, text)
}

func TestSearchArtistRequiresName(t *testing.T) {
	tr := upstreamtest.New()
	h := &SearchArtistHandler{Service: publicapi.NewMediaService(newClient(tr))}

	res, _ := call(t, h, map[string]any{"artist_name": "  "})
	assert.True(t, res.IsError)
	assert.Zero(t, tr.Calls())
}

func TestSearchArtist(t *testing.T) {
	tr := upstreamtest.New().JSON("musicbrainz.org/ws/2/artist/", `{"artists":[{"name":"Radiohead","type":"Group","country":"GB","score":100,
		"life-span":{"begin":"1985"},"tags":[{"name":"rock"},{"name":"alternative"},{"name":"art rock"},{"name":"britpop"}]}]}`)
	h := &SearchArtistHandler{Service: publicapi.NewMediaService(newClient(tr))}

	_, text := call(t, h, map[string]any{"artist_name": "Radiohead"})
	assert.Contains(t, text, "Artist: Radiohead")
	assert.Contains(t, text, "1985 - present")
	assert.Contains(t, text, "Genres: rock, alternative, art rock\n")
	assert.Contains(t, text, "Score: 100/100")
}

func TestSearchBooksCapsLimit(t *testing.T) {
	tr := upstreamtest.New().JSON("openlibrary.org/search.json", `{"docs":[{"title":"Dune","author_name":["Frank Herbert"],"first_publish_year":1965}]}`)
	h := &SearchBooksHandler{Service: publicapi.NewMediaService(newClient(tr))}

	_, text := call(t, h, map[string]any{"query": "dune", "limit": 15.0})
	assert.Contains(t, text, "Found 1 books for 'dune'")
	assert.Contains(t, text, "By: Frank Herbert")
	assert.Equal(t, "10", tr.Last().URL.Query().Get("limit"))
}

func TestSearchBooksNoMatches(t *testing.T) {
	tr := upstreamtest.New().JSON("openlibrary.org/search.json", `{"docs":[]}`)
	h := &SearchBooksHandler{Service: publicapi.NewMediaService(newClient(tr))}

	res, text := call(t, h, map[string]any{"query": "zzzz"})
	assert.False(t, res.IsError)
	assert.Equal(t, "📚 No books found for 'zzzz'", text)
}

func TestSearchRecipesDietMiss(t *testing.T) {
	tr := upstreamtest.New().JSON("www.themealdb.com/api/json/v1/1/search.php",
		`{"meals":[{"strMeal":"Beef Stew","strCategory":"Beef","strArea":"British","strTags":"Stew"}]}`)
	h := &SearchRecipesHandler{Service: publicapi.NewMediaService(newClient(tr))}

	res, text := call(t, h, map[string]any{"query": "stew", "diet": "vegan"})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "No vegan recipes found for 'stew'")
}

func TestSearchTVShowsServerError(t *testing.T) {
	tr := upstreamtest.New().Handle("api.tvmaze.com/search/shows", upstreamtest.Response{Status: 500})
	h := &SearchTVShowsHandler{Service: publicapi.NewMediaService(newClient(tr))}

	res, text := call(t, h, map[string]any{"query": "office"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "❌ Error searching TV shows")
	assert.Contains(t, text, "500")
}

func TestCountryInfo(t *testing.T) {
	tr := upstreamtest.New().JSON("restcountries.com/v3.1/name/japan", `[{"name":{"common":"Japan","official":"Japan"},
		"capital":["Tokyo"],"region":"Asia","subregion":"Eastern Asia","population":125836021,"area":377930,
		"languages":{"jpn":"Japanese"},"currencies":{"JPY":{"name":"Japanese yen","symbol":"¥"}},"flag":"🇯🇵"}]`)
	h := &GetCountryInfoHandler{Service: publicapi.NewCountryService(newClient(tr))}

	_, text := call(t, h, map[string]any{"name": "japan"})
	assert.Contains(t, text, "🇯🇵 Japan")
	assert.Contains(t, text, "Capital: Tokyo")
	assert.Contains(t, text, "Population: 125,836,021")
	assert.Contains(t, text, "Japanese yen (¥)")
}

func TestCountryInfoNotFound(t *testing.T) {
	tr := upstreamtest.New()
	h := &GetCountryInfoHandler{Service: publicapi.NewCountryService(newClient(tr))}

	res, text := call(t, h, map[string]any{"name": "Narnia"})
	assert.False(t, res.IsError)
	assert.Contains(t, text, "Country 'Narnia' not found")
}
