package publicapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/textfmt"
)

const (
	musicBrainzURL = "https://musicbrainz.org/ws/2/artist/"
	mealDBURL      = "https://www.themealdb.com/api/json/v1/1/search.php"
	openLibraryURL = "https://openlibrary.org/search.json"
	tvMazeURL      = "https://api.tvmaze.com/search/shows"

	MaxArtistTags           = 3
	MaxRecipes              = 5
	MaxIngredients          = 10
	RecipeInstructionsLimit = 300
	MaxBooks                = 10
	MaxBookAuthors          = 2
	MaxBookSubjects         = 3
	MaxTVShows              = 10
	MaxTVGenres             = 3
	TVSummaryLimit          = 200
)

type MediaService struct {
	client Fetcher
}

func NewMediaService(client Fetcher) *MediaService {
	return &MediaService{client: client}
}

// Artist returns the best MusicBrainz match for name.
func (s *MediaService) Artist(ctx context.Context, name string) (types.Artist, error) {
	res, err := s.client.GetJSON(ctx, withQuery(musicBrainzURL, url.Values{
		"query": {name},
		"fmt":   {"json"},
		"limit": {"3"},
	}), nil)
	if err != nil {
		return types.Artist{}, err
	}
	a := res.Get("artists.0")
	if !a.Exists() {
		return types.Artist{}, notFound("artist", name)
	}
	artist := types.Artist{
		Name:           textfmt.Or(a.Get("name").String(), "Unknown"),
		Disambiguation: a.Get("disambiguation").String(),
		Type:           a.Get("type").String(),
		Country:        a.Get("country").String(),
		Begin:          a.Get("life-span.begin").String(),
		End:            a.Get("life-span.end").String(),
		Score:          int(a.Get("score").Int()),
	}
	for _, tag := range textfmt.FirstN(a.Get("tags").Array(), MaxArtistTags) {
		if n := tag.Get("name").String(); n != "" {
			artist.Tags = append(artist.Tags, n)
		}
	}
	return artist, nil
}

// Recipes searches TheMealDB by name. A non-empty diet keeps only meals whose
// category or tags mention it; vegetarian also accepts vegan meals.
func (s *MediaService) Recipes(ctx context.Context, query, diet string, limit int) (types.RecipeSearch, error) {
	limit = textfmt.Clamp(limit, 1, MaxRecipes)
	res, err := s.client.GetJSON(ctx, withQuery(mealDBURL, url.Values{"s": {query}}), nil)
	if err != nil {
		return types.RecipeSearch{}, err
	}
	search := types.RecipeSearch{Query: query, Diet: strings.TrimSpace(diet)}
	for _, meal := range res.Get("meals").Array() {
		if !matchesDiet(meal, search.Diet) {
			continue
		}
		search.Total++
		if len(search.Recipes) < limit {
			search.Recipes = append(search.Recipes, toRecipe(meal))
		}
	}
	if len(search.Recipes) == 0 {
		if search.Diet != "" {
			return search, notFound("recipes with diet "+search.Diet+" for", query)
		}
		return search, notFound("recipes for", query)
	}
	return search, nil
}

func toRecipe(meal gjson.Result) types.Recipe {
	var ingredients []string
	for i := 1; i <= 20 && len(ingredients) < MaxIngredients; i++ {
		ingredient := strings.TrimSpace(meal.Get("strIngredient" + strconv.Itoa(i)).String())
		if ingredient == "" {
			continue
		}
		measure := strings.TrimSpace(meal.Get("strMeasure" + strconv.Itoa(i)).String())
		ingredients = append(ingredients, strings.TrimSpace(measure+" "+ingredient))
	}
	return types.Recipe{
		Name:         textfmt.Or(meal.Get("strMeal").String(), "Delicious Dish"),
		Category:     textfmt.Or(meal.Get("strCategory").String(), "N/A"),
		Area:         textfmt.Or(meal.Get("strArea").String(), "International"),
		Tags:         splitTags(meal.Get("strTags").String()),
		Ingredients:  ingredients,
		Instructions: textfmt.Truncate(textfmt.Or(meal.Get("strInstructions").String(), "Instructions not available"), RecipeInstructionsLimit),
		VideoURL:     meal.Get("strYoutube").String(),
		ImageURL:     meal.Get("strMealThumb").String(),
	}
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func matchesDiet(meal gjson.Result, diet string) bool {
	want := dietKey(diet)
	if want == "" {
		return true
	}
	candidates := append([]string{meal.Get("strCategory").String()}, splitTags(meal.Get("strTags").String())...)
	for _, c := range candidates {
		got := dietKey(c)
		if got == want || (want == "vegetarian" && got == "vegan") {
			return true
		}
	}
	return false
}

func dietKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", " ", "", "_", "").Replace(s)
}

// Books searches Open Library, returning at most limit entries (capped at MaxBooks).
func (s *MediaService) Books(ctx context.Context, query string, limit int) (types.BookSearch, error) {
	limit = textfmt.Clamp(limit, 1, MaxBooks)
	res, err := s.client.GetJSON(ctx, withQuery(openLibraryURL, url.Values{
		"q":      {query},
		"limit":  {strconv.Itoa(limit)},
		"fields": {"title,author_name,first_publish_year,isbn,subject"},
	}), nil)
	if err != nil {
		return types.BookSearch{}, err
	}
	docs := res.Get("docs").Array()
	if len(docs) == 0 {
		return types.BookSearch{Query: query}, notFound("books for", query)
	}
	search := types.BookSearch{Query: query}
	for _, doc := range textfmt.FirstN(docs, limit) {
		book := types.Book{
			Title:     textfmt.Or(doc.Get("title").String(), "Unknown Title"),
			Authors:   textfmt.FirstN(stringsOf(doc.Get("author_name")), MaxBookAuthors),
			Published: textfmt.Or(doc.Get("first_publish_year").String(), "Unknown"),
			ISBN:      doc.Get("isbn.0").String(),
			Subjects:  textfmt.FirstN(stringsOf(doc.Get("subject")), MaxBookSubjects),
		}
		if len(book.Authors) == 0 {
			book.Authors = []string{"Unknown Author"}
		}
		search.Books = append(search.Books, book)
	}
	search.Total = len(search.Books)
	return search, nil
}

// TVShows searches TVmaze, returning at most limit shows (capped at MaxTVShows).
func (s *MediaService) TVShows(ctx context.Context, query string, limit int) ([]types.TVShow, error) {
	limit = textfmt.Clamp(limit, 1, MaxTVShows)
	res, err := s.client.GetJSON(ctx, withQuery(tvMazeURL, url.Values{"q": {query}}), nil)
	if err != nil {
		return nil, err
	}
	hits := res.Array()
	if len(hits) == 0 {
		return nil, notFound("TV shows for", query)
	}
	shows := make([]types.TVShow, 0, limit)
	for _, hit := range textfmt.FirstN(hits, limit) {
		show := hit.Get("show")
		tv := types.TVShow{
			Name:      textfmt.Or(show.Get("name").String(), "Unknown"),
			Premiered: show.Get("premiered").String(),
			Status:    show.Get("status").String(),
			Network:   show.Get("network.name").String(),
			Genres:    textfmt.FirstN(stringsOf(show.Get("genres")), MaxTVGenres),
			Summary:   textfmt.Truncate(textfmt.StripHTML(show.Get("summary").String()), TVSummaryLimit),
			URL:       show.Get("url").String(),
		}
		if tv.Network == "" {
			tv.Network = show.Get("webChannel.name").String()
		}
		if r := show.Get("rating.average"); r.Type == gjson.Number {
			v := r.Float()
			tv.Rating = &v
		}
		shows = append(shows, tv)
	}
	return shows, nil
}
