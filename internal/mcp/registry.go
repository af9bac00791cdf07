package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/mcp/tools"
	"github.com/roivaz/curated-mcp/internal/publicapi"
)

// Services groups the upstream-backed services the tool adapters call.
type Services struct {
	Weather   *publicapi.WeatherService
	Sun       *publicapi.SunService
	Jokes     *publicapi.JokeService
	Facts     *publicapi.FactService
	Trivia    *publicapi.TriviaService
	Space     *publicapi.SpaceService
	Media     *publicapi.MediaService
	Countries *publicapi.CountryService
}

func NewServices(client publicapi.Fetcher, nasaAPIKey string) Services {
	return Services{
		Weather:   publicapi.NewWeatherService(client),
		Sun:       publicapi.NewSunService(client),
		Jokes:     publicapi.NewJokeService(client),
		Facts:     publicapi.NewFactService(client),
		Trivia:    publicapi.NewTriviaService(client),
		Space:     publicapi.NewSpaceService(client, nasaAPIKey),
		Media:     publicapi.NewMediaService(client),
		Countries: publicapi.NewCountryService(client),
	}
}

// ToolAdapters maps every catalog tool name to its adapter.
func ToolAdapters(svc Services) map[string]ToolAdapter {
	artist := &tools.SearchArtistHandler{Service: svc.Media}
	return map[string]ToolAdapter{
		"get_weather":           &tools.GetWeatherHandler{Service: svc.Weather},
		"get_random_joke":       &tools.GetRandomJokeHandler{Service: svc.Jokes},
		"get_random_fact":       &tools.GetRandomFactHandler{Service: svc.Facts},
		"get_nasa_apod":         &tools.GetNASAAPODHandler{Service: svc.Space},
		"search_artist":         artist,
		"search_spotify_artist": artist,
		"search_recipes":        &tools.SearchRecipesHandler{Service: svc.Media},
		"search_books":          &tools.SearchBooksHandler{Service: svc.Media},
		"search_tv_shows":       &tools.SearchTVShowsHandler{Service: svc.Media},
		"get_trivia":            &tools.GetTriviaHandler{Service: svc.Trivia},
		"get_random_quote":      &tools.GetRandomQuoteHandler{Service: svc.Facts},
		"get_iss_location":      &tools.GetISSLocationHandler{Service: svc.Space},
		"get_people_in_space":   &tools.GetPeopleInSpaceHandler{Service: svc.Space},
		"get_country_info":      &tools.GetCountryInfoHandler{Service: svc.Countries},
		"get_sunrise_sunset":    &tools.GetSunriseSunsetHandler{Service: svc.Sun},
		"get_number_fact":       &tools.GetNumberFactHandler{Service: svc.Facts},
	}
}

func artistTool(name string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription("Look up a music artist on MusicBrainz. Returns type, country, active years, genres and match score."),
		mcp.WithString("artist_name",
			mcp.Required(),
			mcp.Description("Artist or band name (e.g., 'Radiohead')"),
		),
	)
}

// ToolDefinitions returns the schema of every tool in the catalog.
func ToolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"get_weather": mcp.NewTool("get_weather",
			mcp.WithDescription("Get current weather for a city using Open-Meteo. Returns temperature in Celsius and Fahrenheit, conditions, wind and observation time."),
			mcp.WithString("city",
				mcp.Description("City name (default: New York)"),
			),
		),
		"get_random_joke": mcp.NewTool("get_random_joke",
			mcp.WithDescription("Get a random joke."),
			mcp.WithString("type",
				mcp.Description("Joke type: general, programming, knock-knock or dad (default: general; unknown types fall back to general)"),
			),
		),
		"get_random_fact": mcp.NewTool("get_random_fact",
			mcp.WithDescription("Get a random useless but true fact."),
		),
		"get_nasa_apod": mcp.NewTool("get_nasa_apod",
			mcp.WithDescription("Get NASA's Astronomy Picture of the Day with title, explanation and image links."),
			mcp.WithString("date",
				mcp.Description("Date in YYYY-MM-DD format (default: today)"),
			),
		),
		"search_artist":         artistTool("search_artist"),
		"search_spotify_artist": artistTool("search_spotify_artist"),
		"search_recipes": mcp.NewTool("search_recipes",
			mcp.WithDescription("Search TheMealDB for recipes with ingredients and instructions."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Dish name or keyword (e.g., 'pasta')"),
			),
			mcp.WithString("diet",
				mcp.Description("Optional: keep only recipes matching a diet (e.g., 'vegetarian', 'vegan')"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Number of recipes to return, 1-5 (default: 1)"),
			),
		),
		"search_books": mcp.NewTool("search_books",
			mcp.WithDescription("Search Open Library for books. Returns title, authors, first publication year, ISBN and subjects."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Title, author or keyword"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of books, 1-10 (default: 5)"),
			),
		),
		"search_tv_shows": mcp.NewTool("search_tv_shows",
			mcp.WithDescription("Search TVmaze for TV shows. Returns premiere year, network, genres, rating and a short summary."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Show name or keyword"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of shows, 1-10 (default: 5)"),
			),
		),
		"get_trivia": mcp.NewTool("get_trivia",
			mcp.WithDescription("Get multiple-choice trivia questions from the Open Trivia Database, answers included."),
			mcp.WithNumber("amount",
				mcp.Description("Number of questions, 1-10 (default: 3)"),
			),
			mcp.WithString("difficulty",
				mcp.Description("Optional difficulty filter: easy, medium or hard (case-insensitive; other values are ignored)"),
			),
		),
		"get_random_quote": mcp.NewTool("get_random_quote",
			mcp.WithDescription("Get a random inspirational quote from ZenQuotes."),
		),
		"get_iss_location": mcp.NewTool("get_iss_location",
			mcp.WithDescription("Get the current position of the International Space Station."),
		),
		"get_people_in_space": mcp.NewTool("get_people_in_space",
			mcp.WithDescription("List the people currently in space, grouped by spacecraft."),
		),
		"get_country_info": mcp.NewTool("get_country_info",
			mcp.WithDescription("Get facts about a country: capital, region, population, area, languages and currencies."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Country name (e.g., 'Japan')"),
			),
		),
		"get_sunrise_sunset": mcp.NewTool("get_sunrise_sunset",
			mcp.WithDescription("Get sunrise, sunset, solar noon and day length (UTC) for a coordinate."),
			mcp.WithNumber("latitude",
				mcp.Description("Latitude, -90 to 90 (default: 40.7128)"),
			),
			mcp.WithNumber("longitude",
				mcp.Description("Longitude, -180 to 180 (default: -74.0060)"),
			),
			mcp.WithString("date",
				mcp.Description("Date in YYYY-MM-DD format (default: today)"),
			),
		),
		"get_number_fact": mcp.NewTool("get_number_fact",
			mcp.WithDescription("Get a fact about a number from Numbers API."),
			mcp.WithNumber("number",
				mcp.Description("Whole number to look up, within 32-bit integer range (default: random)"),
			),
			mcp.WithString("fact_type",
				mcp.Description("trivia, math, date or year (default: trivia; unknown types fall back to trivia)"),
			),
		),
	}
}
