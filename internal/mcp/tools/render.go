package tools

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/textfmt"
)

// WMO weather interpretation codes used by Open-Meteo.
var weatherCodes = map[int]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Fog", 48: "Depositing rime fog",
	51: "Light drizzle", 53: "Drizzle", 55: "Dense drizzle",
	61: "Slight rain", 63: "Rain", 65: "Heavy rain",
	71: "Slight snow", 73: "Snow", 75: "Heavy snow", 77: "Snow grains",
	80: "Rain showers", 81: "Heavy rain showers", 82: "Violent rain showers",
	85: "Snow showers", 86: "Heavy snow showers",
	95: "Thunderstorm", 96: "Thunderstorm with hail", 99: "Thunderstorm with heavy hail",
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalNum(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return num(*v)
}

func renderWeather(r types.WeatherReport) string {
	var b strings.Builder
	place := r.City
	if r.Location.Country != "" {
		place += ", " + r.Location.Country
	}
	fmt.Fprintf(&b, "🌤️ Weather in %s\n\n", place)
	fmt.Fprintf(&b, "🌡️ Temperature: %s°C (%.1f°F)\n", num(r.TemperatureC), r.TemperatureF)
	if r.WeatherCode != nil {
		if desc, ok := weatherCodes[*r.WeatherCode]; ok {
			fmt.Fprintf(&b, "☁️ Conditions: %s\n", desc)
		}
	}
	fmt.Fprintf(&b, "💨 Wind Speed: %s km/h\n", optionalNum(r.WindSpeedKmh))
	fmt.Fprintf(&b, "🧭 Wind Direction: %s°\n", optionalNum(r.WindDirection))
	fmt.Fprintf(&b, "⏰ Time: %s", textfmt.Or(r.Time, "N/A"))
	return b.String()
}

func renderSunTimes(s types.SunTimes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌅 Sun times for %s, %s", num(s.Latitude), num(s.Longitude))
	if s.Date != "" {
		fmt.Fprintf(&b, " on %s", s.Date)
	}
	b.WriteString(" (UTC)\n\n")
	fmt.Fprintf(&b, "🌄 Sunrise: %s\n", clockTime(s.Sunrise))
	fmt.Fprintf(&b, "🌇 Sunset: %s\n", clockTime(s.Sunset))
	fmt.Fprintf(&b, "☀️ Solar noon: %s\n", clockTime(s.SolarNoon))
	if s.CivilDawn != "" && s.CivilDusk != "" {
		fmt.Fprintf(&b, "🌗 Civil twilight: %s - %s\n", clockTime(s.CivilDawn), clockTime(s.CivilDusk))
	}
	fmt.Fprintf(&b, "⏳ Day length: %s", s.DayLength)
	return b.String()
}

// clockTime renders an RFC 3339 timestamp as HH:MM:SS, passing anything else through.
func clockTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return textfmt.Or(ts, "N/A")
	}
	return t.UTC().Format(time.TimeOnly)
}

func renderJoke(j types.Joke) string {
	if j.Text != "" {
		return "😄 Dad Joke:\n\n" + j.Text
	}
	return fmt.Sprintf("😂 %s Joke:\n\n%s\n\n%s", titleCase(j.Kind), j.Setup, j.Punchline)
}

func titleCase(kind string) string {
	parts := strings.Split(kind, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-")
}

func renderFact(f types.Fact) string {
	return "🤓 Random Fact:\n\n" + f.Text
}

func renderQuote(q types.Quote) string {
	return fmt.Sprintf("💬 \"%s\"\n\n- %s", q.Text, q.Author)
}

func renderNumberFact(f types.NumberFact) string {
	return fmt.Sprintf("🔢 %s fact about %s:\n\n%s", titleCase(f.FactType), f.Number, f.Text)
}

func renderTrivia(questions []types.TriviaQuestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧠 Trivia (%d question", len(questions))
	if len(questions) != 1 {
		b.WriteString("s")
	}
	b.WriteString("):\n\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
		fmt.Fprintf(&b, "   🏷️ %s (%s)\n", q.Category, q.Difficulty)
		for j, choice := range q.Choices {
			fmt.Fprintf(&b, "   %c) %s\n", 'A'+j, choice)
		}
		fmt.Fprintf(&b, "   ✅ Answer: %s\n\n", q.CorrectAnswer)
	}
	return strings.TrimSpace(b.String())
}

func renderAPOD(a types.APOD) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚀 NASA APOD - %s\n\n", a.Date)
	fmt.Fprintf(&b, "✨ %s\n\n", a.Title)
	fmt.Fprintf(&b, "📝 %s\n\n", a.Explanation)
	if a.Copyright != "" {
		fmt.Fprintf(&b, "©️ %s\n", strings.TrimSpace(a.Copyright))
	}
	fmt.Fprintf(&b, "🔗 Image URL: %s\n", a.URL)
	fmt.Fprintf(&b, "🔗 HD URL: %s", textfmt.Or(a.HDURL, "Same as above"))
	return b.String()
}

func renderISS(p types.ISSPosition) string {
	var b strings.Builder
	b.WriteString("🛰️ International Space Station\n\n")
	fmt.Fprintf(&b, "📍 Latitude: %.4f\n", p.Latitude)
	fmt.Fprintf(&b, "📍 Longitude: %.4f\n", p.Longitude)
	if p.Timestamp > 0 {
		fmt.Fprintf(&b, "⏰ Time: %s", time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339))
	}
	return strings.TrimSpace(b.String())
}

func renderAstronauts(a types.Astronauts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👩‍🚀 %d people in space right now", a.Total)
	if len(a.People) < a.Total {
		fmt.Fprintf(&b, " (showing %d)", len(a.People))
	}
	b.WriteString(":\n\n")
	var crafts []string
	byCraft := map[string][]string{}
	for _, p := range a.People {
		if _, seen := byCraft[p.Craft]; !seen {
			crafts = append(crafts, p.Craft)
		}
		byCraft[p.Craft] = append(byCraft[p.Craft], p.Name)
	}
	for _, craft := range crafts {
		fmt.Fprintf(&b, "🚀 %s\n", craft)
		for _, name := range byCraft[craft] {
			fmt.Fprintf(&b, "   • %s\n", name)
		}
	}
	return strings.TrimSpace(b.String())
}

func renderArtist(a types.Artist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎵 Artist: %s\n\n", a.Name)
	if a.Disambiguation != "" {
		fmt.Fprintf(&b, "🏷️ Type: %s\n", a.Disambiguation)
	} else if a.Type != "" {
		fmt.Fprintf(&b, "🏷️ Type: %s\n", a.Type)
	}
	if a.Country != "" {
		fmt.Fprintf(&b, "🌍 Country: %s\n", a.Country)
	}
	if a.Begin != "" {
		fmt.Fprintf(&b, "📅 Active: %s - %s\n", a.Begin, textfmt.Or(a.End, "present"))
	}
	if len(a.Tags) > 0 {
		fmt.Fprintf(&b, "🎼 Genres: %s\n", strings.Join(a.Tags, ", "))
	}
	fmt.Fprintf(&b, "⭐ Score: %d/100", a.Score)
	return b.String()
}

func renderRecipes(s types.RecipeSearch) string {
	parts := make([]string, 0, len(s.Recipes))
	for _, r := range s.Recipes {
		parts = append(parts, renderRecipe(r))
	}
	out := strings.Join(parts, "\n\n---\n\n")
	if s.Total > len(s.Recipes) {
		out += fmt.Sprintf("\n\n🔎 %d more recipe(s) match '%s'.", s.Total-len(s.Recipes), s.Query)
	}
	return out
}

func renderRecipe(r types.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍳 Recipe: %s\n\n", r.Name)
	fmt.Fprintf(&b, "🏷️ Category: %s\n", r.Category)
	fmt.Fprintf(&b, "🌍 Origin: %s\n\n", r.Area)
	if len(r.Ingredients) > 0 {
		b.WriteString("📋 Ingredients:\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "• %s\n", ing)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "👩‍🍳 Instructions:\n%s\n\n", r.Instructions)
	if r.VideoURL != "" {
		fmt.Fprintf(&b, "📺 Video: %s\n", r.VideoURL)
	}
	if r.ImageURL != "" {
		fmt.Fprintf(&b, "🖼️ Image: %s", r.ImageURL)
	}
	return strings.TrimSpace(b.String())
}

func renderBooks(s types.BookSearch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 Found %d books for '%s':\n\n", s.Total, s.Query)
	for i, book := range s.Books {
		fmt.Fprintf(&b, "%d. 📖 %s\n", i+1, book.Title)
		fmt.Fprintf(&b, "   ✍️ By: %s\n", strings.Join(book.Authors, ", "))
		fmt.Fprintf(&b, "   📅 Published: %s\n", book.Published)
		if book.ISBN != "" {
			fmt.Fprintf(&b, "   📄 ISBN: %s\n", book.ISBN)
		}
		if len(book.Subjects) > 0 {
			fmt.Fprintf(&b, "   🏷️ Subjects: %s\n", strings.Join(book.Subjects, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderTVShows(query string, shows []types.TVShow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📺 Found %d shows for '%s':\n\n", len(shows), query)
	for i, s := range shows {
		fmt.Fprintf(&b, "%d. 🎬 %s", i+1, s.Name)
		if len(s.Premiered) >= 4 {
			fmt.Fprintf(&b, " (%s)", s.Premiered[:4])
		}
		b.WriteString("\n")
		if s.Network != "" || s.Status != "" {
			fmt.Fprintf(&b, "   📡 %s\n", strings.Trim(s.Network+" · "+s.Status, " ·"))
		}
		if len(s.Genres) > 0 {
			fmt.Fprintf(&b, "   🏷️ Genres: %s\n", strings.Join(s.Genres, ", "))
		}
		if s.Rating != nil {
			fmt.Fprintf(&b, "   ⭐ Rating: %s/10\n", num(*s.Rating))
		}
		if s.Summary != "" {
			fmt.Fprintf(&b, "   📝 %s\n", s.Summary)
		}
		if s.URL != "" {
			fmt.Fprintf(&b, "   🔗 %s\n", s.URL)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderCountry(c types.Country) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", textfmt.Or(c.Flag, "🏳️"), c.CommonName)
	if c.OfficialName != "" && c.OfficialName != c.CommonName {
		fmt.Fprintf(&b, "📜 Official name: %s\n", c.OfficialName)
	}
	if c.Capital != "" {
		fmt.Fprintf(&b, "🏛️ Capital: %s\n", c.Capital)
	}
	if c.Region != "" {
		region := c.Region
		if c.Subregion != "" {
			region += " / " + c.Subregion
		}
		fmt.Fprintf(&b, "🌍 Region: %s\n", region)
	}
	fmt.Fprintf(&b, "👥 Population: %s\n", humanize.Comma(c.Population))
	if c.AreaKm2 > 0 {
		fmt.Fprintf(&b, "📐 Area: %s km²\n", humanize.Commaf(c.AreaKm2))
	}
	if len(c.Languages) > 0 {
		fmt.Fprintf(&b, "🗣️ Languages: %s\n", strings.Join(c.Languages, ", "))
	}
	if len(c.Currencies) > 0 {
		fmt.Fprintf(&b, "💰 Currencies: %s\n", strings.Join(c.Currencies, ", "))
	}
	if c.MapsURL != "" {
		fmt.Fprintf(&b, "🗺️ Map: %s", c.MapsURL)
	}
	return strings.TrimSpace(b.String())
}
