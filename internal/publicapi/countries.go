package publicapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/textfmt"
	"github.com/roivaz/curated-mcp/internal/upstream"
)

const (
	restCountriesURL = "https://restcountries.com/v3.1/name/"

	MaxCountryLanguages  = 3
	MaxCountryCurrencies = 3
)

type CountryService struct {
	client Fetcher
}

func NewCountryService(client Fetcher) *CountryService {
	return &CountryService{client: client}
}

// Country looks a country up by name. When several match, an exact common or
// official name match wins over the first result.
func (s *CountryService) Country(ctx context.Context, name string) (types.Country, error) {
	rawURL := restCountriesURL + url.PathEscape(strings.TrimSpace(name)) + "?" + url.Values{
		"fields": {"name,capital,region,subregion,population,area,languages,currencies,flag,maps"},
	}.Encode()
	res, err := s.client.GetJSON(ctx, rawURL, nil)
	if err != nil {
		if upstream.IsStatus(err, http.StatusNotFound) {
			return types.Country{}, notFound("country", name)
		}
		return types.Country{}, err
	}
	matches := res.Array()
	if len(matches) == 0 {
		return types.Country{}, notFound("country", name)
	}
	best := matches[0]
	for _, m := range matches {
		if strings.EqualFold(m.Get("name.common").String(), name) || strings.EqualFold(m.Get("name.official").String(), name) {
			best = m
			break
		}
	}
	return toCountry(best), nil
}

func toCountry(c gjson.Result) types.Country {
	country := types.Country{
		CommonName:   c.Get("name.common").String(),
		OfficialName: c.Get("name.official").String(),
		Capital:      c.Get("capital.0").String(),
		Region:       c.Get("region").String(),
		Subregion:    c.Get("subregion").String(),
		Population:   c.Get("population").Int(),
		AreaKm2:      c.Get("area").Float(),
		Flag:         c.Get("flag").String(),
		MapsURL:      c.Get("maps.googleMaps").String(),
	}
	c.Get("languages").ForEach(func(_, lang gjson.Result) bool {
		country.Languages = append(country.Languages, lang.String())
		return len(country.Languages) < MaxCountryLanguages
	})
	c.Get("currencies").ForEach(func(code, cur gjson.Result) bool {
		label := textfmt.Or(cur.Get("name").String(), code.String())
		if sym := cur.Get("symbol").String(); sym != "" {
			label += " (" + sym + ")"
		}
		country.Currencies = append(country.Currencies, label)
		return len(country.Currencies) < MaxCountryCurrencies
	})
	return country
}
