package publicapi

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/curated-mcp/internal/upstream"
	"github.com/roivaz/curated-mcp/internal/upstream/upstreamtest"
)

const apodPath = "api.nasa.gov/planetary/apod"

func TestAPODTruncatesExplanation(t *testing.T) {
	long := strings.Repeat("x", 450)
	tr := upstreamtest.New().JSON(apodPath, fmt.Sprintf(`{"date":"2026-10-01","title":"Pillars","explanation":%q,"url":"https://apod/img.jpg","hdurl":"https://apod/hd.jpg"}`, long))
	svc := NewSpaceService(newFetcher(tr), "")

	apod, err := svc.APOD(context.Background(), "2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, "Pillars", apod.Title)
	assert.Equal(t, strings.Repeat("x", APODExplanationLimit)+"...", apod.Explanation)
	assert.Equal(t, "https://apod/hd.jpg", apod.HDURL)

	q := tr.Last().URL.Query()
	assert.Equal(t, "DEMO_KEY", q.Get("api_key"))
	assert.Equal(t, "2026-10-01", q.Get("date"))
}

func TestAPODDefaults(t *testing.T) {
	tr := upstreamtest.New().JSON(apodPath, `{}`)
	svc := NewSpaceService(newFetcher(tr), "my-key")

	apod, err := svc.APOD(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Today", apod.Date)
	assert.Equal(t, "Amazing Space Image", apod.Title)
	assert.Equal(t, "No description available", apod.Explanation)
	assert.Equal(t, "my-key", tr.Last().URL.Query().Get("api_key"))
	assert.False(t, tr.Last().URL.Query().Has("date"))
}

func TestAPODErrorFromBody(t *testing.T) {
	tr := upstreamtest.New().Handle(apodPath, upstreamtest.Response{
		Status: 403,
		Body:   `{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`,
	})
	svc := NewSpaceService(newFetcher(tr), "bad")

	_, err := svc.APOD(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "An invalid api_key was supplied.", apiErr.Message)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
	assert.Equal(t, "NASA API error: An invalid api_key was supplied.", err.Error())
}

func TestAPODBadDateMessage(t *testing.T) {
	tr := upstreamtest.New().Handle(apodPath, upstreamtest.Response{
		Status: 400,
		Body:   `{"code":400,"msg":"Date must be between Jun 16, 1995 and Oct 17, 2026.","service_version":"v1"}`,
	})
	svc := NewSpaceService(newFetcher(tr), "")

	_, err := svc.APOD(context.Background(), "1900-01-01")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Date must be between")
}

func TestISSPosition(t *testing.T) {
	tr := upstreamtest.New().JSON("api.open-notify.org/iss-now.json",
		`{"message":"success","timestamp":1760700000,"iss_position":{"latitude":"-12.3456","longitude":"101.5"}}`)
	svc := NewSpaceService(newFetcher(tr), "")

	pos, err := svc.ISSPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -12.3456, pos.Latitude)
	assert.Equal(t, 101.5, pos.Longitude)
	assert.Equal(t, int64(1760700000), pos.Timestamp)
}

func TestAstronautsCapped(t *testing.T) {
	var people []string
	for i := 0; i < 14; i++ {
		people = append(people, fmt.Sprintf(`{"name":"Astronaut %d","craft":"ISS"}`, i))
	}
	tr := upstreamtest.New().JSON("api.open-notify.org/astros.json",
		`{"message":"success","number":14,"people":[`+strings.Join(people, ",")+`]}`)
	svc := NewSpaceService(newFetcher(tr), "")

	crew, err := svc.Astronauts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, crew.Total)
	assert.Len(t, crew.People, MaxAstronauts)
	assert.Equal(t, "Astronaut 0", crew.People[0].Name)
}
