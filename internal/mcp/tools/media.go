package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/publicapi"
)

const (
	defaultRecipeLimit = 1
	defaultBookLimit   = 5
	defaultTVShowLimit = 5
)

type ArtistService interface {
	Artist(ctx context.Context, name string) (types.Artist, error)
}

type SearchArtistHandler struct {
	Service ArtistService
}

func (h *SearchArtistHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArgument(req.GetArguments(), "artist_name")
	if name == "" {
		return invalidArgument("artist_name is required"), nil
	}
	artist, err := h.Service.Artist(ctx, name)
	if err != nil {
		return failure("Error searching artist", err,
			fmt.Sprintf("%s Artist '%s' not found.", errorMarker, name)), nil
	}
	return success(renderArtist(artist), artist), nil
}

type RecipeService interface {
	Recipes(ctx context.Context, query, diet string, limit int) (types.RecipeSearch, error)
}

type SearchRecipesHandler struct {
	Service RecipeService
}

func (h *SearchRecipesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArgument(args, "query")
	if query == "" {
		return invalidArgument("query is required"), nil
	}
	diet := stringArgument(args, "diet")
	limit := limitArgument(args, "limit", defaultRecipeLimit, 1, publicapi.MaxRecipes)

	search, err := h.Service.Recipes(ctx, query, diet, limit)
	if err != nil {
		msg := fmt.Sprintf("🔍 No recipes found for '%s'. Try a different search term.", query)
		if diet != "" {
			msg = fmt.Sprintf("🔍 No %s recipes found for '%s'. Try a different search term or diet.", diet, query)
		}
		return failure("Error searching recipes", err, msg), nil
	}
	return success(renderRecipes(search), search), nil
}

type BookService interface {
	Books(ctx context.Context, query string, limit int) (types.BookSearch, error)
}

type SearchBooksHandler struct {
	Service BookService
}

func (h *SearchBooksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArgument(args, "query")
	if query == "" {
		return invalidArgument("query is required"), nil
	}
	limit := limitArgument(args, "limit", defaultBookLimit, 1, publicapi.MaxBooks)

	search, err := h.Service.Books(ctx, query, limit)
	if err != nil {
		return failure("Error searching books", err,
			fmt.Sprintf("📚 No books found for '%s'", query)), nil
	}
	return success(renderBooks(search), search), nil
}

type TVShowService interface {
	TVShows(ctx context.Context, query string, limit int) ([]types.TVShow, error)
}

type SearchTVShowsHandler struct {
	Service TVShowService
}

func (h *SearchTVShowsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArgument(args, "query")
	if query == "" {
		return invalidArgument("query is required"), nil
	}
	limit := limitArgument(args, "limit", defaultTVShowLimit, 1, publicapi.MaxTVShows)

	shows, err := h.Service.TVShows(ctx, query, limit)
	if err != nil {
		return failure("Error searching TV shows", err,
			fmt.Sprintf("📺 No TV shows found for '%s'", query)), nil
	}
	return success(renderTVShows(query, shows), map[string]any{"query": query, "shows": shows}), nil
}
