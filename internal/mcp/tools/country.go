package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

type CountryService interface {
	Country(ctx context.Context, name string) (types.Country, error)
}

type GetCountryInfoHandler struct {
	Service CountryService
}

func (h *GetCountryInfoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArgument(req.GetArguments(), "name")
	if name == "" {
		return invalidArgument("name is required"), nil
	}
	country, err := h.Service.Country(ctx, name)
	if err != nil {
		return failure("Error fetching country info", err,
			fmt.Sprintf("🔍 Country '%s' not found. Please check the spelling.", name)), nil
	}
	return success(renderCountry(country), country), nil
}
