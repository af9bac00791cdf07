package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

type APODService interface {
	APOD(ctx context.Context, date string) (types.APOD, error)
}

type GetNASAAPODHandler struct {
	Service APODService
}

func (h *GetNASAAPODHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := stringArgument(req.GetArguments(), "date")
	if date != "" && !validDate(date) {
		return invalidArgument("date must be in YYYY-MM-DD format"), nil
	}
	apod, err := h.Service.APOD(ctx, date)
	if err != nil {
		return failure("Error fetching NASA APOD", err, ""), nil
	}
	return success(renderAPOD(apod), apod), nil
}

type ISSService interface {
	ISSPosition(ctx context.Context) (types.ISSPosition, error)
}

type GetISSLocationHandler struct {
	Service ISSService
}

func (h *GetISSLocationHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos, err := h.Service.ISSPosition(ctx)
	if err != nil {
		return failure("Error fetching ISS location", err, ""), nil
	}
	return success(renderISS(pos), pos), nil
}

type AstronautService interface {
	Astronauts(ctx context.Context) (types.Astronauts, error)
}

type GetPeopleInSpaceHandler struct {
	Service AstronautService
}

func (h *GetPeopleInSpaceHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crew, err := h.Service.Astronauts(ctx)
	if err != nil {
		return failure("Error fetching people in space", err, ""), nil
	}
	return success(renderAstronauts(crew), crew), nil
}
