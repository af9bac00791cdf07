package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/publicapi"
	"github.com/roivaz/curated-mcp/internal/textfmt"
)

type JokeService interface {
	RandomJoke(ctx context.Context, kind string) (types.Joke, error)
}

type GetRandomJokeHandler struct {
	Service JokeService
}

func (h *GetRandomJokeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	joke, err := h.Service.RandomJoke(ctx, stringArgument(req.GetArguments(), "type"))
	if err != nil {
		return failure("Couldn't fetch a joke", err, ""), nil
	}
	return success(renderJoke(joke), joke), nil
}

type FactService interface {
	RandomFact(ctx context.Context) (types.Fact, error)
}

type GetRandomFactHandler struct {
	Service FactService
}

func (h *GetRandomFactHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fact, err := h.Service.RandomFact(ctx)
	if err != nil {
		return failure("Couldn't fetch a fact", err, ""), nil
	}
	return success(renderFact(fact), fact), nil
}

type QuoteService interface {
	RandomQuote(ctx context.Context) (types.Quote, error)
}

type GetRandomQuoteHandler struct {
	Service QuoteService
}

func (h *GetRandomQuoteHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	quote, err := h.Service.RandomQuote(ctx)
	if err != nil {
		return failure("Couldn't fetch a quote", err, ""), nil
	}
	return success(renderQuote(quote), quote), nil
}

type NumberFactService interface {
	NumberFact(ctx context.Context, number *int, factType string) (types.NumberFact, error)
}

type GetNumberFactHandler struct {
	Service NumberFactService
}

func (h *GetNumberFactHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var number *int
	n, ok, err := parseIntArgument(args, "number")
	if err != nil {
		return invalidArgument(err.Error()), nil
	}
	if ok {
		number = &n
	}
	// unknown fact types fall back to trivia inside the service
	fact, err := h.Service.NumberFact(ctx, number, stringArgument(args, "fact_type"))
	if err != nil {
		return failure("Couldn't fetch a number fact", err, ""), nil
	}
	return success(renderNumberFact(fact), fact), nil
}

const (
	defaultTriviaAmount = 3
	maxTriviaAmount     = 10
)

type TriviaService interface {
	Questions(ctx context.Context, amount int, difficulty string) ([]types.TriviaQuestion, error)
}

type GetTriviaHandler struct {
	Service TriviaService
}

func (h *GetTriviaHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	amount := limitArgument(args, "amount", defaultTriviaAmount, 1, maxTriviaAmount)
	difficulty := stringArgument(args, "difficulty")

	questions, err := h.Service.Questions(ctx, amount, difficulty)
	if err != nil {
		return failure("Couldn't fetch trivia questions", err,
			fmt.Sprintf("🔍 No trivia questions available right now (difficulty: %s). Try another difficulty.", textfmt.Or(publicapi.NormalizeDifficulty(difficulty), "any"))), nil
	}
	return success(renderTrivia(questions), map[string]any{"questions": questions}), nil
}
