package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xeipuuv/gojsonschema"

	"github.com/roivaz/curated-mcp/internal/logging"
)

// dispatch wraps adapter so that every call is validated against the tool's input
// schema, logged under a call id, and always produces a result.
func dispatch(tool mcp.Tool, adapter ToolAdapter, log logging.Logger) server.ToolHandlerFunc {
	schema := gojsonschema.NewGoLoader(tool.InputSchema)
	return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		callLog := log.WithValues("tool", tool.Name, "call_id", uuid.NewString())
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				callLog.Error(fmt.Errorf("panic: %v", r), "tool adapter panicked")
				res, err = mcp.NewToolResultError(fmt.Sprintf("❌ Internal error in %s", tool.Name)), nil
			}
			callLog.Info("tool call finished", "duration", time.Since(start).String(), "is_error", res != nil && res.IsError)
		}()

		if verr := validateArguments(schema, req.GetArguments()); verr != nil {
			callLog.Debug("rejected arguments", "reason", verr.Error())
			return mcp.NewToolResultError("❌ Invalid arguments: " + verr.Error()), nil
		}

		res, err = adapter.ToolAdapter(ctx, req)
		if err != nil {
			callLog.Error(err, "tool adapter returned error")
			return mcp.NewToolResultError(fmt.Sprintf("❌ %s failed: %v", tool.Name, err)), nil
		}
		if res == nil {
			return mcp.NewToolResultError(fmt.Sprintf("❌ %s returned no result", tool.Name)), nil
		}
		return res, nil
	}
}

func validateArguments(schema gojsonschema.JSONLoader, args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal arguments: %w", err)
	}
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%s", strings.Join(details, "; "))
}
