package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/cobra"

	"github.com/roivaz/curated-mcp/internal/mcp"
)

var (
	errorText   = color.New(color.FgRed).SprintFunc()
	successText = color.New(color.FgGreen).SprintFunc()
)

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "call <tool> [key=value...]",
		Short:        "Invoke a tool in-process and print its result",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			width, _ := cmd.Flags().GetInt("wrap")
			srv := mcp.New(mcp.DefaultConfig())

			toolArgs, err := parseCallArgs(srv, args[0], args[1:])
			if err != nil {
				return err
			}
			res, err := srv.Call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			if raw {
				pp.Println(res)
				return nil
			}
			printResult(cmd.OutOrStdout(), res, width)
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Dump the full tool result structure")
	cmd.Flags().Int("wrap", 100, "Wrap text at this many columns (0 disables)")
	return cmd
}

// parseCallArgs turns key=value pairs into tool arguments, converting values to
// the type the tool schema declares.
func parseCallArgs(srv *mcp.Server, tool string, pairs []string) (map[string]any, error) {
	if _, ok := srv.Tool(tool); !ok {
		return nil, fmt.Errorf("unknown tool %q (see `curated-mcp catalog`)", tool)
	}
	args := map[string]any{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}
		switch srv.ArgumentType(tool, key) {
		case "number", "integer":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %q is not a number", key, value)
			}
			args[key] = n
		case "boolean":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %q is not a boolean", key, value)
			}
			args[key] = b
		default:
			args[key] = value
		}
	}
	return args, nil
}

func printResult(w io.Writer, res *mcpgo.CallToolResult, width int) {
	paint := successText
	if res.IsError {
		paint = errorText
	}
	for _, content := range res.Content {
		text, ok := content.(mcpgo.TextContent)
		if !ok {
			continue
		}
		for _, line := range strings.Split(text.Text, "\n") {
			if width > 0 {
				line = wrap.String(line, width)
			}
			fmt.Fprintln(w, paint(line))
		}
	}
}
