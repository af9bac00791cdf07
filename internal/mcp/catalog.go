package mcp

import (
	"fmt"
	"sort"
)

// Catalog is the static description of every tool and resource the server exposes.
type Catalog struct {
	Tools     []ToolInfo     `json:"tools"`
	Resources []ResourceInfo `json:"resources"`
}

type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Arguments   []ArgumentInfo `json:"arguments,omitempty"`
}

type ArgumentInfo struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

type ResourceInfo struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
}

func (s *Server) Catalog() Catalog {
	var c Catalog
	for _, name := range s.ToolNames() {
		tool := s.tools[name]
		info := ToolInfo{Name: name, Description: tool.Description}
		required := map[string]bool{}
		for _, r := range tool.InputSchema.Required {
			required[r] = true
		}
		for arg, raw := range tool.InputSchema.Properties {
			info.Arguments = append(info.Arguments, argumentInfo(arg, raw, required[arg]))
		}
		sort.Slice(info.Arguments, func(i, j int) bool {
			return info.Arguments[i].Name < info.Arguments[j].Name
		})
		c.Tools = append(c.Tools, info)
	}
	for _, r := range s.resources {
		c.Resources = append(c.Resources, ResourceInfo{
			URI:         r.URI,
			Name:        r.Name,
			Description: r.Description,
			MIMEType:    "application/json",
		})
	}
	return c
}

// ArgumentType returns the JSON schema type declared for arg of tool name, or "".
func (s *Server) ArgumentType(name, arg string) string {
	tool, ok := s.tools[name]
	if !ok {
		return ""
	}
	return argumentInfo(arg, tool.InputSchema.Properties[arg], false).Type
}

func argumentInfo(name string, raw any, required bool) ArgumentInfo {
	info := ArgumentInfo{Name: name, Required: required}
	prop, ok := raw.(map[string]any)
	if !ok {
		return info
	}
	info.Type, _ = prop["type"].(string)
	info.Description, _ = prop["description"].(string)
	switch enum := prop["enum"].(type) {
	case []string:
		info.Enum = enum
	case []any:
		for _, v := range enum {
			info.Enum = append(info.Enum, fmt.Sprint(v))
		}
	}
	return info
}
