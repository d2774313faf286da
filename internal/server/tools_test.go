package server

import (
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorops"
)

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func requiredParams(t *testing.T, tool Tool) []string {
	t.Helper()
	required, ok := tool.InputSchema["required"]
	if !ok {
		return nil
	}
	requiredList, ok := required.([]string)
	if !ok {
		t.Fatalf("%s: 'required' should be a string slice", tool.Name)
	}
	return requiredList
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"color_parse",
		"color_adjust",
		"color_chain",
		"color_greyscale",
		"color_swatch",
		"image_load",
		"image_unload",
		"image_sample_color",
		"image_sample_colors_multi",
		"image_dominant_colors",
		"image_recolor",
		"image_read_color_literals",
	}

	toolMap := toolsByName()
	if len(toolMap) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(toolMap), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required parameter must be declared.
			for _, r := range requiredParams(t, tool) {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %q not in properties", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	for name, tool := range toolsByName() {
		// image_unload takes an optional path; omitting it clears the cache.
		wantPath := strings.HasPrefix(name, "image_") && name != "image_unload"
		t.Run(name, func(t *testing.T) {
			if got := contains(requiredParams(t, tool), "path"); got != wantPath {
				t.Errorf("requires path: got %v, want %v", got, wantPath)
			}
		})
	}
}

func TestToolDefinitions_ColorInputs(t *testing.T) {
	toolMap := toolsByName()
	for _, name := range []string{"color_parse", "color_adjust", "color_chain", "color_greyscale"} {
		t.Run(name, func(t *testing.T) {
			tool := toolMap[name]
			props := tool.InputSchema["properties"].(map[string]interface{})
			if _, ok := props["color"]; !ok {
				t.Error("missing 'color' property")
			}
			hsla, ok := props["hsla"].(map[string]interface{})
			if !ok {
				t.Fatal("missing 'hsla' property")
			}
			required, _ := hsla["required"].([]string)
			for _, f := range []string{"h", "s", "l"} {
				if !contains(required, f) {
					t.Errorf("hsla record should require %q", f)
				}
			}
			if contains(required, "a") {
				t.Error("hsla alpha should be optional")
			}
			// Either input form may be used, so neither is required.
			if contains(requiredParams(t, tool), "color") {
				t.Error("'color' should not be required")
			}
		})
	}
}

func TestToolDefinitions_OperationEnum(t *testing.T) {
	toolMap := toolsByName()
	for _, name := range []string{"color_adjust", "image_recolor"} {
		t.Run(name, func(t *testing.T) {
			props := toolMap[name].InputSchema["properties"].(map[string]interface{})
			op, ok := props["operation"].(map[string]interface{})
			if !ok {
				t.Fatal("missing 'operation' property")
			}
			enum, ok := op["enum"].([]string)
			if !ok {
				t.Fatal("'operation' enum should be a string slice")
			}
			if len(enum) != len(colorops.Ops()) {
				t.Fatalf("enum size: got %d, want %d", len(enum), len(colorops.Ops()))
			}
			for _, name := range enum {
				if _, err := colorops.ParseOp(name); err != nil {
					t.Errorf("enum value %q does not parse: %v", name, err)
				}
			}
		})
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"color_swatch":              {"size": 64, "labels": true},
		"image_dominant_colors":     {"count": 5},
		"image_read_color_literals": {"language": "eng"},
	}

	toolMap := toolsByName()
	for toolName, expectedDefaults := range toolDefaults {
		props := toolMap[toolName].InputSchema["properties"].(map[string]interface{})
		for paramName, expected := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}
			if got := param["default"]; got != expected {
				t.Errorf("%s.%s: default got %v (%T), want %v", toolName, paramName, got, got, expected)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
