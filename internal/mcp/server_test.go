package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tvandenberg/fleetlens/internal/analysis"
	"github.com/tvandenberg/fleetlens/internal/engine"
	"github.com/tvandenberg/fleetlens/internal/routes"
	"github.com/tvandenberg/fleetlens/internal/schema"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	root := t.TempDir()
	lister := func(ctx context.Context) ([]types.RouteRecord, error) {
		return nil, nil
	}
	eng := engine.New(
		root,
		routes.NewCache(lister, time.Minute),
		schema.NewInspector(root),
		analysis.NewRunner(root, time.Second),
	)
	return NewServer(eng)
}

// capture redirects stdout while fn runs and returns what was written.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestToolCatalogComplete(t *testing.T) {
	s := newTestServer(t)
	tools := ToolCatalog()

	if len(tools) != 19 {
		t.Fatalf("Expected 19 tools, got %d", len(tools))
	}

	seen := map[string]bool{}
	for _, tool := range tools {
		if tool.Name == "" || tool.Description == "" {
			t.Errorf("Tool %q missing name or description", tool.Name)
		}
		if tool.InputSchema.Type != "object" {
			t.Errorf("Tool %q schema type %q", tool.Name, tool.InputSchema.Type)
		}
		if seen[tool.Name] {
			t.Errorf("Duplicate tool %q", tool.Name)
		}
		seen[tool.Name] = true

		if _, ok := s.tools[tool.Name]; !ok {
			t.Errorf("Catalog tool %q has no handler", tool.Name)
		}
	}

	for name := range s.tools {
		if !seen[name] {
			t.Errorf("Handler %q missing from catalog", name)
		}
	}
}

func TestToolCatalogEnums(t *testing.T) {
	for _, tool := range ToolCatalog() {
		for field, prop := range tool.InputSchema.Properties {
			switch field {
			case "domain":
				if len(prop.Enum) != 4 {
					t.Errorf("Tool %q: domain enum %v", tool.Name, prop.Enum)
				}
			case "method":
				if len(prop.Enum) != 5 {
					t.Errorf("Tool %q: method enum %v", tool.Name, prop.Enum)
				}
			default:
				if len(prop.Enum) != 0 {
					t.Errorf("Tool %q: unexpected enum on %q", tool.Name, field)
				}
			}
		}
	}
}

func TestToolsCallUnknownTool(t *testing.T) {
	s := newTestServer(t)

	out := capture(t, func() {
		params, _ := json.Marshal(map[string]interface{}{"name": "grep_everything"})
		s.handleToolsCall(&Request{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	})

	var resp Response
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v\n%s", err, out)
	}
	if resp.Error == nil {
		t.Fatal("Expected JSON-RPC error for unknown tool")
	}
	if resp.Error.Data != "grep_everything" {
		t.Errorf("Expected requested name in error data, got %v", resp.Error.Data)
	}
}

func TestToolsCallErrorBecomesEnvelope(t *testing.T) {
	s := newTestServer(t)

	out := capture(t, func() {
		params, _ := json.Marshal(map[string]interface{}{
			"name":      "domain_structure",
			"arguments": map[string]string{"domain": "Warehouse"},
		})
		s.handleToolsCall(&Request{JSONRPC: "2.0", ID: 2, Method: "tools/call", Params: params})
	})

	var resp Response
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v\n%s", err, out)
	}
	if resp.Error != nil {
		t.Fatalf("Handler failure must not be a transport error: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Unexpected result shape: %T", resp.Result)
	}
	if result["isError"] != true {
		t.Error("Expected isError flag")
	}
	content := result["content"].([]interface{})
	text := content[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(text, "Warehouse") {
		t.Errorf("Expected diagnostic text to mention the bad domain, got %q", text)
	}
}

func TestToolsCallSuccessEnvelope(t *testing.T) {
	s := newTestServer(t)

	out := capture(t, func() {
		params, _ := json.Marshal(map[string]interface{}{"name": "list_domains"})
		s.handleToolsCall(&Request{JSONRPC: "2.0", ID: 3, Method: "tools/call", Params: params})
	})

	var resp Response
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v\n%s", err, out)
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected transport error: %+v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	if _, hasFlag := result["isError"]; hasFlag {
		t.Error("Success envelope must not carry isError")
	}
	content := result["content"].([]interface{})
	text := content[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(text, "Core") || !strings.Contains(text, "Employer") {
		t.Errorf("Expected domain listing in payload, got %q", text)
	}
}

func TestDecodeRejectsMalformedArguments(t *testing.T) {
	var p struct {
		Domain string `json:"domain"`
	}
	err := decode(json.RawMessage(`"not an object"`), &p)
	if !types.IsUsage(err) {
		t.Errorf("Expected usage error, got %v", err)
	}

	if err := decode(nil, &p); err != nil {
		t.Errorf("Absent arguments must decode to zero value, got %v", err)
	}
}
