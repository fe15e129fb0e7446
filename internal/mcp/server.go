package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/tvandenberg/fleetlens/internal/engine"
	"github.com/tvandenberg/fleetlens/pkg/types"
)

// Server speaks MCP over stdio: JSON-RPC requests on stdin, one response
// per line on stdout, diagnostics on stderr.
type Server struct {
	engine *engine.Engine
	tools  map[string]toolHandler
}

type toolHandler func(ctx context.Context, params json.RawMessage) (interface{}, error)

// Request is a JSON-RPC request
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC response
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is a JSON-RPC error
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult is the result of initialize
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
	Capabilities    Capabilities `json:"capabilities"`
}

// ServerInfo contains server information
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Capabilities contains server capabilities
type Capabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// ToolsCapability contains tools capability
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ToolInfo describes one tool of the fixed catalog.
type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema describes tool input
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a property. Enum constrains the value to a closed
// set; only the domain and HTTP-method fields use it.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// NewServer wires the MCP server around a query engine.
func NewServer(eng *engine.Engine) *Server {
	s := &Server{
		engine: eng,
		tools:  make(map[string]toolHandler),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	// Structure tools
	s.tools["list_domains"] = s.handleListDomains
	s.tools["domain_structure"] = s.handleDomainStructure
	s.tools["find_entity_files"] = s.handleFindEntityFiles
	s.tools["service_chain"] = s.handleServiceChain

	// Route tools
	s.tools["list_routes"] = s.handleListRoutes
	s.tools["find_route"] = s.handleFindRoute
	s.tools["routes_for_controller"] = s.handleRoutesForController

	// Listing tools
	s.tools["list_controllers"] = s.handleListControllers
	s.tools["list_repositories"] = s.handleListRepositories
	s.tools["list_models"] = s.handleListModels
	s.tools["model_scopes"] = s.handleModelScopes

	// Test tools
	s.tools["untested_files"] = s.handleUntestedFiles

	// Frontend tools
	s.tools["find_component"] = s.handleFindComponent
	s.tools["component_usage"] = s.handleComponentUsage
	s.tools["unused_components"] = s.handleUnusedComponents
	s.tools["list_pages"] = s.handleListPages
	s.tools["page_props"] = s.handlePageProps

	// Database & analysis tools
	s.tools["db_table_schema"] = s.handleTableSchema
	s.tools["static_analysis"] = s.handleStaticAnalysis
}

// Run reads requests until stdin closes. Invocations are handled one at a
// time, end to end.
func (s *Server) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	// Increase buffer size for large messages
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			// Don't send error with null ID - clients reject it
			fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
			continue
		}

		s.handleRequest(&req)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Scanner error: %v\n", err)
	}
}

func (s *Server) handleRequest(req *Request) {
	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "initialized":
		// No response needed
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(req)
	default:
		s.sendError(req.ID, -32601, "Method not found", req.Method)
	}
}

func (s *Server) handleInitialize(req *Request) {
	result := InitializeResult{
		ProtocolVersion: "2024-11-05",
		ServerInfo: ServerInfo{
			Name:    "fleetlens",
			Version: "0.3.0",
		},
		Capabilities: Capabilities{
			Tools: &ToolsCapability{
				ListChanged: false,
			},
		},
	}
	s.sendResult(req.ID, result)
}

func (s *Server) handleToolsList(req *Request) {
	s.sendResult(req.ID, map[string]interface{}{
		"tools": ToolCatalog(),
	})
}

// handleToolsCall dispatches one invocation. Every handler error, of every
// kind, comes back as a successful envelope with isError set: a malformed
// query surfaces as inline diagnostic text and never kills the session.
func (s *Server) handleToolsCall(req *Request) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	handler, ok := s.tools[params.Name]
	if !ok {
		s.sendError(req.ID, -32601, "Tool not found", params.Name)
		return
	}

	callID := uuid.NewString()[:8]
	fmt.Fprintf(os.Stderr, "[%s] tools/call %s\n", callID, params.Name)

	result, err := func() (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("internal error: %v", r)
			}
		}()
		return handler(context.Background(), params.Arguments)
	}()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] %s failed (%s): %v\n", callID, params.Name, types.KindOf(err), err)
		s.sendResult(req.ID, map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": fmt.Sprintf("Error: %v", err),
				},
			},
			"isError": true,
		})
		return
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")

	s.sendResult(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": string(resultJSON),
			},
		},
	})
}

func (s *Server) sendResult(id interface{}, result interface{}) {
	resp := Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
	s.send(resp)
}

func (s *Server) sendError(id interface{}, code int, message string, data interface{}) {
	// Don't send error responses for notifications (null/nil ID)
	if id == nil {
		fmt.Fprintf(os.Stderr, "Error (no id): %s: %v\n", message, data)
		return
	}
	resp := Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
	s.send(resp)
}

func (s *Server) send(resp Response) {
	output, _ := json.Marshal(resp)
	fmt.Println(string(output))
}
