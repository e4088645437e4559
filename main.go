package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/inky/palette-mcp/internal"
)

const (
	serverName    = "palette-mcp"
	serverVersion = "0.0.0-dev" // Managed by semantic-release
)

// MCP protocol structures
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Enum        []string  `json:"enum,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

type ToolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

type CallToolResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			sendError(nil, -32700, "Parse error", err)
			continue
		}

		handleRequest(&req)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func handleRequest(req *MCPRequest) {
	// Notifications (requests without ID) should not receive responses
	isNotification := req.ID == nil

	switch req.Method {
	case "initialize":
		handleInitialize(req)
	case "tools/list":
		handleToolsList(req)
	case "tools/call":
		handleToolsCall(req)
	case "notifications/initialized":
		// Client notification that initialization is complete
		// No response needed for notifications
		break
	case "notifications/cancelled":
		// Request was cancelled
		// No response needed for notifications
		break
	case "notifications/progress":
		// Progress notification
		// No response needed for notifications
		break
	default:
		// Only send error response for requests, not notifications
		if !isNotification {
			sendError(req.ID, -32601, "Method not found", nil)
		}
	}
}

func handleInitialize(req *MCPRequest) {
	response := MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"serverInfo": map[string]string{
				"name":    serverName,
				"version": serverVersion,
			},
			"capabilities": map[string]interface{}{
				"tools": map[string]bool{},
			},
		},
	}
	sendResponse(response)
}

func handleToolsList(req *MCPRequest) {
	tools := []Tool{
		{
			Name:        "generate_palette",
			Description: "Generate a perceptually-uniform 12-step accent/gray color scale (opaque and alpha variants), contrast text color, and surface color from accent, gray, and background seed colors",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"appearance": {
						Type:        "string",
						Description: "Target appearance",
						Enum:        []string{"light", "dark"},
					},
					"accent": {
						Type:        "string",
						Description: "Accent seed color as a hex string (#RGB, #RRGGBB, or #RRGGBBAA)",
					},
					"gray": {
						Type:        "string",
						Description: "Gray/neutral seed color as a hex string (#RGB, #RRGGBB, or #RRGGBBAA)",
					},
					"background": {
						Type:        "string",
						Description: "Background seed color as a hex string (#RGB, #RRGGBB, or #RRGGBBAA)",
					},
				},
				Required: []string{"appearance", "accent", "gray", "background"},
			},
		},
	}

	response := MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": tools,
		},
	}
	sendResponse(response)
}

func handleToolsCall(req *MCPRequest) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		sendError(req.ID, -32602, "Invalid params", err)
		return
	}

	var result CallToolResult
	var err error

	switch params.Name {
	case "generate_palette":
		result, err = generatePalette(params.Arguments)
	default:
		sendError(req.ID, -32601, "Unknown tool: "+params.Name, nil)
		return
	}

	if err != nil {
		result = CallToolResult{
			Content: []ContentItem{
				{Type: "text", Text: fmt.Sprintf("Error: %v", err)},
			},
			IsError: true,
		}
	}

	response := MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
	sendResponse(response)
}

func generatePalette(args map[string]interface{}) (CallToolResult, error) {
	appearanceStr, ok := args["appearance"].(string)
	if !ok || (appearanceStr != "light" && appearanceStr != "dark") {
		return CallToolResult{}, fmt.Errorf("appearance parameter is required and must be \"light\" or \"dark\"")
	}
	appearance := internal.AppearanceDark
	if appearanceStr == "light" {
		appearance = internal.AppearanceLight
	}

	accent, err := parseSeedColor(args, "accent")
	if err != nil {
		return CallToolResult{}, err
	}
	gray, err := parseSeedColor(args, "gray")
	if err != nil {
		return CallToolResult{}, err
	}
	background, err := parseSeedColor(args, "background")
	if err != nil {
		return CallToolResult{}, err
	}

	palette, err := internal.Generate(appearance, accent, gray, background)
	if err != nil {
		return CallToolResult{}, err
	}

	m := palette.ToMap()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return CallToolResult{}, fmt.Errorf("failed to marshal palette: %w", err)
	}

	summary := fmt.Sprintf("Generated %s palette: accent-9 %s, contrast %s, surface %s\n",
		appearanceStr, m.AccentScale[8], m.AccentContrast, m.AccentSurface)

	return CallToolResult{
		Content: []ContentItem{
			{Type: "text", Text: summary + string(data)},
		},
	}, nil
}

// parseSeedColor reads a hex-string argument per §6 ("Hex accepts #RGB,
// #RRGGBB, #RRGGBBAA") and wraps it as an internal.Input.
func parseSeedColor(args map[string]interface{}, key string) (internal.Input, error) {
	value, ok := args[key].(string)
	if !ok {
		return internal.Input{}, fmt.Errorf("%s parameter is required and must be a string", key)
	}
	return internal.InputFromHex(value), nil
}

func sendResponse(resp MCPResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func sendError(id interface{}, code int, message string, err error) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if err != nil {
		resp.Error.Message += fmt.Sprintf(": %v", err)
	}
	sendResponse(resp)
}
