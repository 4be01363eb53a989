package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pixelproof/imgdiff/internal/diff"
	"github.com/pixelproof/imgdiff/internal/imaging"
	"github.com/pixelproof/imgdiff/internal/report"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "compare_images").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "compare_images":
		return s.handleCompareImages(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type compareImagesArgs struct {
	PathA      string  `json:"path_a"`
	PathB      string  `json:"path_b"`
	Threshold  float64 `json:"threshold"`
	IncludeAA  bool    `json:"include_aa"`
	Alpha      float64 `json:"alpha"`
	OutputPath string  `json:"output_path"`
	Regions    bool    `json:"regions"`
}

func (s *Server) handleCompareImages(args json.RawMessage) (interface{}, error) {
	a := compareImagesArgs{Threshold: -1, Alpha: -1}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := diff.DefaultOptions()
	if a.Threshold >= 0 {
		opts.Threshold = a.Threshold
	}
	if a.Alpha >= 0 {
		opts.Alpha = a.Alpha
	}
	opts.IncludeAA = a.IncludeAA

	result := report.Run(context.Background(), report.Request{
		PathA:         a.PathA,
		PathB:         a.PathB,
		Options:       opts,
		OutputPath:    a.OutputPath,
		ReportRegions: a.Regions,
	})
	if !result.Success {
		return nil, errors.New(result.Error)
	}
	return result, nil
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}
