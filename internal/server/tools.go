package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "compare_images",
			Description: "Compare two images pixel by pixel using a perceptual color metric. Returns difference statistics and optionally writes a highlighted diff image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path_a": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first image",
					},
					"path_b": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second image",
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Difference threshold in [0, 1]. Smaller is more sensitive. Default 0.1",
						"default":     0.1,
					},
					"include_aa": map[string]interface{}{
						"type":        "boolean",
						"description": "Count anti-aliased edge pixels as differences. Default false",
						"default":     false,
					},
					"alpha": map[string]interface{}{
						"type":        "number",
						"description": "Fade strength for unchanged regions in the diff image, in [0, 1]. Default 0.1",
						"default":     0.1,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the rendered diff image",
					},
					"regions": map[string]interface{}{
						"type":        "boolean",
						"description": "Report bounding boxes of changed areas. Default false",
						"default":     false,
					},
				},
				"required": []string{"path_a", "path_b"},
			},
		},
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions and format. Caches the decode for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
