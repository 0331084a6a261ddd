package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

var methodProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"full", "fast", "auto"},
	"description": "Search strategy. full: coarse-to-fine projection search (default). fast: second-order moments refined by four projections. auto: fast, falling back to full when the moments are degenerate.",
	"default":     "full",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "silhouette_load",
			Description: "Load a silhouette image and report its dimensions, format, foreground pixel count after binarization, and whether it is within the size limit for pose estimation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the silhouette image (PNG, JPEG or GIF)"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pose_estimate",
			Description: "Estimate the in-plane orientation of a silhouette. Returns angle in [-180, 180) degrees counter-clockwise, the rotation that brings the subject into the canonical pose (long axis horizontal, heavier end on the left), the axis found before direction resolution, and whether the direction was flipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty("Absolute path to the silhouette image"),
					"method": methodProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pose_oriented_silhouette",
			Description: "Estimate the orientation of a silhouette and return it rotated into the canonical pose as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty("Absolute path to the silhouette image"),
					"method": methodProperty,
					"trim": map[string]interface{}{
						"type":        "boolean",
						"description": "Crop the output to the foreground bounding box. Default false",
						"default":     false,
					},
					"margin": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels kept around the bounding box when trimming. Default 0",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pose_orient_frame",
			Description: "Estimate the orientation from a silhouette and rotate the matching full-colour frame into the same canonical pose. Returns the pose and the rotated frame as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"silhouette_path": pathProperty("Absolute path to the silhouette image"),
					"frame_path":      pathProperty("Absolute path to the colour frame; must have the silhouette's dimensions"),
					"method":          methodProperty,
					"fill_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour (#RRGGBB) for the corners uncovered by the rotation. Default #000000",
						"default":     "#000000",
					},
				},
				"required": []string{"silhouette_path", "frame_path"},
			},
		},
		{
			Name:        "pose_projection",
			Description: "Rotate a silhouette by an integer angle and return its per-row foreground counts and their peak. The peak is the score the orientation search maximizes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the silhouette image"),
					"angle": map[string]interface{}{
						"type":        "integer",
						"description": "Counter-clockwise rotation in whole degrees",
					},
				},
				"required": []string{"path", "angle"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
