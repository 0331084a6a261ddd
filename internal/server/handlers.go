package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/silhouette-pose-mcp/internal/imaging"
	"github.com/ironsheep/silhouette-pose-mcp/internal/pose"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pose_estimate").
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
// Tool execution errors return a JSON-RPC error response with code -32000 and the error
// text as data.
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
	case "silhouette_load":
		return s.handleSilhouetteLoad(args)
	case "pose_estimate":
		return s.handlePoseEstimate(args)
	case "pose_oriented_silhouette":
		return s.handleOrientedSilhouette(args)
	case "pose_orient_frame":
		return s.handleOrientFrame(args)
	case "pose_projection":
		return s.handleProjection(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return fmt.Errorf("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// estimate loads the silhouette at path and runs the named method on it.
func (s *Server) estimate(path, method string) (*pose.Estimator, pose.Result, error) {
	if path == "" {
		return nil, pose.Result{}, fmt.Errorf("path is required")
	}
	m, err := pose.ParseMethod(method)
	if err != nil {
		return nil, pose.Result{}, err
	}
	e, err := imaging.NewEstimator(s.cache, path, s.opts)
	if err != nil {
		return nil, pose.Result{}, err
	}
	res, err := e.Run(m)
	if err != nil {
		return nil, pose.Result{}, err
	}
	return e, res, nil
}

// === Silhouette Information ===

type silhouetteLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleSilhouetteLoad(args json.RawMessage) (interface{}, error) {
	var a silhouetteLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imaging.LoadSilhouetteInfo(s.cache, a.Path, s.opts)
}

// === Pose Estimation ===

type poseEstimateArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

// PoseEstimateResult is returned by pose_estimate.
type PoseEstimateResult struct {
	Path string `json:"path"`
	pose.Result
}

func (s *Server) handlePoseEstimate(args json.RawMessage) (interface{}, error) {
	var a poseEstimateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	_, res, err := s.estimate(a.Path, a.Method)
	if err != nil {
		return nil, err
	}
	return &PoseEstimateResult{Path: a.Path, Result: res}, nil
}

type orientedSilhouetteArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Trim   bool   `json:"trim"`
	Margin int    `json:"margin"`
}

// OrientedImageResult pairs a pose with an image rendered in the canonical pose.
type OrientedImageResult struct {
	Pose  pose.Result           `json:"pose"`
	Image *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleOrientedSilhouette(args json.RawMessage) (interface{}, error) {
	var a orientedSilhouetteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Margin < 0 {
		return nil, fmt.Errorf("margin must not be negative, got %d", a.Margin)
	}
	e, res, err := s.estimate(a.Path, a.Method)
	if err != nil {
		return nil, err
	}

	oriented, err := e.Oriented(res)
	if err != nil {
		return nil, err
	}
	encoded, err := encodeOriented(oriented, a.Trim, a.Margin)
	if err != nil {
		return nil, err
	}
	return &OrientedImageResult{Pose: res, Image: encoded}, nil
}

func encodeOriented(img *image.Gray, trim bool, margin int) (*imaging.EncodedImage, error) {
	if trim {
		return imaging.EncodePNG(imaging.Trim(img, margin))
	}
	return imaging.EncodePNG(img)
}

type orientFrameArgs struct {
	SilhouettePath string `json:"silhouette_path"`
	FramePath      string `json:"frame_path"`
	Method         string `json:"method"`
	FillColor      string `json:"fill_color"`
}

func (s *Server) handleOrientFrame(args json.RawMessage) (interface{}, error) {
	var a orientFrameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.FramePath == "" {
		return nil, fmt.Errorf("frame_path is required")
	}
	// Reject a bad colour before the search runs.
	if _, err := imaging.ParseFillColor(a.FillColor); err != nil {
		return nil, err
	}

	e, res, err := s.estimate(a.SilhouettePath, a.Method)
	if err != nil {
		return nil, err
	}
	frame, _, err := s.cache.Load(a.FramePath)
	if err != nil {
		return nil, err
	}
	if !imaging.SameSize(e.Silhouette(), frame) {
		return nil, fmt.Errorf("frame is %v but silhouette is %v",
			frame.Bounds().Size(), e.Silhouette().Bounds().Size())
	}

	oriented, err := imaging.OrientFrame(frame, res.Rotation, a.FillColor)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(oriented)
	if err != nil {
		return nil, err
	}
	return &OrientedImageResult{Pose: res, Image: encoded}, nil
}

// === Projection Inspection ===

type projectionArgs struct {
	Path  string   `json:"path"`
	Angle *float64 `json:"angle"`
}

// ProjectionResult is the row profile of a silhouette at one rotation.
type ProjectionResult struct {
	Path     string    `json:"path"`
	Rotation int       `json:"rotation"`
	Peak     float64   `json:"peak"`
	Profile  []float64 `json:"profile"`
}

func (s *Server) handleProjection(args json.RawMessage) (interface{}, error) {
	var a projectionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Angle == nil {
		return nil, fmt.Errorf("angle is required")
	}
	angle, err := pose.IntegerAngle(*a.Angle)
	if err != nil {
		return nil, err
	}

	e, err := imaging.NewEstimator(s.cache, a.Path, s.opts)
	if err != nil {
		return nil, err
	}
	profile, err := e.Projection(angle)
	if err != nil {
		return nil, err
	}
	peak, err := e.Projections().Peak(angle)
	if err != nil {
		return nil, err
	}
	return &ProjectionResult{
		Path:     a.Path,
		Rotation: pose.Normalize360(angle),
		Peak:     peak,
		Profile:  profile,
	}, nil
}
