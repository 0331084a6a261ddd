package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/silhouette-pose-mcp/internal/pose"
)

// Environment variables read by Load.
const (
	EnvConfigFile    = "POSE_MCP_CONFIG"
	EnvLogLevel      = "POSE_MCP_LOG_LEVEL"
	EnvSamples       = "POSE_SAMPLES"
	EnvIterations    = "POSE_ITERATIONS"
	EnvOverscanSteps = "POSE_OVERSCAN_STEPS"
	EnvEdgeExclusion = "POSE_EDGE_EXCLUSION"
	EnvThreshold     = "POSE_THRESHOLD"
	EnvMaxPixels     = "POSE_MAX_PIXELS"
	EnvRotator       = "POSE_ROTATOR"
)

// Config is the server configuration.
type Config struct {
	LogLevel string     `yaml:"log_level"`
	Pose     PoseConfig `yaml:"pose"`
}

// PoseConfig holds the estimator tuning.
type PoseConfig struct {
	Samples       int    `yaml:"samples"`
	Iterations    int    `yaml:"iterations"`
	OverscanSteps int    `yaml:"overscan_steps"`
	EdgeExclusion int    `yaml:"edge_exclusion"`
	Threshold     int    `yaml:"threshold"`
	MaxPixels     int    `yaml:"max_pixels"`
	Rotator       string `yaml:"rotator"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	def := pose.DefaultOptions()
	return &Config{
		LogLevel: "info",
		Pose: PoseConfig{
			Samples:       def.Samples,
			Iterations:    def.Iterations,
			OverscanSteps: def.OverscanSteps,
			EdgeExclusion: def.EdgeExclusion,
			Threshold:     int(def.Threshold),
			MaxPixels:     def.MaxPixels,
			Rotator:       "imaging",
		},
	}
}

// Load builds the configuration from defaults, the YAML file named by POSE_MCP_CONFIG
// (if set) and then the environment. A .env file in the working directory is loaded
// first when present.
func Load() (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration on top of the defaults and validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config YAML: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvRotator); v != "" {
		c.Pose.Rotator = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvSamples, &c.Pose.Samples},
		{EnvIterations, &c.Pose.Iterations},
		{EnvOverscanSteps, &c.Pose.OverscanSteps},
		{EnvEdgeExclusion, &c.Pose.EdgeExclusion},
		{EnvThreshold, &c.Pose.Threshold},
		{EnvMaxPixels, &c.Pose.MaxPixels},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}
	return nil
}

// Validate checks that the pose tuning is usable.
func (c *Config) Validate() error {
	p := c.Pose
	if p.Samples <= 0 {
		return fmt.Errorf("pose.samples must be positive, got %d", p.Samples)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("pose.iterations must be positive, got %d", p.Iterations)
	}
	if p.OverscanSteps < 0 {
		return fmt.Errorf("pose.overscan_steps must not be negative, got %d", p.OverscanSteps)
	}
	if p.EdgeExclusion < 0 {
		return fmt.Errorf("pose.edge_exclusion must not be negative, got %d", p.EdgeExclusion)
	}
	if p.Threshold < 1 || p.Threshold > 255 {
		return fmt.Errorf("pose.threshold must be in 1..255, got %d", p.Threshold)
	}
	if p.MaxPixels < 0 {
		return fmt.Errorf("pose.max_pixels must not be negative, got %d", p.MaxPixels)
	}
	if _, err := pose.RotatorByName(p.Rotator); err != nil {
		return fmt.Errorf("pose.rotator: %w", err)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// PoseOptions converts the tuning into estimator options.
func (c *Config) PoseOptions() (pose.Options, error) {
	rot, err := pose.RotatorByName(c.Pose.Rotator)
	if err != nil {
		return pose.Options{}, err
	}
	return pose.Options{
		Samples:       c.Pose.Samples,
		Iterations:    c.Pose.Iterations,
		OverscanSteps: c.Pose.OverscanSteps,
		EdgeExclusion: c.Pose.EdgeExclusion,
		Threshold:     uint8(c.Pose.Threshold),
		MaxPixels:     c.Pose.MaxPixels,
		Rotator:       rot,
	}, nil
}
