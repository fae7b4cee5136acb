package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for capture, pulse analysis and the
// monitor endpoint. Fields may be loaded from a JSON file and overridden by
// command-line flags.
type Config struct {
	Debug      bool   `json:"debug"`
	DeviceGlob string `json:"device_glob"`

	// Signal parameters
	ROIFraction     float64 `json:"roi_fraction"`
	FingerThreshold float64 `json:"finger_threshold"`
	PulseThreshold  float64 `json:"pulse_threshold"`
	RefractoryMs    int     `json:"refractory_ms"`
	BaselineAlpha   float64 `json:"baseline_alpha"`
	AmplitudeAlpha  float64 `json:"amplitude_alpha"`
	BPMAlpha        float64 `json:"bpm_alpha"`

	// Monitor endpoint
	WebEnabled bool   `json:"web_enabled"`
	WebAddr    string `json:"web_addr"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		DeviceGlob:      "/dev/video*",
		ROIFraction:     0.5,
		FingerThreshold: 60,
		PulseThreshold:  0.4,
		RefractoryMs:    270,
		BaselineAlpha:   0.05,
		AmplitudeAlpha:  0.05,
		BPMAlpha:        0.3,
		WebEnabled:      false,
		WebAddr:         ":8790",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.DeviceGlob == "" {
		c.DeviceGlob = "/dev/video*"
	}
	if c.ROIFraction <= 0 || c.ROIFraction > 1 {
		c.ROIFraction = 0.5
	}
	if c.FingerThreshold <= 0 || c.FingerThreshold > 255 {
		c.FingerThreshold = 60
	}
	if c.PulseThreshold <= 0 {
		c.PulseThreshold = 0.4
	}
	if c.RefractoryMs <= 0 {
		c.RefractoryMs = 270
	}
	if c.BaselineAlpha <= 0 || c.BaselineAlpha >= 1 {
		c.BaselineAlpha = 0.05
	}
	if c.AmplitudeAlpha <= 0 || c.AmplitudeAlpha >= 1 {
		c.AmplitudeAlpha = 0.05
	}
	if c.BPMAlpha <= 0 || c.BPMAlpha > 1 {
		c.BPMAlpha = 0.3
	}
	if c.WebAddr == "" {
		c.WebAddr = ":8790"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
