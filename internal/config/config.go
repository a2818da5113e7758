// Package config provides clipline's layered configuration: built-in
// defaults, then a JSON config file, then CLIPLINE_* environment
// variables, each layer overriding the one below.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds all tunable settings.
type Config struct {
	// Logging.
	LogLevel string

	// Snap tuning, in screen pixels.
	SnapThresholdPx float64
	SnapBiasPx      float64

	// Pointer environment for hit testing.
	CoarsePointer       bool
	ConstrainedViewport bool

	// Interaction slop, in screen pixels.
	PlayheadGrabPx     float64
	MarqueeThresholdPx float64

	// ZoomStep is the zoom delta per zoom-in/out request.
	ZoomStep float64

	// SessionPath is the timeline document loaded at startup.
	SessionPath string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:           "info",
		SnapThresholdPx:    6,
		SnapBiasPx:         3,
		PlayheadGrabPx:     4,
		MarqueeThresholdPx: 3,
		ZoomStep:           0.5,
	}
}

// Load builds the configuration from defaults, the JSON file at path (if
// non-empty and present), and the environment. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyFile overlays settings from a JSON config file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config: %s is not valid JSON", path)
	}

	doc := gjson.ParseBytes(data)
	if v := doc.Get("logging.level"); v.Exists() {
		c.LogLevel = v.String()
	}
	if v := doc.Get("snap.thresholdPx"); v.Exists() {
		c.SnapThresholdPx = v.Float()
	}
	if v := doc.Get("snap.biasPx"); v.Exists() {
		c.SnapBiasPx = v.Float()
	}
	if v := doc.Get("pointer.coarse"); v.Exists() {
		c.CoarsePointer = v.Bool()
	}
	if v := doc.Get("pointer.constrainedViewport"); v.Exists() {
		c.ConstrainedViewport = v.Bool()
	}
	if v := doc.Get("interaction.playheadGrabPx"); v.Exists() {
		c.PlayheadGrabPx = v.Float()
	}
	if v := doc.Get("interaction.marqueeThresholdPx"); v.Exists() {
		c.MarqueeThresholdPx = v.Float()
	}
	if v := doc.Get("interaction.zoomStep"); v.Exists() {
		c.ZoomStep = v.Float()
	}
	if v := doc.Get("session.path"); v.Exists() {
		c.SessionPath = v.String()
	}
	return nil
}

// applyEnv overlays settings from CLIPLINE_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("CLIPLINE_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupFloat("CLIPLINE_SNAP_THRESHOLD_PX"); ok {
		c.SnapThresholdPx = v
	}
	if v, ok := lookupFloat("CLIPLINE_SNAP_BIAS_PX"); ok {
		c.SnapBiasPx = v
	}
	if v, ok := lookupBool("CLIPLINE_COARSE_POINTER"); ok {
		c.CoarsePointer = v
	}
	if v, ok := lookupBool("CLIPLINE_CONSTRAINED_VIEWPORT"); ok {
		c.ConstrainedViewport = v
	}
	if v, ok := lookupFloat("CLIPLINE_ZOOM_STEP"); ok {
		c.ZoomStep = v
	}
	if v, ok := os.LookupEnv("CLIPLINE_SESSION"); ok {
		c.SessionPath = v
	}
}

// Save writes the configuration as JSON to path.
func (c Config) Save(path string) error {
	out := "{}"
	var err error
	set := func(keyPath string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, keyPath, value)
	}

	set("logging.level", c.LogLevel)
	set("snap.thresholdPx", c.SnapThresholdPx)
	set("snap.biasPx", c.SnapBiasPx)
	set("pointer.coarse", c.CoarsePointer)
	set("pointer.constrainedViewport", c.ConstrainedViewport)
	set("interaction.playheadGrabPx", c.PlayheadGrabPx)
	set("interaction.marqueeThresholdPx", c.MarqueeThresholdPx)
	set("interaction.zoomStep", c.ZoomStep)
	set("session.path", c.SessionPath)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func lookupFloat(key string) (float64, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func lookupBool(key string) (bool, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
