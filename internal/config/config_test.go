package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Head shape defaults
	if cfg.Head.DepthFactor != 0.5 {
		t.Errorf("expected depth factor 0.5, got %f", cfg.Head.DepthFactor)
	}
	if cfg.Head.TaperMin != 0.94 {
		t.Errorf("expected taper min 0.94, got %f", cfg.Head.TaperMin)
	}
	if cfg.Head.TaperRange != 0.04 {
		t.Errorf("expected taper range 0.04, got %f", cfg.Head.TaperRange)
	}
	if cfg.Head.NoseShrink != 0.85 {
		t.Errorf("expected nose shrink 0.85, got %f", cfg.Head.NoseShrink)
	}

	// Skin defaults
	if cfg.Skin.PatchSize != 24 {
		t.Errorf("expected patch size 24, got %d", cfg.Skin.PatchSize)
	}
	if len(cfg.Skin.Anchors) != 0 {
		t.Errorf("expected no anchor override by default, got %v", cfg.Skin.Anchors)
	}

	// Texture defaults
	if cfg.Texture.Size != 512 {
		t.Errorf("expected texture size 512, got %d", cfg.Texture.Size)
	}
	if cfg.Texture.JPEGQuality != 90 {
		t.Errorf("expected jpeg quality 90, got %d", cfg.Texture.JPEGQuality)
	}
	if cfg.Texture.Contrast <= 1 || cfg.Texture.Saturation <= 1 {
		t.Error("expected mild contrast/saturation boost by default")
	}

	// Headwear defaults
	if cfg.Headwear.Asset != "helmet" {
		t.Errorf("expected default asset 'helmet', got %s", cfg.Headwear.Asset)
	}
	cal, ok := cfg.Calibration()
	if !ok {
		t.Fatal("expected calibration entry for default asset")
	}
	if cal.ScaleFactor < 1.0 || cal.ScaleFactor > 1.2 {
		t.Errorf("expected scale factor in [1.0, 1.2], got %f", cal.ScaleFactor)
	}
	if cal.OffsetUpFrac != 0.47 {
		t.Errorf("expected offset up 0.47, got %f", cal.OffsetUpFrac)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "headforge.yaml")

	yamlContent := `
head:
  depth_factor: 0.6
  taper_min: 0.9
  taper_range: 0.08
  nose_shrink: 0.8

skin:
  patch_size: 16
  anchors: [151, 50, 280]

texture:
  size: 1024
  jpeg_quality: 75
  contrast: 1.0
  saturation: 0.9
  inset_frac: 0.03

headwear:
  asset: visor
  assets:
    visor:
      scale_factor: 1.05
      offset_up_frac: 0.5
      offset_back_frac: 0.72
      rotation_deg: [0, 90, 0]
  roughness: 0.4
  metalness: 0.8
  hue: 120

logging:
  level: "debug"
  log_file: "build.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Head.DepthFactor != 0.6 {
		t.Errorf("expected depth factor 0.6, got %f", cfg.Head.DepthFactor)
	}
	if cfg.Head.TaperMin != 0.9 {
		t.Errorf("expected taper min 0.9, got %f", cfg.Head.TaperMin)
	}
	// Values absent from the file keep their defaults.
	if cfg.Head.DomeHeightFrac != 0.18 {
		t.Errorf("expected default dome height 0.18, got %f", cfg.Head.DomeHeightFrac)
	}

	if cfg.Skin.PatchSize != 16 {
		t.Errorf("expected patch size 16, got %d", cfg.Skin.PatchSize)
	}
	if len(cfg.Skin.Anchors) != 3 || cfg.Skin.Anchors[0] != 151 {
		t.Errorf("expected anchors [151 50 280], got %v", cfg.Skin.Anchors)
	}

	if cfg.Texture.Size != 1024 {
		t.Errorf("expected texture size 1024, got %d", cfg.Texture.Size)
	}
	if cfg.Texture.Saturation != 0.9 {
		t.Errorf("expected saturation 0.9, got %f", cfg.Texture.Saturation)
	}

	if cfg.Headwear.Asset != "visor" {
		t.Errorf("expected asset 'visor', got %s", cfg.Headwear.Asset)
	}
	cal, ok := cfg.Calibration()
	if !ok {
		t.Fatal("expected calibration for 'visor'")
	}
	if cal.RotationDeg != [3]float32{0, 90, 0} {
		t.Errorf("expected rotation [0 90 0], got %v", cal.RotationDeg)
	}
	if cfg.Headwear.Hue != 120 {
		t.Errorf("expected hue 120, got %f", cfg.Headwear.Hue)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "build.log" {
		t.Errorf("expected log file 'build.log', got %s", cfg.Logging.LogFile)
	}
}

func TestCalibrationMissingAsset(t *testing.T) {
	cfg := Default()
	cfg.Headwear.Asset = "no-such-asset"
	if _, ok := cfg.Calibration(); ok {
		t.Error("expected no calibration for unknown asset")
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := Default()
	o := &Overrides{
		Debug:       true,
		TextureSize: 256,
		Asset:       "visor",
		Hue:         30,
	}
	o.apply(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	if cfg.Texture.Size != 256 {
		t.Errorf("expected texture size 256, got %d", cfg.Texture.Size)
	}
	if cfg.Headwear.Asset != "visor" {
		t.Errorf("expected asset 'visor', got %s", cfg.Headwear.Asset)
	}
	if cfg.Headwear.Hue != 30 {
		t.Errorf("expected hue 30, got %f", cfg.Headwear.Hue)
	}

	// Zero overrides leave the config untouched.
	fresh := Default()
	(&Overrides{Hue: -1}).apply(fresh)
	if fresh.Texture.Size != 512 || fresh.Headwear.Hue != 210 {
		t.Error("zero overrides must not change defaults")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("texture:\n  size: 128\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Overrides{ConfigPath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Texture.Size != 128 {
		t.Errorf("expected texture size 128 from file, got %d", cfg.Texture.Size)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "headforge.yaml")

	cfg := Default()
	cfg.Texture.Size = 256
	cfg.Headwear.Hue = 42

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Texture.Size != 256 {
		t.Errorf("expected texture size 256 after round trip, got %d", loaded.Texture.Size)
	}
	if loaded.Headwear.Hue != 42 {
		t.Errorf("expected hue 42 after round trip, got %f", loaded.Headwear.Hue)
	}
}
