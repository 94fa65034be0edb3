// Package config handles pipeline configuration loading and management.
package config

// Config holds all head-building settings.
type Config struct {
	Head     HeadConfig     `yaml:"head"`
	Skin     SkinConfig     `yaml:"skin"`
	Texture  TextureConfig  `yaml:"texture"`
	Headwear HeadwearConfig `yaml:"headwear"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// HeadConfig holds back-shell and face-surface shape tunables.
type HeadConfig struct {
	// DepthFactor scales head depth relative to bounding-box width.
	DepthFactor float32 `yaml:"depth_factor"`
	// TaperMin and TaperRange bound the back-ring taper: taper(t) =
	// TaperMin + TaperRange*t for t in [0,1] running chin to forehead.
	TaperMin   float32 `yaml:"taper_min"`
	TaperRange float32 `yaml:"taper_range"`
	Ring1Taper float32 `yaml:"ring1_taper"`
	Ring2Taper float32 `yaml:"ring2_taper"`
	// ForeheadBulgeFrac lifts upper oval vertices as a fraction of depth.
	ForeheadBulgeFrac float32 `yaml:"forehead_bulge_frac"`
	// DomeHeightFrac places the back dome apex behind the last ring.
	DomeHeightFrac float32 `yaml:"dome_height_frac"`
	// NoseShrink pulls nose landmarks toward their centroid (<1).
	// Zero disables the adjustment.
	NoseShrink float32 `yaml:"nose_shrink"`
}

// SkinConfig holds skin-tone sampling settings.
type SkinConfig struct {
	// PatchSize is the square sample patch edge in pixels.
	PatchSize int `yaml:"patch_size"`
	// Anchors overrides the landmark indices sampled for skin tone.
	// Empty means the built-in forehead/cheek anchors.
	Anchors []int `yaml:"anchors,omitempty"`
}

// TextureConfig holds face-texture compositing settings.
type TextureConfig struct {
	Size        int     `yaml:"size"`
	JPEGQuality int     `yaml:"jpeg_quality"`
	Contrast    float32 `yaml:"contrast"`
	Saturation  float32 `yaml:"saturation"`
	// InsetFrac shrinks the face-oval clip polygon toward the UV
	// center to keep hair and background out of the sampled region.
	InsetFrac float32 `yaml:"inset_frac"`
}

// AssetCalibration holds per-asset fitting constants. The rotation is
// an empirical property of how the asset was authored; it must be
// recalibrated whenever the asset changes.
type AssetCalibration struct {
	ScaleFactor    float32    `yaml:"scale_factor"`
	OffsetUpFrac   float32    `yaml:"offset_up_frac"`
	OffsetBackFrac float32    `yaml:"offset_back_frac"`
	RotationDeg    [3]float32 `yaml:"rotation_deg"`
}

// HeadwearConfig holds prop fitting and material settings.
type HeadwearConfig struct {
	// Asset selects the calibration entry used for fitting.
	Asset     string                      `yaml:"asset"`
	Assets    map[string]AssetCalibration `yaml:"assets"`
	Roughness float32                     `yaml:"roughness"`
	Metalness float32                     `yaml:"metalness"`
	// Hue in [0,360) drives the prop color.
	Hue float32 `yaml:"hue"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Head: HeadConfig{
			DepthFactor:       0.5,
			TaperMin:          0.94,
			TaperRange:        0.04,
			Ring1Taper:        0.97,
			Ring2Taper:        0.96,
			ForeheadBulgeFrac: 0.1,
			DomeHeightFrac:    0.18,
			NoseShrink:        0.85,
		},
		Skin: SkinConfig{
			PatchSize: 24,
		},
		Texture: TextureConfig{
			Size:        512,
			JPEGQuality: 90,
			Contrast:    1.1,
			Saturation:  1.15,
			InsetFrac:   0.02,
		},
		Headwear: HeadwearConfig{
			Asset: "helmet",
			Assets: map[string]AssetCalibration{
				// Tuned by eye against the stock helmet asset.
				"helmet": {
					ScaleFactor:    1.1,
					OffsetUpFrac:   0.47,
					OffsetBackFrac: 0.6,
					RotationDeg:    [3]float32{-12, 0, 180},
				},
			},
			Roughness: 0.55,
			Metalness: 0.25,
			Hue:       210,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Calibration returns the calibration entry for the configured asset
// and whether one exists.
func (c *Config) Calibration() (AssetCalibration, bool) {
	cal, ok := c.Headwear.Assets[c.Headwear.Asset]
	return cal, ok
}
