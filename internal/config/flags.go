package config

import "flag"

// Overrides holds the shared CLI flag values layered on top of the
// file config. Zero values mean "no override".
type Overrides struct {
	ConfigPath  string
	Debug       bool
	LogFile     string
	TextureSize int
	Asset       string
	Hue         float64
}

// RegisterFlags binds the shared override flags onto a flag set so
// every subcommand accepts the same configuration switches.
func RegisterFlags(fs *flag.FlagSet) *Overrides {
	o := &Overrides{}
	fs.StringVar(&o.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&o.LogFile, "log-file", "", "Write logs to file")
	fs.IntVar(&o.TextureSize, "texture-size", 0, "Face texture resolution")
	fs.StringVar(&o.Asset, "asset", "", "Headwear asset calibration to use")
	fs.Float64Var(&o.Hue, "hue", -1, "Headwear hue in [0,360)")
	return o
}

func (o *Overrides) apply(cfg *Config) {
	if o == nil {
		return
	}
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.TextureSize > 0 {
		cfg.Texture.Size = o.TextureSize
	}
	if o.Asset != "" {
		cfg.Headwear.Asset = o.Asset
	}
	if o.Hue >= 0 {
		cfg.Headwear.Hue = float32(o.Hue)
	}
}
