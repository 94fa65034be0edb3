// headforge is a CLI for building textured head meshes from facial
// landmarks and a photo.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/headforge/internal/assets"
	"github.com/Faultbox/headforge/internal/config"
	"github.com/Faultbox/headforge/internal/headwear"
	"github.com/Faultbox/headforge/internal/landmark"
	"github.com/Faultbox/headforge/internal/logger"
	"github.com/Faultbox/headforge/internal/pipeline"
	"github.com/Faultbox/headforge/internal/topology"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		cmdBuild(args)
	case "demo":
		cmdDemo(args)
	case "export":
		cmdExport(args)
	case "topology", "topo":
		cmdTopology(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`headforge - landmark-driven head mesh builder

Usage:
  headforge <command> [options]

Commands:
  build <landmarks.json> [photo]  Build a head assembly and write a GLB
  demo                            Build from synthetic landmarks
  export <landmarks.json> [photo] Build and dump flat buffers as JSON
  topology                        Show the face mesh topology

Options (before the positional arguments):
  -o <file>          Output GLB path (default head.glb)
  -prop <file.glb>   Headwear asset file
  -props <dir>       Directory searched for <asset>.glb; a procedural
                     dome is used when neither -prop nor -props is given
  -texture <file>    Also write the face texture (png or jpg)
  -config <file>     Config file path
  -asset <name>      Headwear calibration entry
  -hue <deg>         Headwear hue in [0,360)
  -texture-size <px> Face texture resolution
  -debug             Enable debug logging

Examples:
  headforge build -o avatar.glb face.json selfie.jpg
  headforge build -prop crown.glb -asset crown face.json selfie.jpg
  headforge demo -o demo.glb -hue 120
  headforge export -o buffers.json face.json selfie.jpg`)
}

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	out := fs.String("o", "head.glb", "Output GLB path")
	propPath := fs.String("prop", "", "Headwear prop asset (.glb)")
	propsDir := fs.String("props", "", "Directory searched for headwear assets")
	texOut := fs.String("texture", "", "Also write the face texture")
	overrides := config.RegisterFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: headforge build <landmarks.json> [photo] [options]")
		os.Exit(1)
	}

	cfg := mustLoadConfig(overrides)

	set, err := landmark.DecodeFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var photo image.Image
	if fs.NArg() > 1 {
		photo, err = loadPhoto(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	runBuild(pipeline.Request{
		Landmarks: set,
		Photo:     photo,
		Prop:      propSource(*propPath, *propsDir, cfg),
		Config:    cfg,
	}, *out, *texOut, cfg)
}

func cmdDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	out := fs.String("o", "demo.glb", "Output GLB path")
	propPath := fs.String("prop", "", "Headwear prop asset (.glb)")
	propsDir := fs.String("props", "", "Directory searched for headwear assets")
	texOut := fs.String("texture", "", "Also write the face texture")
	overrides := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg := mustLoadConfig(overrides)

	runBuild(pipeline.Request{
		Landmarks: landmark.SyntheticSet(0.5),
		Prop:      propSource(*propPath, *propsDir, cfg),
		Config:    cfg,
	}, *out, *texOut, cfg)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "Output JSON path (stdout when empty)")
	propPath := fs.String("prop", "", "Headwear prop asset (.glb)")
	propsDir := fs.String("props", "", "Directory searched for headwear assets")
	texOut := fs.String("texture", "", "Also write the face texture")
	overrides := config.RegisterFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: headforge export <landmarks.json> [photo] [options]")
		os.Exit(1)
	}

	cfg := mustLoadConfig(overrides)
	defer logger.Sync()

	set, err := landmark.DecodeFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var photo image.Image
	if fs.NArg() > 1 {
		photo, err = loadPhoto(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	asm, err := pipeline.Build(pipeline.Request{
		Landmarks: set,
		Photo:     photo,
		Prop:      propSource(*propPath, *propsDir, cfg),
		Config:    cfg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := asm.ExportFlatJSON(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *texOut != "" {
		if err := writeTexture(asm, *texOut, cfg.Texture.JPEGQuality); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func cmdTopology(args []string) {
	fs := flag.NewFlagSet("topology", flag.ExitOnError)
	fs.Parse(args)

	oval := len(topology.FaceOval)
	fmt.Printf("Landmarks:       %d\n", topology.NumLandmarks)
	fmt.Printf("Face triangles:  %d\n", len(topology.Tessellation))
	fmt.Printf("Oval vertices:   %d\n", oval)
	fmt.Printf("Shell vertices:  %d\n", oval*4+1)
	fmt.Printf("Shell triangles: %d\n", oval*7)
	fmt.Printf("Head vertices:   %d\n", topology.NumLandmarks+oval*4+1)
	fmt.Printf("Head triangles:  %d\n", len(topology.Tessellation)+oval*7)
}

func mustLoadConfig(overrides *config.Overrides) *config.Config {
	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// propSource picks the headwear source: an explicit GLB file, the
// configured asset resolved from the props directory, or the built-in
// procedural dome.
func propSource(path, propsDir string, cfg *config.Config) pipeline.PropSource {
	if path != "" {
		return func() (*headwear.Prop, error) {
			return headwear.LoadGLB(path)
		}
	}
	if propsDir != "" {
		store := assets.NewStore()
		store.AddDir(propsDir)
		return func() (*headwear.Prop, error) {
			return store.Load(cfg.Headwear.Asset)
		}
	}
	return func() (*headwear.Prop, error) {
		return headwear.DomeProp(24, 8), nil
	}
}

func runBuild(req pipeline.Request, out, texOut string, cfg *config.Config) {
	defer logger.Sync()

	progress := make(chan pipeline.Milestone, 16)
	req.Progress = progress
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ms := range progress {
			logger.Info("stage complete", zap.Stringer("stage", ms))
		}
	}()

	asm, err := pipeline.Build(req)
	close(progress)
	<-done
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := asm.ExportGLB(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d vertices, %d triangles, headwear %q)\n",
		out, len(asm.Head.Positions), asm.Head.TriangleCount(), asm.Headwear.Prop.Name)

	if texOut != "" {
		if err := writeTexture(asm, texOut, cfg.Texture.JPEGQuality); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", texOut)
	}
}

func writeTexture(asm *pipeline.Assembly, path string, jpegQuality int) error {
	format := "png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = "jpeg"
	}
	blob, err := asm.TextureBlob(format, jpegQuality)
	if err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0644)
}

func loadPhoto(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding photo %s: %w", path, err)
	}
	return img, nil
}
