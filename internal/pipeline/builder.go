package pipeline

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/headforge/internal/config"
	"github.com/Faultbox/headforge/internal/facetex"
	"github.com/Faultbox/headforge/internal/head"
	"github.com/Faultbox/headforge/internal/headwear"
	"github.com/Faultbox/headforge/internal/landmark"
	"github.com/Faultbox/headforge/internal/logger"
	"github.com/Faultbox/headforge/internal/skin"
	m "github.com/Faultbox/headforge/pkg/math"
)

var (
	// ErrNoPropSource is returned when a build is requested without a
	// headwear source. The assembly always carries a prop node, so a
	// missing source cannot be papered over.
	ErrNoPropSource = errors.New("pipeline: no headwear prop source")

	// ErrPropLoad wraps any prop source failure.
	ErrPropLoad = errors.New("pipeline: headwear prop load failed")

	// ErrNoCalibration is returned when the configured asset has no
	// calibration entry.
	ErrNoCalibration = errors.New("pipeline: no calibration for configured asset")
)

// PropSource produces the headwear prop for a build. It is the only
// point where the pipeline waits on external data, so callers can back
// it with a file read, a download, or a cached asset as they see fit.
type PropSource func() (*headwear.Prop, error)

// Request carries everything a build needs. Photo may be nil, in which
// case the texture falls back to the flat fallback skin tone.
type Request struct {
	Landmarks landmark.Set
	Photo     image.Image
	Prop      PropSource
	// Config falls back to config.Default when nil.
	Config *config.Config
	// Progress receives milestones in a fixed order. Sends never
	// block; events a reader misses are dropped.
	Progress chan<- Milestone
}

// Build runs the full reconstruction. The face surface and the back
// shell are independent given the landmark bounds and are built
// concurrently; everything downstream of the merge is sequential.
func Build(req Request) (*Assembly, error) {
	if req.Prop == nil {
		return nil, ErrNoPropSource
	}
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if err := req.Landmarks.Validate(); err != nil {
		return nil, fmt.Errorf("validating landmarks: %w", err)
	}

	bounds := head.ComputeBounds(req.Landmarks)
	emit(req.Progress, BoundsDone)
	logger.Debug("landmark bounds computed",
		zap.Float32("width", bounds.Width()),
		zap.Float32("height", bounds.Height()))

	var face, shell *head.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		face = head.BuildFaceSurface(req.Landmarks, cfg.Head.NoseShrink)
	}()
	go func() {
		defer wg.Done()
		shell = head.BuildBackShell(req.Landmarks, bounds, shellParams(cfg.Head))
	}()
	wg.Wait()
	emit(req.Progress, FaceSurfaceDone)
	emit(req.Progress, ShellDone)

	mesh := head.Merge(face, shell)
	emit(req.Progress, MergeDone)
	logger.Debug("head mesh merged",
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("triangles", mesh.TriangleCount()))

	tone := skin.Sample(req.Photo, req.Landmarks, skinParams(cfg.Skin))
	texture := facetex.Compose(req.Photo, req.Landmarks, tone, texOptions(cfg.Texture))
	emit(req.Progress, TextureDone)

	prop, err := req.Prop()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPropLoad, err)
	}
	cal, ok := cfg.Calibration()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCalibration, cfg.Headwear.Asset)
	}
	fitted, err := headwear.Fit(prop, bounds, fitParams(cal, cfg.Headwear))
	if err != nil {
		return nil, fmt.Errorf("fitting headwear: %w", err)
	}
	emit(req.Progress, HeadwearDone)
	logger.Debug("headwear fitted",
		zap.String("asset", prop.Name),
		zap.Float32("scale", fitted.Scale))

	return &Assembly{
		Head:       mesh,
		Texture:    texture,
		SkinTone:   tone,
		Headwear:   fitted,
		RootOffset: meshCentroid(mesh).Scale(-1),
		Bounds:     bounds,
	}, nil
}

// meshCentroid is the vertex mean of the merged head mesh. Centering
// on it keeps both the face surface and the shell balanced about the
// local origin regardless of the landmark coordinate frame.
func meshCentroid(mesh *head.Mesh) m.Vec3 {
	var sum m.Vec3
	for _, p := range mesh.Positions {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float32(len(mesh.Positions)))
}

func shellParams(c config.HeadConfig) head.ShellParams {
	return head.ShellParams{
		DepthFactor:       c.DepthFactor,
		TaperMin:          c.TaperMin,
		TaperRange:        c.TaperRange,
		Ring1Taper:        c.Ring1Taper,
		Ring2Taper:        c.Ring2Taper,
		ForeheadBulgeFrac: c.ForeheadBulgeFrac,
		DomeHeightFrac:    c.DomeHeightFrac,
	}
}

func skinParams(c config.SkinConfig) skin.Params {
	return skin.Params{
		PatchSize: c.PatchSize,
		Anchors:   c.Anchors,
	}
}

func texOptions(c config.TextureConfig) facetex.Options {
	return facetex.Options{
		Size:       c.Size,
		InsetFrac:  c.InsetFrac,
		Contrast:   c.Contrast,
		Saturation: c.Saturation,
	}
}

func fitParams(cal config.AssetCalibration, hw config.HeadwearConfig) headwear.FitParams {
	return headwear.FitParams{
		ScaleFactor:    cal.ScaleFactor,
		OffsetUpFrac:   cal.OffsetUpFrac,
		OffsetBackFrac: cal.OffsetBackFrac,
		RotationDeg:    cal.RotationDeg,
		Roughness:      hw.Roughness,
		Metalness:      hw.Metalness,
		Hue:            hw.Hue,
	}
}
