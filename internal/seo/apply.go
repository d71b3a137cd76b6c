// Package seo writes the crawler policy and production marker for a
// deployment mode.
package seo

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/benedict2310/deployseo/internal/envmode"
)

const (
	DefaultRobotsPath = "public/robots.txt"
	DefaultMarkerPath = "src/.production-env"

	MarkerContent = "PRODUCTION_DEPLOY=true"
)

type MarkerAction string

const (
	MarkerWritten MarkerAction = "written"
	MarkerRemoved MarkerAction = "removed"
	MarkerAbsent  MarkerAction = "absent"
)

type Options struct {
	RobotsPath string
	MarkerPath string
	SitemapURL string
	// Out receives human readable progress lines.
	Out    io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	// Entropy feeds the random part of the run ID.
	Entropy io.Reader
}

var runEntropy = &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)}

func (o Options) withDefaults() Options {
	if o.RobotsPath == "" {
		o.RobotsPath = DefaultRobotsPath
	}
	if o.MarkerPath == "" {
		o.MarkerPath = DefaultMarkerPath
	}
	if o.SitemapURL == "" {
		o.SitemapURL = DefaultSitemapURL
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Entropy == nil {
		o.Entropy = runEntropy
	}
	return o
}

func (o Options) newRunID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(o.Now().UTC()), o.Entropy)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return id.String(), nil
}

type Result struct {
	RunID        string       `json:"runId" yaml:"runId"`
	Mode         envmode.Mode `json:"mode" yaml:"mode"`
	RobotsPath   string       `json:"robotsPath" yaml:"robotsPath"`
	MarkerPath   string       `json:"markerPath" yaml:"markerPath"`
	MarkerAction MarkerAction `json:"markerAction" yaml:"markerAction"`
	Steps        []string     `json:"steps" yaml:"steps"`
}

func (r *Result) step(w io.Writer, msg string) {
	r.Steps = append(r.Steps, msg)
	fmt.Fprintln(w, msg)
}

// Apply overwrites robots.txt for mode and then writes or removes the marker
// file. The first filesystem error aborts the run; nothing is rolled back.
func Apply(ctx context.Context, mode envmode.Mode, fsys FS, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	runID, err := opts.newRunID()
	if err != nil {
		return Result{}, err
	}
	res := Result{
		RunID:      runID,
		Mode:       mode,
		RobotsPath: opts.RobotsPath,
		MarkerPath: opts.MarkerPath,
	}
	logger := opts.Logger.With("run_id", runID, "mode", string(mode))

	if mode.IsProduction() {
		res.step(opts.Out, "Setting up production SEO configuration (noindex, nofollow)")
		if err := fsys.WriteFile(opts.RobotsPath, []byte(RenderRobots(ProductionPolicy()))); err != nil {
			logger.Error("robots.txt write failed", "path", opts.RobotsPath, "error", err)
			return res, fmt.Errorf("write robots.txt: %w", err)
		}
		res.step(opts.Out, "Updated robots.txt for production")
		logger.Info("robots.txt updated", "path", opts.RobotsPath)

		if err := fsys.WriteFile(opts.MarkerPath, []byte(MarkerContent)); err != nil {
			logger.Error("marker write failed", "path", opts.MarkerPath, "error", err)
			return res, fmt.Errorf("write production marker: %w", err)
		}
		res.MarkerAction = MarkerWritten
		res.step(opts.Out, "Created production environment flag")
		logger.Info("marker written", "path", opts.MarkerPath)
		return res, nil
	}

	res.step(opts.Out, "Development environment - keeping default SEO settings")
	if err := fsys.WriteFile(opts.RobotsPath, []byte(RenderRobots(DevelopmentPolicy(opts.SitemapURL)))); err != nil {
		logger.Error("robots.txt write failed", "path", opts.RobotsPath, "error", err)
		return res, fmt.Errorf("write robots.txt: %w", err)
	}
	res.step(opts.Out, "Updated robots.txt for development")
	logger.Info("robots.txt updated", "path", opts.RobotsPath)

	if !fsys.Exists(opts.MarkerPath) {
		res.MarkerAction = MarkerAbsent
		logger.Debug("marker absent", "path", opts.MarkerPath)
		return res, nil
	}
	if err := fsys.Remove(opts.MarkerPath); err != nil {
		logger.Error("marker removal failed", "path", opts.MarkerPath, "error", err)
		return res, fmt.Errorf("remove production marker: %w", err)
	}
	res.MarkerAction = MarkerRemoved
	res.step(opts.Out, "Removed production environment flag")
	logger.Info("marker removed", "path", opts.MarkerPath)
	return res, nil
}
