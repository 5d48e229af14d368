// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Stage names the step of the per-asset chain that failed.
type Stage string

const (
	// StageRead covers reading and parsing the SVG file.
	StageRead      Stage = "read"
	StageName      Stage = "name"
	StageTransform Stage = "transform"
	StageWrite     Stage = "write"
	StageIconVG    Stage = "iconvg"
	StagePreview   Stage = "preview"
)

// AssetError is the failure of one asset.
type AssetError struct {
	Asset Asset
	Stage Stage
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Asset.Path, e.Stage, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// Result is one successfully generated component.
type Result struct {
	Asset     Asset
	Component Component
}

// Report summarizes a generator run.
type Report struct {
	Discovered int
	Succeeded  []Result
	Failed     []*AssetError
	// Overwritten lists assets whose component name was taken by a later
	// asset; their files were not written.
	Overwritten []Asset
	IndexPath   string
}

// Err joins the errors of every failed asset, or returns nil.
func (r *Report) Err() error {
	errs := make([]error, len(r.Failed))
	for i, e := range r.Failed {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Names returns the component names generated in the run.
func (r *Report) Names() []string {
	names := make([]string, len(r.Succeeded))
	for i, res := range r.Succeeded {
		names[i] = res.Component.Name
	}
	return names
}

// Generator converts a directory of SVG files into components and an index.
type Generator struct {
	cfg         *Config
	logger      *log.Logger
	transformer *Transformer
}

// NewGenerator validates cfg and prepares its transform chain.
func NewGenerator(cfg *Config, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTransformer(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{cfg: cfg, logger: logger, transformer: t}, nil
}

type job struct {
	asset Asset
	name  string
}

// Process discovers the assets, converts them concurrently and writes the
// index once every component is written. Failures of single assets are
// collected in the report; the returned error is reserved for discovery,
// index and cancellation failures.
func (g *Generator) Process(ctx context.Context) (*Report, error) {
	assets, err := Discover(ctx, g.cfg.SourceDir, g.cfg.Pattern)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("discovered assets", "count", len(assets), "dir", g.cfg.SourceDir)

	report := &Report{Discovered: len(assets)}
	jobs := g.plan(assets, report)

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return report, fmt.Errorf("create output directory: %w", err)
	}

	results := make([]*Result, len(jobs))
	failures := make([]*AssetError, len(jobs))

	eg, egCtx := errgroup.WithContext(ctx)
	limit := g.cfg.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	eg.SetLimit(limit)
	for i, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			res, aerr := g.processAsset(egCtx, j)
			if aerr != nil {
				g.logger.Error("failed", "path", j.asset.Path, "stage", aerr.Stage, "err", aerr.Err)
				failures[i] = aerr
				return nil
			}
			g.logger.Info("processed", "path", res.Component.Path)
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return report, err
	}

	for i := range jobs {
		switch {
		case results[i] != nil:
			report.Succeeded = append(report.Succeeded, *results[i])
		case failures[i] != nil:
			report.Failed = append(report.Failed, failures[i])
		}
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	names := report.Names()
	if g.cfg.IndexMode == IndexScan {
		if names, err = ScanIndex(g.cfg.OutputDir, g.cfg.ComponentExt); err != nil {
			return report, err
		}
	}
	if report.IndexPath, err = WriteIndex(g.cfg.OutputDir, g.cfg.IndexFile, BuildIndex(names, g.cfg)); err != nil {
		return report, err
	}
	g.logger.Info("index saved", "path", report.IndexPath, "components", len(names))
	return report, nil
}

// plan names every asset and resolves name collisions: the asset that comes
// last in discovery order wins.
func (g *Generator) plan(assets []Asset, report *Report) []job {
	last := map[string]int{}
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = ComponentName(a.Base)
		last[names[i]] = i
	}

	var jobs []job
	for i, a := range assets {
		if err := checkName(names[i]); err != nil {
			report.Failed = append(report.Failed, &AssetError{Asset: a, Stage: StageName, Err: fmt.Errorf("%w: %q", err, names[i])})
			continue
		}
		if last[names[i]] != i {
			winner := assets[last[names[i]]]
			g.logger.Warn("component name collision", "name", names[i], "path", a.Path, "overwritten_by", winner.Path)
			report.Overwritten = append(report.Overwritten, a)
			continue
		}
		jobs = append(jobs, job{asset: a, name: names[i]})
	}
	return jobs
}

func (g *Generator) processAsset(ctx context.Context, j job) (*Result, *AssetError) {
	fail := func(stage Stage, err error) (*Result, *AssetError) {
		return nil, &AssetError{Asset: j.asset, Stage: stage, Err: err}
	}

	root, err := NewSVGFile(j.asset.Path)
	if err != nil {
		return fail(StageRead, err)
	}

	state := &State{ComponentName: j.name, FilePath: j.asset.Path}
	code, err := g.transformer.Transform(ctx, root.Bytes(), state)
	if err != nil {
		return fail(StageTransform, err)
	}
	for _, el := range state.Dropped {
		g.logger.Debug("dropped element", "path", j.asset.Path, "element", el)
	}

	c := Component{
		Name: j.name,
		Path: componentPath(g.cfg.OutputDir, j.name, g.cfg.ComponentExt),
		Code: code,
	}
	if err := WriteComponent(c); err != nil {
		return fail(StageWrite, err)
	}

	if g.cfg.IconVG {
		if err := g.writeIconVG(state.SVG, j.name); err != nil {
			return fail(StageIconVG, err)
		}
	}
	if g.cfg.Preview.Dir != "" {
		path, err := WritePreview(state.SVG, g.cfg.Preview.Size, g.cfg.Preview.Dir, j.name)
		if err != nil {
			return fail(StagePreview, err)
		}
		g.logger.Debug("preview saved", "path", path)
	}

	return &Result{Asset: j.asset, Component: c}, nil
}

func (g *Generator) writeIconVG(svg []byte, name string) error {
	root, err := NewSVG(bytes.NewReader(svg))
	if err != nil {
		return err
	}
	ivg, err := EncodeIVG(root)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.cfg.OutputDir, name+".ivg"), ivg, 0o644)
}

// RebuildIndex rewrites the index from the component files currently in the
// output directory and returns the component names it lists.
func (g *Generator) RebuildIndex(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := ScanIndex(g.cfg.OutputDir, g.cfg.ComponentExt)
	if err != nil {
		return nil, err
	}
	path, err := WriteIndex(g.cfg.OutputDir, g.cfg.IndexFile, BuildIndex(names, g.cfg))
	if err != nil {
		return nil, err
	}
	g.logger.Info("index saved", "path", path, "components", len(names))
	return names, nil
}

type options struct {
	cfg    *Config
	logger *log.Logger
}

// Option configures Process.
type Option func(*options)

// WithConfig sets the base configuration. Its source and output
// directories are replaced by the Process arguments.
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Process converts every SVG below sourceDir into a component in outputDir
// and writes the index, using DefaultConfig unless WithConfig is given.
func Process(ctx context.Context, sourceDir, outputDir string, opts ...Option) (*Report, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.cfg.Clone()
	cfg.SourceDir = sourceDir
	cfg.OutputDir = outputDir

	g, err := NewGenerator(cfg, o.logger)
	if err != nil {
		return nil, err
	}
	return g.Process(ctx)
}
