package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wrnrlr/svg2rn"
)

type flags struct {
	config      string
	pattern     string
	ext         string
	indexFile   string
	indexMode   string
	template    string
	native      bool
	typescript  bool
	concurrency int
	iconvg      bool
	previewDir  string
	previewSize int
	useTabs     bool
	singleQuote bool
	logLevel    string
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:          "svg2rn [flags] <sourceDir> <outputDir>",
		Short:        "Generate React Native SVG components and an index module from a directory of SVG files",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(f.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			cfg.SourceDir, cfg.OutputDir = args[0], args[1]

			g, err := svg2rn.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			report, err := g.Process(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("done",
				"discovered", report.Discovered,
				"succeeded", len(report.Succeeded),
				"failed", len(report.Failed),
				"overwritten", len(report.Overwritten),
			)
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d of %d assets failed", len(report.Failed), report.Discovered)
			}
			return nil
		},
	}

	indexCmd := &cobra.Command{
		Use:          "index <outputDir>",
		Short:        "Rebuild the index module from the component files in a directory",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			cfg.OutputDir = args[0]
			if cfg.SourceDir == "" {
				// Not read when rebuilding the index.
				cfg.SourceDir = args[0]
			}

			g, err := svg2rn.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			_, err = g.RebuildIndex(cmd.Context())
			return err
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "YAML or TOML configuration file")
	pf.StringVar(&f.ext, "ext", "tsx", "Component file extension (tsx or jsx)")
	pf.StringVar(&f.indexFile, "index-file", "index.ts", "Index file name in the output directory")
	pf.BoolVar(&f.useTabs, "use-tabs", false, "Indent generated code with tabs")
	pf.BoolVar(&f.singleQuote, "single-quote", true, "Use single quotes in import statements")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	fl := rootCmd.Flags()
	fl.StringVar(&f.pattern, "pattern", "**/*.svg", "Glob of the SVG files below the source directory")
	fl.StringVar(&f.indexMode, "index-mode", svg2rn.IndexGenerated, "Index from the components of this run (generated) or from the output directory (scan)")
	fl.StringVarP(&f.template, "template", "t", svg2rn.TemplateFixed, "Component template: fixed, imports or a text/template file")
	fl.BoolVar(&f.native, "native", true, "Generate react-native-svg components")
	fl.BoolVar(&f.typescript, "typescript", true, "Generate typed props")
	fl.IntVarP(&f.concurrency, "concurrency", "j", 0, "Assets processed at once (0 = one per CPU)")
	fl.BoolVar(&f.iconvg, "iconvg", false, "Also write an IconVG encoding of every icon")
	fl.StringVar(&f.previewDir, "preview-dir", "", "Write PNG previews to this directory")
	fl.IntVar(&f.previewSize, "preview-size", 64, "PNG preview size in pixels")

	rootCmd.AddCommand(indexCmd)
	return rootCmd
}

// load reads the config file, if any, and applies the flags set on the
// command line over it.
func (f *flags) load(cmd *cobra.Command) (*svg2rn.Config, error) {
	cfg := svg2rn.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = svg2rn.LoadConfig(f.config); err != nil {
			return nil, err
		}
	}

	set := cmd.Flags().Changed
	if set("pattern") {
		cfg.Pattern = f.pattern
	}
	if set("ext") {
		cfg.ComponentExt = f.ext
	}
	if set("index-file") {
		cfg.IndexFile = f.indexFile
	}
	if set("index-mode") {
		cfg.IndexMode = f.indexMode
	}
	if set("template") {
		cfg.Template = f.template
	}
	if set("native") {
		cfg.Native = f.native
	}
	if set("typescript") {
		cfg.TypeScript = f.typescript
	}
	if set("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if set("iconvg") {
		cfg.IconVG = f.iconvg
	}
	if set("preview-dir") {
		cfg.Preview.Dir = f.previewDir
	}
	if set("preview-size") {
		cfg.Preview.Size = f.previewSize
	}
	if set("use-tabs") {
		cfg.Prettier.UseTabs = f.useTabs
	}
	if set("single-quote") {
		cfg.Prettier.SingleQuote = f.singleQuote
	}
	return cfg, nil
}
