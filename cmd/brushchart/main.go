package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/config"
	"github.com/san-kum/brushchart/internal/export"
	"github.com/san-kum/brushchart/internal/tui"
	"github.com/san-kum/brushchart/internal/viz"
	"github.com/san-kum/brushchart/internal/web"
	"github.com/san-kum/brushchart/internal/window"
)

var (
	configFile string
	preset     string
	seed       uint64
	samples    int
	themeName  string

	addr string

	format string
	out    string
	width  float64
	height float64

	force bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "brushchart",
		Short:        "line chart with a draggable range brush",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", config.DefaultSamples, "initial sample count")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal chart",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the chart as a web page",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the chart in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one frame to svg, png, xlsx, json or csv",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "", "output format (default: from --out extension)")
	exportCmd.Flags().StringVarP(&out, "out", "o", "brushchart.svg", "output file")
	exportCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "chart width in pixels")
	exportCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "chart height in pixels")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-8s %3d samples  selection %v\n", name, p.Samples, p.Selection)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, serveCmd, windowCmd, exportCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies the preset, then the config file, then any flag the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("addr") {
		cfg.Web.Addr = addr
	}
	if flags.Changed("width") {
		cfg.Chart.Width = width
	}
	if flags.Changed("height") {
		cfg.Chart.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*app.App, viz.Theme, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, viz.Theme{}, err
	}
	return app.New(cfg), viz.GetTheme(cfg.Theme), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, theme, err := setup(cmd)
	if err != nil {
		return err
	}
	return tui.Run(a, theme)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, theme, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := web.NewServer(a, theme)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("serving %d samples on %s\n", a.Len(), a.Config().Web.Addr)
	return s.Start(ctx, a.Config().Web.Addr)
}

func runWindow(cmd *cobra.Command, args []string) error {
	a, theme, err := setup(cmd)
	if err != nil {
		return err
	}
	return window.Run(a, theme)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, theme, err := setup(cmd)
	if err != nil {
		return err
	}

	var f export.Format
	if format != "" {
		f, err = export.ParseFormat(format)
	} else {
		f, err = export.FormatFromPath(out)
	}
	if err != nil {
		return err
	}

	frame := a.Render()
	if err := export.WriteFile(out, f, frame, theme); err != nil {
		return fmt.Errorf("export %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%s, %d samples, %d selected)\n", out, f, a.Len(), frame.Child.Count())
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "brushchart.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
