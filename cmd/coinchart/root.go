package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"CoinChart/internal/config"
	"CoinChart/internal/controller"
	"CoinChart/internal/dashboard"
	"CoinChart/internal/generator"
	"CoinChart/internal/logger"
	"CoinChart/internal/model"
	"CoinChart/internal/render"
)

type rootOptions struct {
	configPath string
	rangeFlag  string
	tabFlag    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "coinchart",
		Short: "Mock BTC/USD price and volume dashboard",
		Long: `CoinChart renders a synthetic BTC/USD price/volume series in the terminal.
The series is a random walk regenerated every time the time range changes.`,
		SilenceUsage: true,
	}

	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.rangeFlag, "range", "r", "", "initial time range (1d, 3d, 1w, 1m, 6m, 1y, max)")
	cmd.PersistentFlags().StringVarP(&opts.tabFlag, "tab", "t", "", "initial tab (summary, chart, statistics, analysis, settings)")

	cmd.AddCommand(newShowCmd(opts), newWatchCmd(opts), newRangesCmd(opts))
	return cmd
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	logFile io.Closer
	gen     *generator.Generator
	view    *dashboard.View
}

// Close releases the log output.
func (a *app) Close() error {
	return a.logFile.Close()
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.rangeFlag != "" {
		cfg.Dashboard.DefaultRange = opts.rangeFlag
	}
	if opts.tabFlag != "" {
		cfg.Dashboard.DefaultTab = opts.tabFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	log, logFile, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a := &app{cfg: cfg, log: log, logFile: logFile}
	fail := func(err error) (*app, error) {
		logFile.Close()
		return nil, err
	}

	genOpts := []generator.Option{}
	if cfg.Generator.Seed != 0 {
		genOpts = append(genOpts, generator.WithSource(generator.NewSeededSource(cfg.Generator.Seed)))
	}
	gen, err := generator.New(cfg.GeneratorConfig(), genOpts...)
	if err != nil {
		return fail(err)
	}

	initial, _ := model.ParseRange(cfg.Dashboard.DefaultRange)
	tab, _ := model.ParseTab(cfg.Dashboard.DefaultTab)

	ctrl, err := controller.New(gen, controller.Options{
		DayMultiplier: cfg.Dashboard.DayMultiplier,
		InitialDays:   cfg.Dashboard.InitialDays,
		InitialRange:  initial,
		Logger:        logger.WithComponent(log, "controller"),
		Listeners:     []controller.Listener{controller.NewLogListener(logger.WithComponent(log, "controller"))},
	})
	if err != nil {
		return fail(err)
	}

	renderer := &render.Renderer{
		Width:        cfg.Dashboard.ChartWidth,
		MovingPeriod: cfg.Dashboard.MovingPeriod,
		Settings: render.Settings{
			PointsPerDay:  cfg.Generator.PointsPerDay,
			DayMultiplier: cfg.Dashboard.DayMultiplier,
			StartPrice:    cfg.Generator.StartPrice,
			PriceFloor:    cfg.Generator.PriceFloor,
			VolumeFloor:   cfg.Generator.VolumeFloor,
		},
	}
	view, err := dashboard.New(ctrl, renderer, tab, logger.WithComponent(log, "dashboard"))
	if err != nil {
		return fail(err)
	}
	log.WithField("view_id", view.ID).Debug("dashboard view created")

	a.gen = gen
	a.view = view
	return a, nil
}
