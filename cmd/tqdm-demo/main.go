// Demo driver for the tqdm library: iterates a synthetic workload and
// renders the progress bar, optionally mirroring events to a structured
// reporter.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	logrusr "github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/tqdm-go/tqdm"
	"github.com/tqdm-go/tqdm/reporter"
	"github.com/tqdm-go/tqdm/termwidth"
)

// settings mirrors the command flags; a YAML config file can supply the
// same fields, with flags taking precedence. Durations appear in the
// file as millisecond integers (intervalMs, sleepMs).
type settings struct {
	Title    string `yaml:"title"`
	Count    int    `yaml:"count"`
	Width    int    `yaml:"width"`
	Reporter string `yaml:"reporter"`
	LogLevel int    `yaml:"logLevel"`

	IntervalMs int `yaml:"intervalMs"`
	SleepMs    int `yaml:"sleepMs"`

	Interval time.Duration `yaml:"-"`
	Sleep    time.Duration `yaml:"-"`
}

func defaultSettings() settings {
	return settings{
		Title:    "demo",
		Count:    1000,
		Width:    tqdm.DefaultWidth,
		Interval: tqdm.DefaultThrottleInterval,
		Sleep:    10 * time.Millisecond,
		LogLevel: 4,
	}
}

func loadSettings(path string, flagged settings, flags *cobra.Command) (settings, error) {
	if path == "" {
		return flagged, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return flagged, fmt.Errorf("unable to read config file: %w", err)
	}
	cfg := defaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return flagged, fmt.Errorf("unable to parse config file: %w", err)
	}
	if cfg.IntervalMs > 0 {
		cfg.Interval = time.Duration(cfg.IntervalMs) * time.Millisecond
	}
	if cfg.SleepMs > 0 {
		cfg.Sleep = time.Duration(cfg.SleepMs) * time.Millisecond
	}
	// Flags that were set explicitly override the file.
	merge := func(name string, apply func()) {
		if flags.Flags().Changed(name) {
			apply()
		}
	}
	merge("title", func() { cfg.Title = flagged.Title })
	merge("count", func() { cfg.Count = flagged.Count })
	merge("width", func() { cfg.Width = flagged.Width })
	merge("interval", func() { cfg.Interval = flagged.Interval })
	merge("sleep", func() { cfg.Sleep = flagged.Sleep })
	merge("reporter", func() { cfg.Reporter = flagged.Reporter })
	merge("verbose", func() { cfg.LogLevel = flagged.LogLevel })
	return cfg, nil
}

func newLogger(level int) logr.Logger {
	logrusLog := logrus.New()
	logrusLog.SetOutput(os.Stdout)
	logrusLog.SetFormatter(&logrus.TextFormatter{})
	logrusLog.SetLevel(logrus.Level(level))
	return logrusr.New(logrusLog)
}

func newReporter(kind string, log logr.Logger) (tqdm.Reporter, error) {
	switch kind {
	case "":
		return nil, nil
	case "text":
		return reporter.NewThrottledReporter(reporter.NewTextReporter(os.Stdout)), nil
	case "json":
		return reporter.NewThrottledReporter(reporter.NewJSONReporter(os.Stdout)), nil
	case "log":
		return reporter.NewLogReporter(log), nil
	default:
		return nil, fmt.Errorf("unknown reporter %q (want text, json, or log)", kind)
	}
}

func main() {
	flagged := defaultSettings()
	var configFile string

	cmd := &cobra.Command{
		Use:   "tqdm-demo",
		Short: "Render a progress bar over a simulated workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(configFile, flagged, cmd)
			if err != nil {
				return err
			}

			log := newLogger(cfg.LogLevel)

			width := cfg.Width
			if width <= 0 {
				// Leave room for the title, counts, and time bracket.
				width = termwidth.Width(os.Stderr) - 40
				if width <= 0 {
					width = tqdm.DefaultWidth
				}
			}

			opts := []tqdm.Option{
				tqdm.WithTitle(cfg.Title),
				tqdm.WithWidth(width),
				tqdm.WithThrottleInterval(cfg.Interval),
			}

			rep, err := newReporter(cfg.Reporter, log)
			if err != nil {
				return err
			}
			if rep != nil {
				opts = append(opts, tqdm.WithReporters(rep))
			}

			log.V(1).Info("starting demo workload", "count", cfg.Count, "sleep", cfg.Sleep)

			ctx := cmd.Context()
			for range tqdm.ForCount(0, cfg.Count, opts...) {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(cfg.Sleep):
				}
			}

			log.V(1).Info("demo workload finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&flagged.Title, "title", flagged.Title, "progress bar title")
	cmd.Flags().IntVar(&flagged.Count, "count", flagged.Count, "number of simulated steps")
	cmd.Flags().IntVar(&flagged.Width, "width", flagged.Width, "bar width in cells, 0 to size from the terminal")
	cmd.Flags().DurationVar(&flagged.Interval, "interval", flagged.Interval, "minimum gap between redraws")
	cmd.Flags().DurationVar(&flagged.Sleep, "sleep", flagged.Sleep, "simulated work per step")
	cmd.Flags().StringVar(&flagged.Reporter, "reporter", flagged.Reporter, "mirror events to a reporter: text, json, or log")
	cmd.Flags().IntVar(&flagged.LogLevel, "verbose", flagged.LogLevel, "level for logging output")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
