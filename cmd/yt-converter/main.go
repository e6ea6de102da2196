// Command yt-converter runs one conversion against the conversion service
// and saves the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/yt-converter/internal/config"
	"github.com/ytget/yt-converter/internal/convert"
	"github.com/ytget/yt-converter/internal/model"
	"github.com/ytget/yt-converter/internal/platform"
)

const appName = "yt-converter"

var errUsage = errors.New("exactly one video URL is required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Printf("%s: %v", appName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.StringP("config", "c", "", "path to a config file")
	fs.String("server", config.DefaultServerURL, "conversion service base URL")
	fs.Duration("interval", config.DefaultPollInterval, "progress poll interval")
	fs.Duration("timeout", config.DefaultRequestTimeout, "HTTP request timeout")
	fs.StringP("output", "o", "", "directory for the converted file (default: ~/Downloads)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <url>\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		return err
	}

	outputDir := cfg.DownloadDir
	if outputDir == "" {
		if outputDir, err = platform.GetHomeDownloadsDir(); err != nil {
			return fmt.Errorf("resolve downloads directory: %w", err)
		}
	}

	api, err := convert.NewAPIClient(cfg.ServerURL, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	svc := convert.NewService(api, cfg.PollInterval)
	defer svc.Close()

	finished := make(chan model.ConversionTask, 1)
	lastPercent := -1
	svc.SetUpdateCallback(func(task model.ConversionTask) {
		showPercent := task.State == model.StatePolling || task.State == model.StateDone
		if showPercent && task.Percent != lastPercent {
			lastPercent = task.Percent
			fmt.Fprintf(stdout, "%s %3d%%\n", task.ID, task.Percent)
		}
		if task.State.IsFinished() {
			select {
			case finished <- task:
			default:
			}
		}
	})

	if err := svc.Submit(ctx, fs.Arg(0)); err != nil {
		return err
	}

	var task model.ConversionTask
	select {
	case task = <-finished:
	case <-ctx.Done():
		return ctx.Err()
	}

	if task.State == model.StateFailed {
		if task.Failure == model.FailureConversion {
			return &convert.ConversionError{TaskID: task.ID}
		}
		return errors.New(task.LastError)
	}

	path, err := svc.Download(ctx, outputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved %s (%s)\n", path, task.GetElapsedString(time.Now()))
	return nil
}

// loadConfig layers flags over environment, config file and defaults
func loadConfig(fs *pflag.FlagSet, path string) (*config.Config, error) {
	v := config.NewViper()
	bindings := map[string]string{
		config.ConfigKeyServerURL:      "server",
		config.ConfigKeyPollInterval:   "interval",
		config.ConfigKeyRequestTimeout: "timeout",
		config.ConfigKeyDownloadDir:    "output",
	}
	for key, name := range bindings {
		if err := bindFlag(v, key, fs.Lookup(name)); err != nil {
			return nil, err
		}
	}

	if err := config.ReadInto(v, path); err != nil {
		return nil, err
	}
	return config.FromViper(v)
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind flag %s: %w", flag.Name, err)
	}
	return nil
}
