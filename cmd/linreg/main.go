package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/linear-regression/infra/config"
	"github.com/drakos74/linear-regression/internal/algo/regression"
	"github.com/drakos74/linear-regression/internal/metrics"
	"github.com/drakos74/linear-regression/internal/report"
	"github.com/drakos74/linear-regression/internal/storage"
	jsonstorage "github.com/drakos74/linear-regression/internal/storage/file/json"
)

const table = "linreg"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("linreg failed")
	}
}

// run trains the model and prints the learned [W b] on stdout.
// Logs and the optional report go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, NoColor: true})

	flags := flag.NewFlagSet("linreg", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfgPath := flags.String("config", "", "Path to a JSON config overriding the defaults")
	steps := flags.Int("steps", 0, "Number of gradient descent steps")
	rate := flags.Float64("rate", 0, "Learning rate")
	level := flags.String("level", "", "Log level (debug, info, warn, error)")
	out := flags.String("out", "", "Directory to store the training run in")
	metricsPath := flags.String("metrics", "", "File to write the prometheus metrics to")
	withReport := flags.Bool("report", false, "Print the loss table and plot on stderr")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *level != "" {
		lvl, err := zerolog.ParseLevel(*level)
		if err != nil {
			return fmt.Errorf("invalid log level '%s': %w", *level, err)
		}
		zerolog.SetGlobalLevel(lvl)
	}

	cfg := regression.Config{}
	config.MustLoad(table, &cfg)
	if *cfgPath != "" {
		if _, err := config.Load(*cfgPath, &cfg); err != nil {
			return err
		}
		log.Info().Str("path", *cfgPath).Msg("loaded config")
	}
	if *steps > 0 {
		cfg.Steps = *steps
	}
	if *rate > 0 {
		cfg.LearningRate = *rate
	}

	runID := uuid.New().String()
	trainer := regression.NewTrainer(cfg)

	var m *metrics.Metrics
	if *metricsPath != "" {
		m = metrics.New()
		trainer.WithObserver(m)
	}

	result, err := trainer.Train()
	if err != nil {
		return fmt.Errorf("training run %s failed: %w", runID, err)
	}

	if m != nil {
		if err := m.WriteToTextfile(*metricsPath); err != nil {
			log.Error().Err(err).Str("run", runID).Msg("could not export metrics")
		}
	}

	shard := storage.VoidShard()
	if *out != "" {
		shard = jsonstorage.BlobShard(*out, table)
	}
	if err := persist(shard, runID, result); err != nil {
		log.Error().Err(err).Str("run", runID).Msg("could not store training run")
	}

	if *withReport {
		if err := report.Write(stderr, result); err != nil {
			log.Error().Err(err).Msg("could not write report")
		}
	}

	_, err = fmt.Fprintln(stdout, result.Params)
	return err
}

func persist(shard storage.Shard, run string, result regression.Result) error {
	store, err := shard("runs")
	if err != nil {
		return fmt.Errorf("could not create storage: %w", err)
	}
	k := storage.Key{
		Run:   run,
		Label: "result",
	}
	if err := store.Store(k, result); err != nil {
		return err
	}
	log.Debug().Str("run", run).Msg("stored training run")
	return nil
}
