// Command quicksort sorts a fixed sequence of integers in place and prints
// it before and after sorting, one labelled line each, on stdout.
// Diagnostics go to the logger (stderr by default); see the logger and
// telemetry packages for the environment variables they read.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/amp-labs/amp-quicksort/build"
	"github.com/amp-labs/amp-quicksort/logger"
	"github.com/amp-labs/amp-quicksort/quicksort"
	"github.com/amp-labs/amp-quicksort/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	appName    = "quicksort"
	tracerName = "github.com/amp-labs/amp-quicksort/cmd/quicksort"
)

// buildInfo is injected at link time with -ldflags "-X main.buildInfo=...".
var buildInfo string //nolint:gochecknoglobals

func main() {
	ctx := context.Background()

	if _, err := logger.ConfigureLogging(ctx, appName); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error configuring logging: %v\n", err)

		os.Exit(1)
	}

	if err := start(ctx); err != nil {
		logger.Fatal("quicksort failed", "error", err)
	}
}

func start(ctx context.Context) error {
	ctx = logger.With(ctx, "run_id", uuid.NewString())
	log := logger.Get(ctx)

	info, _ := build.Load(buildInfo)
	log.Debug("starting", "build", info)

	cfg, err := telemetry.LoadConfigFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("loading telemetry config: %w", err)
	}

	if err := telemetry.Initialize(ctx, cfg); err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := telemetry.Shutdown(ctx); err != nil {
			log.Warn("error shutting down telemetry", "error", err)
		}
	}()

	return run(ctx, os.Stdout, log, otel.Tracer(tracerName))
}

// run prints the sequence, sorts it, checks the result and prints it again.
func run(ctx context.Context, out io.Writer, log *slog.Logger, tracer trace.Tracer) error {
	sequence := []int{5, 2, 9, 1, 5, 6}
	original := slices.Clone(sequence)

	if _, err := fmt.Fprintln(out, "Before sorting:", sequence); err != nil {
		return fmt.Errorf("printing unsorted sequence: %w", err)
	}

	var counter quicksort.Counter

	sorter := quicksort.New[int](
		quicksort.WithName(appName),
		quicksort.WithObserver(&counter))

	_, span := tracer.Start(ctx, "quicksort.Sort",
		trace.WithAttributes(attribute.Int("elements", len(sequence))))

	sorter.Sort(sequence)

	span.SetAttributes(
		attribute.Int64("comparisons", counter.Comparisons()),
		attribute.Int64("swaps", counter.Swaps()),
		attribute.Int64("max_depth", counter.MaxDepth()))

	if err := quicksort.Verify(original, sequence); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sorted sequence failed verification")
		span.End()

		return err
	}

	span.End()

	log.Debug("sorted sequence",
		"elements", len(sequence),
		"comparisons", counter.Comparisons(),
		"swaps", counter.Swaps(),
		"max_depth", counter.MaxDepth())

	if _, err := fmt.Fprintln(out, "After sorting:", sequence); err != nil {
		return fmt.Errorf("printing sorted sequence: %w", err)
	}

	return nil
}
