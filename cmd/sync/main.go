package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pitchmetrics/pitchmetrics/internal/app"
	"github.com/pitchmetrics/pitchmetrics/internal/config"
	"github.com/pitchmetrics/pitchmetrics/internal/observability"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
	"github.com/pitchmetrics/pitchmetrics/internal/usecase"
)

const dateLayout = "2006-01-02"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runErr error
	switch cmd := strings.ToLower(strings.TrimSpace(os.Args[1])); cmd {
	case "sync":
		runErr = runSync(ctx, application.Sync, os.Args[2:])
	case "sync-specific":
		runErr = runSyncSpecific(ctx, application.Sync, os.Args[2:])
	case "clear":
		runErr = runClear(ctx, application.Sync, os.Args[2:])
	default:
		printUsage()
		runErr = fmt.Errorf("unknown subcommand %q", cmd)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("shutdown tracing", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}

// consoleObserver prints one progress line per phase update. It exists so
// long runs show movement when triggered by hand.
type consoleObserver struct{}

func (consoleObserver) Progress(phase usecase.Phase, current, total int) {
	fmt.Printf("phase=%s %d/%d\n", phase, current, total)
}

func runSync(ctx context.Context, svc *usecase.SyncService, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	tournamentID := fs.Int64("tournamentId", 0, "limit the run to one tournament")
	includeIDs := fs.String("includeIds", "", "comma-separated entity IDs to include")
	excludeIDs := fs.String("excludeIds", "", "comma-separated entity IDs to exclude")
	beforeDate := fs.String("beforeDate", "", "re-sync only documents last synced before this date (YYYY-MM-DD)")
	afterDate := fs.String("afterDate", "", "re-sync only documents last synced after this date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	include, err := parseIDList(*includeIDs)
	if err != nil {
		return fmt.Errorf("parse --includeIds: %w", err)
	}
	exclude, err := parseIDList(*excludeIDs)
	if err != nil {
		return fmt.Errorf("parse --excludeIds: %w", err)
	}
	before, err := parseDate(*beforeDate)
	if err != nil {
		return fmt.Errorf("parse --beforeDate: %w", err)
	}
	after, err := parseDate(*afterDate)
	if err != nil {
		return fmt.Errorf("parse --afterDate: %w", err)
	}

	report, err := svc.Sync(ctx, usecase.SyncInput{
		TournamentID: *tournamentID,
		IncludeIDs:   include,
		ExcludeIDs:   exclude,
		Before:       before,
		After:        after,
		Observer:     consoleObserver{},
	})
	if err != nil {
		return err
	}

	for _, entityErr := range report.Errors {
		fmt.Printf("entity error: %s\n", entityErr)
	}
	fmt.Printf("processed=%d errors=%d\n", report.Processed, len(report.Errors))

	return nil
}

func runSyncSpecific(ctx context.Context, svc *usecase.SyncService, args []string) error {
	fs := flag.NewFlagSet("sync-specific", flag.ExitOnError)
	kind := fs.String("kind", "team", "entity kind: team|player|coach|referee|standings")
	ids := fs.String("ids", "", "comma-separated entity IDs to refresh")
	if err := fs.Parse(args); err != nil {
		return err
	}

	idList, err := parseIDList(*ids)
	if err != nil {
		return fmt.Errorf("parse --ids: %w", err)
	}
	if len(idList) == 0 {
		return fmt.Errorf("--ids is required")
	}

	processed := 0
	var entityErrors []string
	for _, id := range idList {
		if err := svc.SyncEntity(ctx, *kind, id); err != nil {
			if errors.Is(err, usecase.ErrDependencyUnavailable) || errors.Is(err, usecase.ErrInvalidInput) {
				return err
			}
			entityErrors = append(entityErrors, fmt.Sprintf("%s %d: %v", *kind, id, err))
			continue
		}
		processed++
	}

	for _, entityErr := range entityErrors {
		fmt.Printf("entity error: %s\n", entityErr)
	}
	fmt.Printf("processed=%d errors=%d\n", processed, len(entityErrors))

	return nil
}

func runClear(ctx context.Context, svc *usecase.SyncService, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	tournamentID := fs.Int64("tournamentId", 0, "limit the purge to one tournament")
	ids := fs.String("ids", "", "comma-separated entity IDs to remove")
	excludeIDs := fs.String("excludeIds", "", "comma-separated entity IDs to keep")
	beforeDate := fs.String("beforeDate", "", "remove documents last synced before this date (YYYY-MM-DD)")
	afterDate := fs.String("afterDate", "", "remove documents last synced after this date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	idList, err := parseIDList(*ids)
	if err != nil {
		return fmt.Errorf("parse --ids: %w", err)
	}
	exclude, err := parseIDList(*excludeIDs)
	if err != nil {
		return fmt.Errorf("parse --excludeIds: %w", err)
	}
	before, err := parseDate(*beforeDate)
	if err != nil {
		return fmt.Errorf("parse --beforeDate: %w", err)
	}
	after, err := parseDate(*afterDate)
	if err != nil {
		return fmt.Errorf("parse --afterDate: %w", err)
	}

	removed, err := svc.Clear(ctx, usecase.ClearInput{
		TournamentID: *tournamentID,
		IDs:          idList,
		ExcludeIDs:   exclude,
		Before:       before,
		After:        after,
	})
	if err != nil {
		return err
	}

	fmt.Printf("removed=%d\n", removed)

	return nil
}

func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", item, err)
		}
		out = append(out, id)
	}

	return out, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", raw, err)
	}

	return &parsed, nil
}

func printUsage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "usage: %s <sync|sync-specific|clear> [flags]\n", prog)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s sync --tournamentId 17\n", prog)
	fmt.Fprintf(os.Stderr, "  %s sync --includeIds 42,44 --excludeIds 99\n", prog)
	fmt.Fprintf(os.Stderr, "  %s sync --beforeDate 2026-06-01\n", prog)
	fmt.Fprintf(os.Stderr, "  %s sync-specific --kind player --ids 900,901\n", prog)
	fmt.Fprintf(os.Stderr, "  %s clear --tournamentId 17 --beforeDate 2026-01-01\n", prog)
}
