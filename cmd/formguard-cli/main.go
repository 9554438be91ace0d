package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/tui"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formguard/pkg/uischema"
)

func main() {
	configPath := flag.String("config", "", "UI schema document (embedded signup form if empty)")
	format := flag.String("format", "json", "submission output format: json, form or pretty")
	themeName := flag.String("theme", "", "banner theme name")
	variant := flag.String("variant", "", "banner theme variant (light or dark)")
	htmlPath := flag.String("html", "", "also write the submitted form as an HTML page to this file")
	verbose := flag.Bool("verbose", false, "log controller events at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	outputFormat, ok := tui.ParseOutputFormat(*format)
	if !ok {
		log.Fatalf("invalid format: %q", *format)
	}

	options := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if *configPath != "" {
		cfg, err := uischema.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		options = append(options, orchestrator.WithUIConfig(cfg))
	}
	orch := orchestrator.New(options...)

	renderOptions, err := orch.RenderOptions(*themeName, *variant)
	if err != nil {
		log.Fatalf("Failed to resolve form: %v", err)
	}

	var accepted form.Outcome
	session, err := tui.New(
		tui.WithOutputFormat(outputFormat),
		tui.WithAcceptHook(func(outcome form.Outcome) { accepted = outcome }),
		tui.WithFields(renderOptions.Fields),
		tui.WithControllerOptions(orch.ControllerOptions()...),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if renderOptions.Title != "" {
		fmt.Println(renderOptions.Title)
	}

	payload, err := session.Run(ctx)
	if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
		logger.Info("signup cancelled")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}
	fmt.Println(string(payload))

	if *htmlPath != "" {
		page, err := renderPage(ctx, accepted, renderOptions)
		if err != nil {
			log.Fatalf("Failed to render page: %v", err)
		}
		if err := os.WriteFile(*htmlPath, page, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		logger.Info("form written", "path", *htmlPath)
	}
}

// renderPage draws the accepted form as it looked before the reset. Secret
// fields stay empty.
func renderPage(ctx context.Context, outcome form.Outcome, options render.RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}

	var values model.Values
	if outcome.Submitted != nil {
		values = model.Values{
			FullName: outcome.Submitted.FullName,
			Email:    outcome.Submitted.Email,
			Phone:    outcome.Submitted.Phone,
		}
	}
	state := form.Cleared()
	if outcome.Accepted {
		state.Message = form.Message{
			Kind:    form.MessageSuccess,
			Text:    form.SuccessText(values.FullName),
			Visible: true,
		}
	}
	return renderer.RenderPage(ctx, values, state, options)
}
