package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auto_park_blog_publisher/airtable"
	"auto_park_blog_publisher/config"
	"auto_park_blog_publisher/emitter"
	"auto_park_blog_publisher/generator"
	"auto_park_blog_publisher/orchestrator"
	"auto_park_blog_publisher/scheduler"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	preview := flag.Bool("preview", false, "build the post without writing files or updating tracking")
	parkID := flag.String("park", "", "force a specific park (record id or exact name)")
	templateID := flag.String("template", "", "force a specific content template")
	season := flag.String("season", "", "force a season (spring, summer, fall, winter)")
	noAI := flag.Bool("no-ai", false, "skip the model and generate from templates only")
	health := flag.Bool("health", false, "check connectivity to the record store, the model, and the content directory")
	stats := flag.Bool("stats", false, "print blog generation statistics")
	serve := flag.Bool("serve", false, "run as a daemon generating on a cron schedule")
	cronSpec := flag.String("cron", "", "cron spec for --serve (overrides SERVE_CRON)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch {
	case *health:
		runHealthCheck(ctx, orch)
	case *stats:
		runStats(ctx, orch)
	case *serve:
		spec := cfg.ServeCron
		if *cronSpec != "" {
			spec = *cronSpec
		}
		runDaemon(ctx, orch, spec, runOptions(*preview, *parkID, *templateID, *season, *noAI))
	default:
		runOnce(ctx, orch, runOptions(*preview, *parkID, *templateID, *season, *noAI))
	}
}

func runOptions(preview bool, parkID, templateID, season string, noAI bool) orchestrator.Options {
	return orchestrator.Options{
		ParkID:     parkID,
		TemplateID: templateID,
		Season:     season,
		Preview:    preview,
		DisableAI:  noAI,
	}
}

func buildOrchestrator(cfg config.Config) (*orchestrator.Orchestrator, error) {
	store, err := airtable.New(cfg.AirtableToken, cfg.AirtableBaseID, cfg.AirtableTable, nil, verbose, log.Default())
	if err != nil {
		return nil, err
	}

	llm, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}
	gen, err := generator.New(llm, verbose, log.Default())
	if err != nil {
		return nil, err
	}

	emit, err := emitter.New(cfg.ContentDir, cfg.AuthorName, verbose, log.Default())
	if err != nil {
		return nil, err
	}

	tuning := orchestrator.Tuning{
		AvoidanceDays:   cfg.AvoidanceDays,
		RecentStates:    cfg.RecentStates,
		MinWordCount:    cfg.MinWordCount,
		MaxWordCount:    cfg.MaxWordCount,
		TemplateWeights: cfg.TemplateWeights,
	}
	return orchestrator.New(store, gen, emit, tuning, verbose, log.Default())
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	settings := generator.Settings{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		APIKey:   cfg.LLMAPIKey,
		BaseURL:  cfg.LLMBaseURL,
	}
	switch cfg.LLMProvider {
	case "openai":
		return generator.NewOpenAILLM(settings)
	case "anthropic":
		return generator.NewAnthropicLLM(settings)
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLMProvider)
	}
}

func runOnce(ctx context.Context, orch *orchestrator.Orchestrator, opts orchestrator.Options) {
	res, err := orch.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blog generation failed: %v\n", err)
		os.Exit(1)
	}
	printResult(res)
}

func printResult(res orchestrator.Result) {
	mode := "generated"
	if res.Preview {
		mode = "preview (no files written, no tracking updated)"
	}
	fmt.Printf("Blog post %s\n", mode)
	fmt.Printf("  Run:       %s\n", res.RunID)
	fmt.Printf("  Park:      %s (%s)\n", res.Park, res.Location)
	fmt.Printf("  Title:     %s\n", res.Title)
	fmt.Printf("  Topic:     %s\n", res.Topic)
	fmt.Printf("  By:        %s (%s)\n", res.GeneratedBy, res.Model)
	fmt.Printf("  Words:     %d\n", res.WordCount)
	if res.Path != "" {
		fmt.Printf("  File:      %s\n", res.Path)
	} else if res.FileName != "" {
		fmt.Printf("  File name: %s\n", res.FileName)
	}
	fmt.Printf("  Duration:  %s\n", res.Duration.Round(10*time.Millisecond))
	if res.TrackingFailed {
		fmt.Printf("\nWARNING: content succeeded but tracking failed: %s\n", res.TrackingError)
		fmt.Println("The store was NOT updated; the next run may generate this park again.")
	}
}

func runHealthCheck(ctx context.Context, orch *orchestrator.Orchestrator) {
	h := orch.HealthCheck(ctx)

	status := func(ok bool, errMsg string) string {
		if ok {
			return "ok"
		}
		return "FAILED: " + errMsg
	}
	fmt.Printf("Record store: %s\n", status(h.Store, h.StoreErr))
	if h.Store {
		fmt.Printf("  %d parks, %d unblogged\n", h.Stats.TotalParks, h.Stats.UnbloggedParks)
	}
	fmt.Printf("AI:           %s\n", status(h.AI, h.AIErr))
	fmt.Printf("File system:  %s\n", status(h.FileSystem, h.FSErr))

	if !h.Overall() {
		os.Exit(1)
	}
	fmt.Println("Overall:      healthy")
}

func runStats(ctx context.Context, orch *orchestrator.Orchestrator) {
	stats, remainingDays, err := orch.Stats(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Blog generation statistics:")
	fmt.Printf("  Total parks:       %d\n", stats.TotalParks)
	fmt.Printf("  Blogged:           %d (%d%%)\n", stats.BloggedParks, stats.ProgressPercent)
	fmt.Printf("  Unblogged:         %d\n", stats.UnbloggedParks)
	fmt.Printf("  Last 30 days:      %d\n", stats.RecentlyBlogged)
	fmt.Printf("  Days to complete:  %d (one post per day)\n", remainingDays)
}

func runDaemon(ctx context.Context, orch *orchestrator.Orchestrator, spec string, opts orchestrator.Options) {
	job := func() {
		res, err := orch.Run(ctx, opts)
		if err != nil {
			log.Printf("[daemon] run failed: %v", err)
			return
		}
		log.Printf("[daemon] generated %q for %s (file=%s trackingFailed=%v)", res.Title, res.Park, res.FileName, res.TrackingFailed)
	}

	sched, err := scheduler.New(spec, job, log.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Printf("starting daemon with schedule %q", spec)
	sched.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	sched.Stop()
}
