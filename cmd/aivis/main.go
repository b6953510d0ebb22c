package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mkarolik/aivis"
	"github.com/mkarolik/aivis/analyze"
	"github.com/mkarolik/aivis/goquery"
	aivishttp "github.com/mkarolik/aivis/http"
	"github.com/mkarolik/aivis/newsapi"
	"github.com/mkarolik/aivis/openai"
	"github.com/mkarolik/aivis/serper"
	aivislog "github.com/mkarolik/aivis/slog"
	"github.com/mkarolik/aivis/tavily"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv resolves environment variables. Overridable for testing.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Local development keys live in .env; its absence is not an error.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("aivis"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'aivis --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "analyze" {
		apiKey := m.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return aivis.Errorf(aivis.EINVALID, "OPENAI_API_KEY not set")
		}

		logger := stdlog.New(stdlog.NewTextHandler(stderr, nil))

		clientOpts := []openai.ClientOption{openai.WithModel(cli.Analyze.Model)}
		if cli.Analyze.RPS > 0 {
			// Burst matches the probe pool so a full wave of concurrent
			// probes queues behind the limiter instead of erroring.
			burst := cli.Analyze.Concurrency
			if burst < 1 {
				burst = analyze.DefaultConcurrency
			}
			clientOpts = append(clientOpts, openai.WithRateLimit(cli.Analyze.RPS, burst))
		}
		client := openai.NewClient(apiKey, clientOpts...)

		fetcher := aivislog.NewLoggingFetcher(
			aivishttp.NewFetcher(goquery.NewCleaner(), aivishttp.WithLogger(logger)),
			logger,
		)
		prober := aivislog.NewLoggingProber(
			openai.NewProber(client, m.Registry(stderr), openai.WithProberLogger(logger)),
			logger,
		)

		deps.Analyzer = &analyze.Analyzer{
			Fetcher:     fetcher,
			Extractor:   openai.NewExtractor(client),
			Generator:   openai.NewGenerator(client),
			Prober:      prober,
			Concurrency: cli.Analyze.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// Registry assembles the search tools available to the probing model from
// whatever credentials are configured. Tavily covers both web and news
// search, so when a Tavily key is present it is used alone; otherwise
// Serper and NewsAPI register independently. No keys at all means the model
// answers from its own knowledge.
func (m *Main) Registry(stderr io.Writer) *aivis.Registry {
	registry := aivis.NewRegistry()

	if key := m.Getenv("TAVILY_API_KEY"); key != "" {
		registry.Register(tavily.NewUnifiedSearch(key))
		return registry
	}

	if key := m.Getenv("SERPER_API_KEY"); key != "" {
		registry.Register(serper.NewWebSearch(key))
	}
	if key := m.Getenv("NEWS_API_KEY"); key != "" {
		registry.Register(newsapi.NewNewsSearch(key))
	}
	if registry.Len() == 0 {
		fmt.Fprintln(stderr, "No search API keys configured; probing without live search tools")
	}

	return registry
}
