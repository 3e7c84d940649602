package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"product-catalog/internal/catalog"
	"product-catalog/internal/client"
	"product-catalog/internal/config"
	"product-catalog/internal/model"
	"product-catalog/internal/render"
	"product-catalog/internal/synonym"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const usage = `usage: catalog [flags] <command> [args]

commands:
  list                      show every product
  search <query...>         search products
  add -name N -price P -description D [-image URL]
                            add a product

flags:
`

// Search modes.
const (
	searchLocal  = "local"
	searchRemote = "remote"
)

// options holds the parsed global flags.
type options struct {
	apiURL     string
	apiKey     string
	sort       catalog.SortKey
	view       catalog.ViewMode
	searchMode string
	synonyms   string
	s3Bucket   string
	s3Region   string
	s3Prefix   string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errors.New("missing command (list, search or add)")
	}

	logger := config.NewLoggerTo(stderr, config.LoggerConfig{Level: opts.logLevel, Format: "console"})
	api := client.New(opts.apiURL, logger, client.WithAPIKey(opts.apiKey))

	switch rest[0] {
	case "list":
		state := catalog.NewState(nil, opts.sort, opts.view)
		if err := fetchBaseline(ctx, api, state); err != nil {
			return err
		}
		return show(stdout, state)

	case "search":
		query := strings.Join(rest[1:], " ")
		if opts.searchMode == searchRemote {
			return searchRemotely(ctx, api, opts, query, stdout)
		}
		table := loadSynonyms(ctx, opts, logger)
		state := catalog.NewState(table, opts.sort, opts.view)
		if err := fetchBaseline(ctx, api, state); err != nil {
			return err
		}
		state.Search(query)
		return show(stdout, state)

	case "add":
		return add(ctx, api, rest[1:], stdout, stderr)
	}

	return fmt.Errorf("unknown command %q", rest[0])
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	opts := &options{}
	var sortKey, view string
	fs.StringVar(&opts.apiURL, "api", envOrDefault("CATALOG_API_URL", client.DefaultBaseURL), "product API base URL")
	fs.StringVar(&opts.apiKey, "api-key", os.Getenv("API_KEY"), "API key sent when adding products")
	fs.StringVar(&sortKey, "sort", string(catalog.SortNewest), "sort order: newest, oldest, price-high, price-low, name")
	fs.StringVar(&view, "view", string(catalog.ViewGrid), "view mode: grid or list")
	fs.StringVar(&opts.searchMode, "search", searchLocal, "search mode: local (contextual) or remote (server substring)")
	fs.StringVar(&opts.synonyms, "synonyms", "", "synonym table JSON file (.gz allowed); built-in table when empty")
	fs.StringVar(&opts.s3Bucket, "synonyms-s3-bucket", "", "S3 bucket holding the synonym table")
	fs.StringVar(&opts.s3Region, "synonyms-s3-region", "us-east-1", "AWS region of the synonym bucket")
	fs.StringVar(&opts.s3Prefix, "synonyms-s3-prefix", "", "key prefix for the synonym table in S3")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var err error
	if opts.sort, err = catalog.ParseSortKey(sortKey); err != nil {
		return nil, nil, err
	}
	if opts.view, err = catalog.ParseViewMode(view); err != nil {
		return nil, nil, err
	}
	if opts.searchMode != searchLocal && opts.searchMode != searchRemote {
		return nil, nil, fmt.Errorf("unknown search mode %q (want local or remote)", opts.searchMode)
	}

	return opts, fs.Args(), nil
}

func fetchBaseline(ctx context.Context, api *client.Client, state *catalog.State) error {
	token := state.BeginFetch()
	products, err := api.List(ctx)
	if err != nil {
		return err
	}
	state.ApplyBaseline(token, products)
	return nil
}

func searchRemotely(ctx context.Context, api *client.Client, opts *options, query string, stdout io.Writer) error {
	state := catalog.NewState(nil, opts.sort, opts.view)
	if strings.TrimSpace(query) == "" {
		if err := fetchBaseline(ctx, api, state); err != nil {
			return err
		}
		return show(stdout, state)
	}

	token := state.BeginFetch()
	products, err := api.Search(ctx, query)
	if err != nil {
		return err
	}
	state.ApplyVisible(token, query, products)
	return show(stdout, state)
}

// loadSynonyms returns the configured synonym table, or the built-in one when
// none is configured or loading fails.
func loadSynonyms(ctx context.Context, opts *options, logger zerolog.Logger) synonym.Table {
	if opts.synonyms == "" && opts.s3Bucket == "" {
		return synonym.Default()
	}

	name := opts.synonyms
	if name == "" {
		name = "synonyms.json"
	}

	var s3Loader synonym.Loader
	if opts.s3Bucket != "" {
		l, err := synonym.NewS3Loader(ctx, opts.s3Bucket, opts.s3Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 loader, using local file system only")
		} else {
			s3Loader = l
		}
	}

	loader := synonym.NewFallbackLoader(s3Loader, synonym.NewFileLoader(logger), opts.s3Prefix, opts.s3Bucket != "", logger)
	table, err := loader.Load(ctx, name)
	if err != nil {
		logger.Warn().Err(err).Str("synonyms", name).Msg("failed to load synonyms, using built-in table")
		return synonym.Default()
	}
	return table
}

func show(stdout io.Writer, state *catalog.State) error {
	products := state.Displayed()
	if len(products) > 0 {
		if _, err := fmt.Fprintln(stdout, render.Summary(len(products))); err != nil {
			return err
		}
	}
	return render.Render(stdout, products, state.View())
}

func add(ctx context.Context, api *client.Client, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "", "product name")
	price := fs.String("price", "", "product price")
	description := fs.String("description", "", "product description")
	image := fs.String("image", "", "image URL (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &model.CreateProductRequest{
		Name:        *name,
		Description: *description,
	}
	if *price != "" {
		p, err := decimal.NewFromString(*price)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", *price, err)
		}
		req.Price = &p
	}
	if *image != "" {
		req.ImageURL = image
	}

	product, err := api.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Product added successfully!")
	return render.Render(stdout, []model.Product{*product}, catalog.ViewList)
}

func envOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
