package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aliefadha/tekiro-cms/client"
	"github.com/aliefadha/tekiro-cms/client/query"
	"github.com/aliefadha/tekiro-cms/internal/config"
	"github.com/aliefadha/tekiro-cms/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// requestTimeout bounds one command, retries included.
const requestTimeout = 30 * time.Second

// fallbackMessage is shown when a failure carries no backend message.
const fallbackMessage = "Request failed"

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", client.ErrorMessage(err, fallbackMessage))
		os.Exit(1)
	}
}

// app carries what every command needs once the root pre-run has built it.
type app struct {
	apiURL    string
	tokenFile string
	envFile   string
	debug     bool

	cfg    *config.Config
	client *client.Client
	cache  *query.Cache
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "tekiro",
		Short:         "Manage Tekiro CMS content from the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Backend origin (default $TEKIRO_API_BASE_URL or "+client.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&a.tokenFile, "token-file", "", "Where the auth token is stored (default $TEKIRO_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "Optional .env file with TEKIRO_* settings")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Log HTTP traffic and debug output")

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newWhoAmICmd(a))
	rootCmd.AddCommand(newDashboardCmd(a))
	rootCmd.AddCommand(newAssetURLCmd(a))
	rootCmd.AddCommand(newCategoryCmd(a))
	rootCmd.AddCommand(newProductCmd(a))
	rootCmd.AddCommand(newCatalogCmd(a))
	rootCmd.AddCommand(newCordlessCmd(a))
	rootCmd.AddCommand(newGalleryCmd(a))
	rootCmd.AddCommand(newArticleCmd(a))

	return rootCmd
}

// setup loads configuration, applies flag overrides, and builds the logger,
// client and query cache.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.New(a.envFile)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIBaseURL = client.ResolveBaseURL(a.apiURL)
	}
	if a.tokenFile != "" {
		cfg.TokenFile = a.tokenFile
	}
	cfg.Debug = cfg.Debug || a.debug

	log.Logger = logger.New("tekiro", cmd.ErrOrStderr(), cfg.LogFormat == "console", cfg.Debug)
	log.Debug().Str("api_url", cfg.APIBaseURL).Str("token_file", cfg.TokenFile).Msg("debug logging enabled")

	c, err := client.New(cfg.ClientOptions()...)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.client = c
	a.cache = query.New(query.WithStaleTime(cfg.CacheTTL))
	return nil
}

// ------------------------- helpers -------------------------

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fetchAndPrint runs a read through the query cache (with retries) and
// prints the result.
func fetchAndPrint[T any](cmd *cobra.Command, a *app, key []string, fn func(context.Context) (T, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	start := time.Now()
	v, err := query.Fetch(ctx, a.cache, key, fn)
	log.Debug().Strs("key", key).Dur("elapsed", time.Since(start)).Err(err).Msg("fetch completed")
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), v)
}

// mutateAndPrint runs a write once, invalidates the given keys and prints
// the result.
func mutateAndPrint[T any](cmd *cobra.Command, a *app, fn func(context.Context) (T, error), invalidate ...[]string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	start := time.Now()
	v, err := query.Mutate(ctx, a.cache, fn, invalidate...)
	log.Debug().Dur("elapsed", time.Since(start)).Err(err).Msg("mutation completed")
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), v)
}

// deleted is printed after a successful delete.
type deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func deleteAndPrint(cmd *cobra.Command, a *app, id string, fn func(context.Context, string) error, invalidate ...[]string) error {
	return mutateAndPrint(cmd, a, func(ctx context.Context) (deleted, error) {
		if err := fn(ctx, id); err != nil {
			return deleted{}, err
		}
		return deleted{ID: id, Deleted: true}, nil
	}, invalidate...)
}

func upload(path string) client.Upload { return client.Upload{Path: path} }

func optionalUpload(path string) *client.Upload {
	if path == "" {
		return nil
	}
	u := upload(path)
	return &u
}
