package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	shopclient "github.com/jrsteele09/go-shop-client"
	"github.com/jrsteele09/go-shop-client/credentials/filestore"
	"github.com/jrsteele09/go-shop-client/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	apiURL  string
	verbose bool

	// shop is the assembled client shared by every subcommand.
	shop *shopclient.Client
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Storefront command line client",
	Long:  "shopctl talks to the storefront backend: browse the catalog, manage your cart and orders, and administer products, categories and users.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initClient()
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayAppName(config.New().GetAppName())
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.LoadDotEnv()
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (defaults to $API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initClient() error {
	cfg := config.New()

	baseURL := apiURL
	if baseURL == "" {
		baseURL = cfg.GetAPIBaseURL()
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	store, err := filestore.New(cfg.GetDataFolder())
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}

	shop, err = shopclient.New(baseURL,
		shopclient.WithStore(store),
		shopclient.WithLogger(logger),
		shopclient.WithTimeout(cfg.GetHTTPTimeout()),
	)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	return nil
}

func displayAppName(appName string) {
	myFigure := figure.NewFigure(appName, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
