package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/restlog/internal/app"
	"github.com/oshokin/restlog/internal/config"
	"github.com/oshokin/restlog/internal/logger"
	"github.com/oshokin/restlog/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "restlog [flags] {url}",
		Short: "Send an HTTP request and log the request and response bodies.",
		Long: `restlog sends a single HTTP request and logs it at debug level:

  Request: POST /hello world £
  Response: 200 hello £

Bodies are decoded with the charset declared in their Content-Type header,
or with the configured default charset (ISO-8859-1) when none is declared.
The response body is printed to stdout, log lines go to stderr.`,
		Version:          version.Short(),
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			params, err := requestParamsFromFlags(cmd.Flags(), args[0])
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, params)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	addRequestFlags(rootCmd.Flags())
}

// addRequestFlags registers the flags describing the request and its logging.
func addRequestFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"method",
		"X",
		http.MethodGet,
		"HTTP method to use.")

	flags.StringP(
		"data",
		"d",
		"",
		"request body to send.")

	flags.StringArrayP(
		"header",
		"H",
		nil,
		"request header in 'Name: value' form, may be repeated.")

	flags.StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error (request/response lines need debug).")

	flags.String(
		"max-body",
		"",
		"maximum logged body size, for example: 4KB, 1MB, 0 for no limit.")

	flags.Bool(
		"decode-content",
		false,
		"log compressed bodies (gzip, deflate, br, zstd) in decompressed form.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("max-body"); flag != nil && flag.Changed {
		cfg.MaxBodyLogLength, _ = flags.GetString("max-body")
	}

	if flag := flags.Lookup("decode-content"); flag != nil && flag.Changed {
		cfg.DecodeContentEncoding, _ = flags.GetBool("decode-content")
	}

	return config.ValidateConfig(cfg)
}

func requestParamsFromFlags(flags *pflag.FlagSet, url string) (app.RequestParams, error) {
	method, err := flags.GetString("method")
	if err != nil {
		return app.RequestParams{}, err
	}

	data, err := flags.GetString("data")
	if err != nil {
		return app.RequestParams{}, err
	}

	headers, err := flags.GetStringArray("header")
	if err != nil {
		return app.RequestParams{}, err
	}

	return app.RequestParams{
		Method:  method,
		URL:     url,
		Data:    data,
		Headers: headers,
	}, nil
}
