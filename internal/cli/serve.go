package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/logging"
	"github.com/KodeaLabs/viventa/internal/web"
)

// serveConfig is the resolved server configuration: defaults, then config
// file, then environment, then flags.
type serveConfig struct {
	port     int
	env      string
	apiURL   string
	loginURL string
	limiter  struct {
		rps     float64
		burst   int
		enabled bool
	}
}

func newServeCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := serveConfigSetup(viper.New(), cmd, configFile)
			if err != nil {
				return err
			}
			return runServe(config)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: search for viventa.toml)")
	cmd.Flags().Int("port", 4000, "port to listen on")
	cmd.Flags().String("env", "development", "environment (development|staging|production)")
	cmd.Flags().String("api-url", defaultAPIURL, "marketplace API base URL")
	cmd.Flags().String("login-url", "", "identity provider login URL")
	cmd.Flags().Float64("limiter-rps", 10, "rate limit requests per second per client")
	cmd.Flags().Int("limiter-burst", 20, "rate limit burst per client")
	cmd.Flags().Bool("limiter-enabled", true, "enable per-client rate limiting")

	return cmd
}

func serveConfigSetup(conf *viper.Viper, cmd *cobra.Command, configFile string) (serveConfig, error) {
	conf.SetDefault("server.port", 4000)
	conf.SetDefault("server.env", "development")
	conf.SetDefault("server.loginURL", "")
	conf.SetDefault("server.limiter.rps", 10.0)
	conf.SetDefault("server.limiter.burst", 20)
	conf.SetDefault("server.limiter.enabled", true)
	conf.SetDefault("api.url", defaultAPIURL)

	if configFile != "" {
		conf.SetConfigFile(configFile)
	} else {
		conf.SetConfigName("viventa")
		conf.SetConfigType("toml")
		conf.AddConfigPath("/etc/viventa/")
		conf.AddConfigPath("$HOME/.config/viventa/")
		conf.AddConfigPath(".")
	}

	if err := conf.ReadInConfig(); err != nil {
		// A missing config file is fine unless one was named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return serveConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	conf.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	conf.BindPFlag("server.env", cmd.Flags().Lookup("env"))
	conf.BindPFlag("server.loginURL", cmd.Flags().Lookup("login-url"))
	conf.BindPFlag("server.limiter.rps", cmd.Flags().Lookup("limiter-rps"))
	conf.BindPFlag("server.limiter.burst", cmd.Flags().Lookup("limiter-burst"))
	conf.BindPFlag("server.limiter.enabled", cmd.Flags().Lookup("limiter-enabled"))
	conf.BindPFlag("api.url", cmd.Flags().Lookup("api-url"))

	var config serveConfig
	config.port = conf.GetInt("server.port")
	config.env = conf.GetString("server.env")
	config.apiURL = conf.GetString("api.url")
	config.loginURL = conf.GetString("server.loginURL")
	config.limiter.rps = conf.GetFloat64("server.limiter.rps")
	config.limiter.burst = conf.GetInt("server.limiter.burst")
	config.limiter.enabled = conf.GetBool("server.limiter.enabled")

	return config, nil
}

func runServe(config serveConfig) error {
	logging.Setup(config.env)

	client := api.New(config.apiURL)
	if token := getToken(); token != "" {
		client.SetAccessToken(token)
	}

	var webConfig web.Config
	webConfig.LoginURL = config.loginURL
	webConfig.Limiter.RPS = config.limiter.rps
	webConfig.Limiter.Burst = config.limiter.burst
	webConfig.Limiter.Enabled = config.limiter.enabled

	server, err := web.NewServer(client, webConfig)
	if err != nil {
		return err
	}
	return server.ListenAndServe(config.port)
}
