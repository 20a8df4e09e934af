package main

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/git-proxy/internal/app"
	"github.com/MKhiriev/git-proxy/internal/config"
	"github.com/MKhiriev/git-proxy/internal/logger"
	"github.com/MKhiriev/git-proxy/internal/validators"
	"github.com/MKhiriev/git-proxy/models"
)

const role = "git-proxy"

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "git-proxy [flags]",
		Short: "Git proxy configuration loader",
		Long: heredoc.Doc(`
			Resolve listener ports from the environment, check the proxy settings
			document against the bundled schema and load it.

			Ports are read from GIT_PROXY_SERVER_PORT, GIT_PROXY_HTTPS_SERVER_PORT
			and GIT_PROXY_UI_PORT (defaults 8000, 8443 and 3000).
		`),
		Example: heredoc.Doc(`
			$ git-proxy
			$ git-proxy --config ./proxy.config.json
			$ git-proxy -c ./proxy.config.json --validate
			$ GIT_PROXY_SERVER_PORT=9090 git-proxy
		`),
		Version:       info.BuildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags)
		},
	}

	config.BindFlags(cmd.Flags(), &flags)

	return cmd
}

func run(cmd *cobra.Command, flags config.Flags) error {
	log := logger.NewConsoleLogger(role, cmd.ErrOrStderr())

	startup, err := config.GetStartup(flags)
	if err != nil {
		log.Error().Err(err).Msg("error getting startup config")
		return err
	}

	validator, err := validators.NewSchemaValidator(log)
	if err != nil {
		log.Error().Err(err).Msg("error loading configuration schema")
		return err
	}

	a, err := app.New(startup, validator, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating application")
		return err
	}

	if err = a.Run(); err != nil {
		if errors.Is(err, app.ErrInvalidConfiguration) {
			fmt.Fprintln(cmd.ErrOrStderr(), renderViolations(startup.ConfigFile, a.Violations()))
		}
		log.Error().Err(err).Msg("error running application")
		return err
	}

	if startup.ValidateOnly {
		fmt.Fprintln(cmd.OutOrStdout(), renderValid(startup.ConfigFile))
		return nil
	}

	rt, err := a.Runtime()
	if err != nil {
		return err
	}

	log.Info().
		Int("server_port", rt.Ports.Server).
		Int("https_server_port", rt.Ports.HTTPSServer).
		Int("ui_port", rt.Ports.UI).
		Str("ssl_key", rt.SSLKeyPath).
		Str("ssl_cert", rt.SSLCertPath).
		Str("proxy_url", rt.Config.ProxyURL).
		Msg("configuration ready")

	return nil
}
