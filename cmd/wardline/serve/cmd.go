package serve

import (
	"net/http"
	"os"

	"wardline/auth"
	authapi "wardline/auth/api"
	"wardline/internal/cmdflags"
	"wardline/internal/config"
	"wardline/internal/httpserver"
	"wardline/internal/logutil"
	"wardline/ward"
	wardapi "wardline/ward/api"

	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var configPath string
	var registryPath string
	var bindAddr string
	var secretEnvVar string
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the clinical records API",
		Flags: []cli.Flag{
			cmdflags.Config(&configPath),
			cmdflags.Registry(&registryPath),
			cmdflags.SecretEnvVar(&secretEnvVar),
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind the API on (overrides config)",
				Destination: &bindAddr,
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if registryPath != "" {
				cfg.Registry.Path = registryPath
			}
			if bindAddr != "" {
				cfg.HTTPServer.Address = bindAddr
			}
			logger := logutil.Setup(cfg.Env)
			rootCtx := logutil.WithLogger(ctx.Context, logger)

			secret, err := auth.SecretFromEnv(secretEnvVar, os.Getenv, os.Setenv)
			if err != nil {
				return err
			}
			reg, err := ward.OpenRegistry(rootCtx, cfg.Registry.Path, true)
			if err != nil {
				return err
			}
			defer reg.Close()

			codec := auth.NewCodec(secret)
			realm := authapi.NewRealm(codec)
			stats := ward.NewStatsCache(cfg.HTTPServer.StatsTTL)

			mux := http.NewServeMux()
			mux.Handle("/api/auth/login", authapi.LoginHandler(reg, codec, cfg.HTTPServer.StoreTimeout))
			mux.Handle("/", realm.Protect(wardapi.Handler(reg, stats)))

			logger.Info().Str("registry", cfg.Registry.Path).Msg("Starting wardline API")
			return httpserver.Serve(rootCtx, cfg.HTTPServer.Address, logutil.RequestLogger(mux))
		},
	}
}
