// Command comprehend-stub serves the Comprehend JSON 1.1 contract locally
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"comprehend/internal/core/version"
	"comprehend/internal/modkit"
	modreg "comprehend/internal/modkit/module"
	"comprehend/internal/platform/config"
	"comprehend/internal/platform/logger"
	phttp "comprehend/internal/platform/net/http"
	"comprehend/internal/platform/net/middleware"
	"comprehend/internal/platform/store"

	stubhttp "comprehend/internal/services/stub/http"
	stubmod "comprehend/internal/services/stub/module"

	"github.com/go-chi/chi/v5"
)

func main() {
	var (
		envFile = flag.String("env", "", "optional .env file, read before the environment")
		showVer = flag.Bool("version", false, "print the build and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.Info("comprehend-stub"))
		return
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	if err := config.Load(files...); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	opts := logger.FromEnv()
	opts.Component = "stub"
	logger.Init(opts)
	l := logger.Get()

	root := config.New()
	httpCfg := root.Prefix("STUB_HTTP_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// both backends are optional; empty URLs keep the stub in memory
	st, err := store.Open(ctx, store.FromConfig(root.Prefix("STUB_"), "comprehend-stub"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{Log: *l, Cfg: root}.FromStore(st)
	sm, err := stubmod.New(ctx, deps)
	if err != nil {
		l.Fatal().Err(err).Msg("stub module failed")
	}

	srv := phttp.NewServer(httpCfg, func(m *chi.Mux) {
		m.Use(
			middleware.RequestID(),
			middleware.RealIP(),
			middleware.AccessLog(middleware.AccessLogOptions{
				Slow:            httpCfg.MayDuration("SLOW", 0),
				OperationHeader: "X-Amz-Target",
			}),
			middleware.Recover(stubhttp.WriteFault),
			middleware.MaxBytes(int64(httpCfg.MayInt("MAX_BODY", 16<<20))),
			middleware.CORS(middleware.CORSOptions{
				AllowedOrigins: httpCfg.MayCSV("CORS_ORIGINS", nil),
				MaxAge:         httpCfg.MayInt("CORS_MAX_AGE", 300),
			}),
		)
	})
	modreg.Register(sm)
	sm.MountRoutes(srv.Router())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sm.Run(ctx)
	}()

	l.Info().Str("build", version.Info("comprehend-stub").String()).Str("addr", srv.Addr()).Msg("starting")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
	stop()
	wg.Wait()
}
