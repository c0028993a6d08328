package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/userrate/userrate/internal/config"
	"github.com/userrate/userrate/internal/infra/emojistore"
	"github.com/userrate/userrate/internal/infra/hackatime"
	"github.com/userrate/userrate/internal/infra/pagecache"
	"github.com/userrate/userrate/internal/infra/slackapi"
	"github.com/userrate/userrate/internal/present/rest"
	"github.com/userrate/userrate/internal/service"
	"github.com/userrate/userrate/internal/usecase"
)

// emojiStore is the intersection of what the refresh job writes and what
// the renderer reads.
type emojiStore interface {
	Replace(ctx context.Context, emojis map[string]string) error
	Lookup(ctx context.Context, name string) (string, bool)
}

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		cleanup, err := setupTracing(ctx, conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer cleanup(ctx)
	}

	slackClient := slack.New(conf.Slack.BotToken,
		slack.OptionHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	)
	slackRepo := slackapi.NewRepository(slackClient)

	var store emojiStore
	if conf.Emoji.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: conf.Emoji.RedisAddr,
			DB:   conf.Emoji.RedisDB,
		})
		store = emojistore.NewRedisStore(rdb)
	} else {
		store = emojistore.NewFileStore(conf.Emoji.CachePath)
	}

	emojiSvc := service.NewEmojiService(slackRepo, store, conf.Emoji.RefreshInterval())
	go emojiSvc.Run(ctx)

	activity := hackatime.New(conf.Hackatime.BaseURL, conf.Hackatime.APIKey)
	profile := usecase.NewProfileUsecase(slackRepo, activity, store)

	renderer, err := rest.NewRenderer()
	if err != nil {
		panic("failed to load profile template: " + err.Error())
	}

	var pages pagecache.Cache = pagecache.Noop{}
	if conf.Server.MemcachedAddr != "" {
		pages = pagecache.NewMemcached(conf.Server.MemcachedAddr, conf.Server.PageCacheTTLSeconds)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("userrate"))
	}

	handler := rest.NewHandler(profile, renderer, pages)
	handler.RegisterRoutes(e)

	slog.Info("starting userrate", slog.String("addr", conf.Server.ListenAddr))
	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}

func setupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
