package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/cart-total/internal/config"
	"github.com/noah-isme/cart-total/internal/obs"
	"github.com/noah-isme/cart-total/internal/pricing"
	"github.com/noah-isme/cart-total/internal/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := obs.NewLogger("console", "error", os.Stderr)
		bootLogger.Error().Err(err).Msg("load config")
		os.Exit(1)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel, os.Stderr).With().Str("env", cfg.AppEnv).Logger()

	if cfg.TracingEnabled {
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "cart-total",
			Endpoint:      cfg.OTLPEndpoint,
			SamplingRatio: cfg.TracingSampling,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	svc := &quote.Service{
		Logger:  logger,
		Metrics: obs.NewQuoteMetrics(cfg.MetricsNamespace, nil),
	}
	run(context.Background(), os.Stdout, logger, svc, cfg)
}

// run prices the storefront basket and writes the result line to out.
func run(ctx context.Context, out io.Writer, logger zerolog.Logger, svc *quote.Service, cfg *config.Config) {
	cart := storefrontCart(cfg.Rates)
	res, err := svc.Quote(ctx, cart, quote.Options{IsMember: cfg.IsMember, HasCoupon: cfg.HasCoupon})
	if err != nil {
		logger.Error().Err(err).Msg("calculate total")
		fmt.Fprintln(out, quote.CalculationErrorMessage)
		return
	}
	fmt.Fprintln(out, res.Message())
}

func storefrontCart(rates pricing.Rates) *pricing.Cart {
	cart := pricing.NewCart(rates)
	cart.AddItem(pricing.NewItem("Apple", decimal.RequireFromString("1.5"), 10))
	cart.AddItem(pricing.NewItem("Banana", decimal.RequireFromString("0.5"), 5))
	cart.AddItem(pricing.NewItem("Laptop", decimal.NewFromInt(1000), 1, pricing.WithCategory(pricing.CategoryElectronics)))
	return cart
}
