package quote

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/cart-total/internal/obs"
	"github.com/noah-isme/cart-total/internal/pricing"
)

// ErrNilCart is returned when Quote is called without a cart.
var ErrNilCart = errors.New("quote: nil cart")

const (
	resultOK       = "ok"
	resultNegative = "negative"
)

// Options carries the customer flags for a calculation.
type Options struct {
	IsMember  bool
	HasCoupon bool
}

// Result is one computed cart total together with its breakdown.
type Result struct {
	ID           uuid.UUID
	Currency     string
	Summary      pricing.Summary
	Options      Options
	ItemCount    int
	CalculatedAt time.Time
}

// Negative reports whether the computed total is below zero.
func (r Result) Negative() bool {
	return r.Summary.Total.IsNegative()
}

// Message renders the customer-facing line for the result.
func (r Result) Message() string {
	return Message(r.Summary.Total)
}

// Service computes cart totals and records them in logs, metrics and traces.
type Service struct {
	Logger  zerolog.Logger
	Tracer  trace.Tracer
	Metrics *obs.QuoteMetrics
	Now     func() time.Time
	NewID   func() uuid.UUID
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() uuid.UUID {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New()
}

func (s *Service) tracer() trace.Tracer {
	if s.Tracer != nil {
		return s.Tracer
	}
	return obs.Tracer()
}

// Quote computes the total for cart. A negative total is reported through
// the result, not as an error.
func (s *Service) Quote(ctx context.Context, cart *pricing.Cart, opts Options) (Result, error) {
	if cart == nil {
		return Result{}, ErrNilCart
	}
	ctx, span := s.tracer().Start(ctx, "quote.calculate")
	defer span.End()

	summary := cart.Breakdown(opts.IsMember, opts.HasCoupon)
	if err := summary.Verify(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inconsistent summary")
		return Result{}, err
	}
	res := Result{
		ID:           s.newID(),
		Currency:     cart.Rates().Currency,
		Summary:      summary,
		Options:      opts,
		ItemCount:    cart.Len(),
		CalculatedAt: s.now(),
	}

	outcome := resultOK
	if res.Negative() {
		outcome = resultNegative
	}
	amount := summary.Total.InexactFloat64()

	span.SetAttributes(
		attribute.String("quote.id", res.ID.String()),
		attribute.Int("quote.items", res.ItemCount),
		attribute.Bool("quote.member", opts.IsMember),
		attribute.Bool("quote.coupon", opts.HasCoupon),
		attribute.String("quote.total", summary.Total.String()),
		attribute.String("quote.result", outcome),
	)
	s.Metrics.Observe(opts.IsMember, opts.HasCoupon, outcome, amount)

	evt := s.Logger.Debug()
	if outcome == resultNegative {
		evt = s.Logger.Warn()
	}
	evt.Ctx(ctx).
		Str("quote_id", res.ID.String()).
		Int("items", res.ItemCount).
		Bool("member", opts.IsMember).
		Bool("coupon", opts.HasCoupon).
		Str("subtotal", summary.Subtotal.String()).
		Str("discounted", summary.Discounted.String()).
		Str("tax", summary.Tax.String()).
		Str("total", summary.Total.String()).
		Str("currency", res.Currency).
		Str("result", outcome).
		Msg("quote_calculated")

	return res, nil
}
