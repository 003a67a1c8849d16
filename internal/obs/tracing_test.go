package obs_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/noah-isme/cart-total/internal/obs"
)

func TestInitTracerExportsOnShutdown(t *testing.T) {
	var (
		exports atomic.Int32
		path    atomic.Value
	)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		path.Store(r.URL.Path)
		exports.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
		ServiceName: "cart-total-test",
		Endpoint:    collector.URL + "/v1/traces",
		Environment: "testing",
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := obs.Tracer().Start(context.Background(), "quote.calculate")
	require.True(t, span.SpanContext().IsValid())
	require.True(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	require.GreaterOrEqual(t, exports.Load(), int32(1))
	require.Equal(t, "/v1/traces", path.Load())
}

func TestTracerWithoutInitIsNoop(t *testing.T) {
	otel.SetTracerProvider(noop.NewTracerProvider())

	_, span := obs.Tracer().Start(context.Background(), "quote.calculate")
	defer span.End()
	require.False(t, span.SpanContext().IsValid())
}
