// internal/quote/client_test.go
package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterlaczo/cs50-finance/internal/util"
)

func TestLookup(t *testing.T) {
	t.Run("KnownSymbol", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/stock/AAPL/quote", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc","latestPrice":189.84}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		q, err := client.Lookup(context.Background(), "aapl")

		require.NoError(t, err)
		assert.Equal(t, "AAPL", q.Symbol)
		assert.Equal(t, "Apple Inc", q.Name)
		assert.True(t, q.Price.Equal(decimal.RequireFromString("189.84")))
	})

	t.Run("UnknownSymbol", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Unknown symbol", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		q, err := client.Lookup(context.Background(), "NOPE")

		assert.ErrorIs(t, err, util.ErrUnknownSymbol)
		assert.Nil(t, q)
	})

	t.Run("TimeoutDegradesToUnknownSymbol", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		q, err := client.Lookup(ctx, "SLOW")

		assert.ErrorIs(t, err, util.ErrUnknownSymbol)
		assert.Nil(t, q)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"symbol":"ZERO","companyName":"Zero Corp","latestPrice":0}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		q, err := client.Lookup(context.Background(), "ZERO")

		assert.ErrorIs(t, err, util.ErrUnknownSymbol)
		assert.Nil(t, q)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		q, err := client.Lookup(context.Background(), "AAPL")

		assert.ErrorIs(t, err, util.ErrUnknownSymbol)
		assert.Nil(t, q)
	})

	t.Run("EmptySymbol", func(t *testing.T) {
		client := NewClient("http://localhost:0", "test-token")
		q, err := client.Lookup(context.Background(), "   ")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, q)
	})
}
