package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"painel_master/internal/config"
	"painel_master/internal/infrastructure/rowstore"

	"github.com/hashicorp/go-cleanhttp"
)

var ErrMissingSupabaseSettings = errors.New("SUPABASE_URL and SUPABASE_KEY are required for the postgrest store")

// NewHTTPClient returns a pooled client with its own transport, so outbound
// calls never share http.DefaultTransport state.
func NewHTTPClient(timeout time.Duration) *http.Client {
	c := cleanhttp.DefaultPooledClient()
	c.Timeout = timeout
	return c
}

// OpenRowStore selects the row store driver from configuration.
func OpenRowStore(ctx context.Context, cfg *config.Config) (rowstore.RowStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgREST, "":
		if cfg.Store.SupabaseURL == "" || cfg.Store.SupabaseKey == "" {
			return nil, ErrMissingSupabaseSettings
		}
		log.Printf("[database] using postgrest store url=%s", cfg.Store.SupabaseURL)
		return rowstore.NewPostgRESTStore(cfg.Store.SupabaseURL, cfg.Store.SupabaseKey, NewHTTPClient(cfg.HTTP.ClientTimeout)), nil
	case config.StoreDriverDynamoDB:
		client, err := NewDynamoDBClient(ctx, cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("create dynamodb client: %w", err)
		}
		log.Printf("[database] using dynamodb store region=%s endpoint=%q", cfg.Store.AWSRegion, cfg.Store.DynamoDBEndpoint)
		return rowstore.NewDynamoStore(client), nil
	case config.StoreDriverMemory:
		log.Printf("[database] using in-memory store; data is lost on restart")
		return rowstore.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
}
