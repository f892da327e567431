package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteSource reads the word table from a PostgREST endpoint
// (GET {base}/rest/v1/{table}?select=*), as exposed by Supabase.
type RemoteSource struct {
	BaseURL string
	APIKey  string
	Table   string
	Client  *http.Client
}

// NewRemoteSource creates a remote source. An empty table defaults to "words".
func NewRemoteSource(baseURL, apiKey, table string, timeout time.Duration) *RemoteSource {
	if table == "" {
		table = "words"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RemoteSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Table:   table,
		Client:  &http.Client{Timeout: timeout},
	}
}

// Name implements Source.
func (r *RemoteSource) Name() string {
	return "remote"
}

// Load fetches every row of the table.
func (r *RemoteSource) Load(ctx context.Context) ([]Word, error) {
	if r.BaseURL == "" {
		return nil, errors.New("remote url not configured")
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*", r.BaseURL, url.PathEscape(r.Table))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.APIKey != "" {
		req.Header.Set("apikey", r.APIKey)
		req.Header.Set("Authorization", "Bearer "+r.APIKey)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best-effort close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	var list []Word
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return list, nil
}
