package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single document fetch.
const DefaultTimeout = 15 * time.Second

// GetJSON fetches url and unmarshals the response body into v, retrying
// transient failures. Timeouts and 5xx responses are retryable; 4xx
// responses and malformed bodies are not.
func GetJSON(ctx context.Context, client *http.Client, url string, v any) error {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	return RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return Retryable(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return Retryable(fmt.Errorf("GET %s: %s", url, resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s: %s", url, resp.Status)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return Retryable(err)
		}

		return json.Unmarshal(body, v)
	})
}
