// Package qwant wraps the Qwant image-search API. The bot only ever needs
// the first media URL for a meal name.
package qwant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type searchResponse struct {
	Status string `json:"status"`
	Data   struct {
		Result struct {
			Items []struct {
				Media string `json:"media"`
			} `json:"items"`
		} `json:"result"`
	} `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SearchImages returns up to count media URLs for the query. An empty result
// is not an error; callers decide on a fallback.
func (c *Client) SearchImages(ctx context.Context, query string, count int) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("offset", "0")
	params.Set("locale", "de_DE")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/images?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("qwant: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qwant: search for %q failed: %w", query, err)
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("qwant: failed to parse search response for %q: %w", query, err)
	}

	images := make([]string, 0, len(result.Data.Result.Items))
	for _, item := range result.Data.Result.Items {
		images = append(images, item.Media)
	}
	return images, nil
}
