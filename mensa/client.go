// Package mensa talks to the upstream meal-data API. Both calls are plain
// idempotent reads; a failed call fails the whole request chain, there is no
// caching and no retry.
package mensa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Translation is a bilingual label as delivered by the upstream API.
type Translation struct {
	De string `json:"de"`
	En string `json:"en"`
}

// In returns the label for the requested language, falling back to the
// other language when the requested slot is empty.
func (t Translation) In(language string) string {
	if language == "de" {
		if t.De != "" {
			return t.De
		}
		return t.En
	}
	if t.En != "" {
		return t.En
	}
	return t.De
}

// Mensa is one cafeteria location.
type Mensa struct {
	ID   string      `json:"id"`
	Name Translation `json:"name"`
}

type Ingredient struct {
	Key  string      `json:"key"`
	Name Translation `json:"name"`
}

type Price struct {
	Student  float64 `json:"student"`
	Employee float64 `json:"employee"`
	Guest    float64 `json:"guest"`
}

type Meal struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Date        time.Time    `json:"date"`
	Ingredients []Ingredient `json:"ingredients"`
	Price       Price        `json:"price"`
}

type mensasResponse struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Data    []Mensa `json:"data"`
}

type mealsResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    []Meal `json:"data"`
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

// Mensas fetches the full list of cafeteria locations.
func (c *Client) Mensas(ctx context.Context) ([]Mensa, error) {
	body, err := c.get(ctx, c.baseURL+"/mensa")
	if err != nil {
		return nil, err
	}

	var resp mensasResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("mensa: failed to parse mensa list: %w", err)
	}
	return resp.Data, nil
}

// Meals fetches the meals for one location and weekday code (su..sa).
func (c *Client) Meals(ctx context.Context, locationID, day string) ([]Meal, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/mensa/%s/%s", c.baseURL, locationID, day))
	if err != nil {
		return nil, err
	}

	var resp mealsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("mensa: failed to parse meals for %s/%s: %w", locationID, day, err)
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("mensa: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mensa: request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mensa: failed to read response from %s: %w", url, err)
	}
	return body, nil
}
