package spoonacular

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client wraps the Spoonacular HTTP API. All failures are terminal:
// no retries are performed at this layer.
type Client struct {
	http       *resty.Client
	apiKey     string
	maxResults int
	logger     zerolog.Logger
}

// NewClient builds a gateway against the given base URL. maxResults
// caps the find-by-ingredients result count.
func NewClient(baseURL, apiKey string, maxResults int, timeout time.Duration, logger zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{
		http:       http,
		apiKey:     apiKey,
		maxResults: maxResults,
		logger:     logger.With().Str("component", "spoonacular").Logger(),
	}
}

// SearchByIngredients queries find-by-ingredients with the comma-joined
// names, preserving order and duplicates. An empty name list returns an
// empty result without touching the network.
func (c *Client) SearchByIngredients(ctx context.Context, names []string) ([]SearchResult, error) {
	if len(names) == 0 {
		return []SearchResult{}, nil
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingredients": strings.Join(names, ","),
			"number":      strconv.Itoa(c.maxResults),
			"apiKey":      c.apiKey,
		}).
		Get("/recipes/findByIngredients")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	c.logger.Debug().Int("status", resp.StatusCode()).Int("ingredients", len(names)).Msg("search by ingredients")
	return decodeSlice[SearchResult](resp.Body())
}

// FetchDetailsBulk requests full records for the given ids in one
// batched call. An empty id list returns an empty result without
// touching the network.
func (c *Client) FetchDetailsBulk(ctx context.Context, ids []int) ([]APIRecipe, error) {
	if len(ids) == 0 {
		return []APIRecipe{}, nil
	}
	joined := make([]string, len(ids))
	for i, id := range ids {
		joined[i] = strconv.Itoa(id)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":              strings.Join(joined, ","),
			"includeNutrition": "true",
			"apiKey":           c.apiKey,
		}).
		Get("/recipes/informationBulk")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	c.logger.Debug().Int("status", resp.StatusCode()).Int("ids", len(ids)).Msg("bulk details")
	return decodeSlice[APIRecipe](resp.Body())
}

// FetchDetail requests the full record for a single recipe. Used by
// the detail view, not by the recommendation pipeline.
func (c *Client) FetchDetail(ctx context.Context, id int) (APIRecipe, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"includeNutrition": "true",
			"apiKey":           c.apiKey,
		}).
		Get("/recipes/" + strconv.Itoa(id) + "/information")
	if err != nil {
		return APIRecipe{}, &TransportError{Err: err}
	}
	c.logger.Debug().Int("status", resp.StatusCode()).Int("id", id).Msg("detail")

	if envErr := probeErrorEnvelope(resp.Body()); envErr != nil {
		return APIRecipe{}, envErr
	}
	var recipe APIRecipe
	if err := json.Unmarshal(resp.Body(), &recipe); err != nil {
		return APIRecipe{}, &DecodeError{Err: err}
	}
	return recipe, nil
}

// probeErrorEnvelope checks a body against the upstream error shape
// before any generic decoding is attempted.
func probeErrorEnvelope(body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &QuotaError{Status: env.Status, Code: env.Code, Message: env.Message}
	}
	return nil
}

func decodeSlice[T any](body []byte) ([]T, error) {
	if envErr := probeErrorEnvelope(body); envErr != nil {
		return nil, envErr
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return out, nil
}
