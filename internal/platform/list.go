package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Page is a decoded list response. TotalPages is 1 for unpaginated (bare
// array) responses.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// decodeList handles the two list envelopes the platform uses: a bare JSON
// array, or an object wrapping the collection under a named key together
// with a totalPages count, e.g. {"packages": [...], "totalPages": 4}.
func decodeList[T any](data []byte, keys ...string) (*Page[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return &Page[T]{Items: items, TotalPages: 1}, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	page := &Page[T]{TotalPages: 1}

	if raw, ok := envelope["totalPages"]; ok {
		if err := json.Unmarshal(raw, &page.TotalPages); err != nil {
			return nil, fmt.Errorf("failed to decode totalPages: %w", err)
		}
	}

	for _, key := range append(keys, "items") {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &page.Items); err != nil {
			return nil, fmt.Errorf("failed to decode %q collection: %w", key, err)
		}
		return page, nil
	}

	return nil, fmt.Errorf("list response carries none of the expected keys %v", keys)
}

// getList fetches path and decodes either list envelope
func getList[T any](ctx context.Context, c *Client, path string, keys ...string) (*Page[T], error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	data, err := checkResponse(resp)
	if err != nil {
		return nil, err
	}

	return decodeList[T](data, keys...)
}
