package chirp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	searchPath = "/1.1/search/tweets.json"

	// ResultTypeRecent orders search results by date.
	ResultTypeRecent = "recent"
)

type SearchOptions struct {
	// Count is the page size.
	Count int

	// ResultType selects the result ordering, e.g. ResultTypeRecent.
	ResultType string

	// SinceID, when non-zero, restricts results to statuses with a
	// greater id.
	SinceID int64
}

// https://developer.twitter.com/en/docs/twitter-api/v1/tweets/search/api-reference/get-search-tweets
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]*Status, error) {
	type envelope struct {
		Statuses []json.RawMessage `json:"statuses"`
	}

	req := c.client.R().WithContext(ctx).
		SetQueryParam("q", query).
		SetResult(&envelope{})

	if opts.Count > 0 {
		req.SetQueryParam("count", strconv.Itoa(opts.Count))
	}
	if opts.ResultType != "" {
		req.SetQueryParam("result_type", opts.ResultType)
	}
	if opts.SinceID > 0 {
		req.SetQueryParam("since_id", strconv.FormatInt(opts.SinceID, 10))
	}

	res, err := req.Get(searchPath)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.Status())
	}

	raws := res.Result().(*envelope).Statuses

	statuses := make([]*Status, 0, len(raws))
	for _, raw := range raws {
		status := &Status{}
		if err := json.Unmarshal(raw, status); err != nil {
			return nil, fmt.Errorf("malformed status: %w", err)
		}
		status.Raw = raw
		statuses = append(statuses, status)
	}

	return statuses, nil
}
