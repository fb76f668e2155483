package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/tidwall/gjson"
)

// listGet fetches a list endpoint. Some list endpoints wrap their payload
// in a paginated envelope; key names the array field there, and an empty
// key means the endpoint returns a bare JSON array. A 404 is a valid
// empty state for every list endpoint, never an error.
func listGet[T any](ctx context.Context, c *Client, path string, query url.Values, key string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, query, &raw); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	payload := bytes.TrimSpace(raw)
	if key != "" {
		field := gjson.GetBytes(payload, key)
		if !field.Exists() {
			return nil, nil
		}
		payload = []byte(field.Raw)
	}

	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s list", path)
	}

	return items, nil
}
