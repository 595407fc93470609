package zohorecruit

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// pageFailure describes why a pagination loop stopped before the vendor said so
type pageFailure struct {
	page int
	err  error
}

// fetchPages walks a paginated listing. It stops when the vendor reports no more
// records, returns an empty page or answers 204. A failing page ends the walk and
// is reported alongside everything collected before it.
func (c *Client) fetchPages(ctx context.Context, op, path string, query url.Values) ([]Record, *pageFailure) {
	var out []Record

	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(c.pageSize))

		resp, err := c.call(ctx, op, http.MethodGet, path, q, nil, callTimeout)
		if err != nil {
			return out, &pageFailure{page: page, err: err}
		}

		if resp.status == http.StatusNoContent {
			return out, nil
		}
		if !resp.ok() {
			return out, &pageFailure{page: page, err: vendorError(op, resp.status, "", resp.snippet())}
		}

		var payload listResponse
		if err := resp.decode(&payload); err != nil {
			ve := vendorError(op, resp.status, "", "malformed list response")
			ve.Err = err
			return out, &pageFailure{page: page, err: ve}
		}

		if len(payload.Data) == 0 {
			return out, nil
		}
		out = append(out, payload.Data...)

		if !payload.Info.MoreRecords {
			return out, nil
		}
	}

	c.logger.Warn("pagination stopped at page cap", "op", op, "max_pages", maxPages)
	return out, nil
}
