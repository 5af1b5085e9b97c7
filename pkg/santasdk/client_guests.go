package santasdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetGuest opens a guest link by its token.
func (c *SDKClient) GetGuest(ctx context.Context, token string) (*GuestResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/guests/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var guest GuestResponse
	if err := decodeJSON(resp, &guest, http.StatusOK); err != nil {
		return nil, err
	}

	return &guest, nil
}
