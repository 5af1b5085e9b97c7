package santasdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateGroup creates a group and returns it along with one private link
// per member. The links are not retrievable later.
func (c *SDKClient) CreateGroup(ctx context.Context, req CreateGroupRequest) (*CreateGroupResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/groups", req)
	if err != nil {
		return nil, err
	}

	var created CreateGroupResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// GetGroup fetches a group by id.
func (c *SDKClient) GetGroup(ctx context.Context, groupID string) (*GroupResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/groups/"+url.PathEscape(groupID), nil, nil)
	if err != nil {
		return nil, err
	}

	var group GroupResponse
	if err := decodeJSON(resp, &group, http.StatusOK); err != nil {
		return nil, err
	}

	return &group, nil
}

// Assign returns the recipient of member, computing the group's assignment
// if no one has asked before.
func (c *SDKClient) Assign(ctx context.Context, groupID, member string) (*AssignResponse, error) {
	path := "/v1/groups/" + url.PathEscape(groupID) + "/assign"
	resp, err := c.doJSON(ctx, http.MethodPost, path, AssignRequest{Member: member})
	if err != nil {
		return nil, err
	}

	var assigned AssignResponse
	if err := decodeJSON(resp, &assigned, http.StatusOK); err != nil {
		return nil, err
	}

	return &assigned, nil
}
