package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
	"github.com/aussiebroadwan/santa/internal/santa/service"
	"github.com/aussiebroadwan/santa/pkg/httpx"
	"github.com/aussiebroadwan/santa/pkg/santasdk"
	"github.com/aussiebroadwan/santa/pkg/slogx"
)

type GroupsHandler struct {
	GroupService *service.GroupService
}

// HandleCreate godoc
//
//	@Summary		Create Group
//	@Description	Create a gift exchange group. The response carries one private link per member; links cannot be retrieved again.
//	@Description	Names are normalized (Unicode NFC, control characters removed, whitespace collapsed) and member names must be unique ignoring case.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		santasdk.CreateGroupRequest		true	"Group name, budget, criteria, and members"
//	@Success		201		{object}	santasdk.CreateGroupResponse	"group, links"
//	@Failure		400		{object}	santasdk.ErrorResponse			"Malformed body or validation failed"
//	@Failure		429		{object}	santasdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	santasdk.ErrorResponse			"error, error_description"
//	@Router			/v1/groups [post].
func (h *GroupsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Parse and normalize
	var req santasdk.CreateGroupRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		santasdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req = req.Normalize()

	// 2. Validate fields
	if errs := req.Validate(); errs != nil {
		santasdk.NewValidationError(errs).WriteError(w)
		return
	}

	// 3. Create
	group, links, err := h.GroupService.CreateGroup(ctx, domain.NewGroup{
		Name:     req.Name,
		Budget:   req.Budget,
		Criteria: req.Criteria,
		Members:  req.Members,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidGroup) {
			santasdk.NewValidationError(map[string]string{"members": err.Error()}).WriteError(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	resp := santasdk.CreateGroupResponse{
		Group: groupResponse(group),
		Links: make([]santasdk.GuestLinkResponse, len(links)),
	}
	for i, l := range links {
		resp.Links[i] = santasdk.GuestLinkResponse{Member: l.Member, Token: l.Token, URL: l.URL}
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}

// HandleGet godoc
//
//	@Summary		Get Group
//	@Description	Fetch a group by id. Assignments are never included.
//	@Tags			Groups
//	@Produce		json
//	@Param			id	path		string					true	"Group ID"
//	@Success		200	{object}	santasdk.GroupResponse	"id, name, budget, criteria, members, created_at"
//	@Failure		404	{object}	santasdk.ErrorResponse	"Group not found"
//	@Failure		500	{object}	santasdk.ErrorResponse	"error, error_description"
//	@Router			/v1/groups/{id} [get].
func (h *GroupsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	group, err := h.GroupService.GetGroup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, groupResponse(group))
}

// HandleAssign godoc
//
//	@Summary		Get Recipient
//	@Description	Return the recipient of one member. The first request for a group computes its assignment; every later request returns the same answer.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Group ID"
//	@Param			request	body		santasdk.AssignRequest	true	"Member name"
//	@Success		200		{object}	santasdk.AssignResponse	"group_id, member, recipient"
//	@Failure		400		{object}	santasdk.ErrorResponse	"Malformed body or missing member"
//	@Failure		404		{object}	santasdk.ErrorResponse	"Group or member not found"
//	@Failure		500		{object}	santasdk.ErrorResponse	"error, error_description"
//	@Router			/v1/groups/{id}/assign [post].
func (h *GroupsHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	var req santasdk.AssignRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		santasdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req = req.Normalize()
	if errs := req.Validate(); errs != nil {
		santasdk.NewValidationError(errs).WriteError(w)
		return
	}

	recipient, err := h.GroupService.AssignMember(r.Context(), groupID, req.Member)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, santasdk.AssignResponse{
		GroupID:   groupID,
		Member:    req.Member,
		Recipient: recipient,
	})
}

func groupResponse(g domain.Group) santasdk.GroupResponse {
	return santasdk.GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Budget:    g.Budget,
		Criteria:  g.Criteria,
		Members:   g.Members,
		CreatedAt: g.CreatedAt,
	}
}

// writeServiceError maps service errors onto API errors. Anything
// unrecognized is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		santasdk.ErrGroupNotFound.WriteError(w)
	case errors.Is(err, service.ErrMemberNotFound):
		santasdk.ErrMemberNotFound.WriteError(w)
	case errors.Is(err, service.ErrGuestNotFound):
		santasdk.ErrGuestNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		santasdk.ErrServerError.WriteError(w)
	}
}
