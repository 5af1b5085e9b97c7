package http

import (
	"net/http"

	"github.com/aussiebroadwan/santa/internal/santa/service"
	"github.com/aussiebroadwan/santa/pkg/httpx"
	"github.com/aussiebroadwan/santa/pkg/santasdk"
)

type GuestsHandler struct {
	GroupService *service.GroupService
}

// ServeHTTP godoc
//
//	@Summary		Open Guest Link
//	@Description	Resolve a member's private link to what that member may see: the group details, their own name, and their recipient.
//	@Description	Unknown and malformed tokens are indistinguishable.
//	@Tags			Guests
//	@Produce		json
//	@Param			token	path		string					true	"Guest token from the member's link"
//	@Success		200		{object}	santasdk.GuestResponse	"group_name, budget, criteria, member, recipient"
//	@Failure		404		{object}	santasdk.ErrorResponse	"Link not found"
//	@Failure		429		{object}	santasdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	santasdk.ErrorResponse	"error, error_description"
//	@Router			/v1/guests/{token} [get].
func (h *GuestsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, err := h.GroupService.GuestView(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, santasdk.GuestResponse{
		GroupName: view.GroupName,
		Budget:    view.Budget,
		Criteria:  view.Criteria,
		Member:    view.Member,
		Recipient: view.Recipient,
	})
}
