package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sensetheworld/sensetheworld/internal/api/models"
	"github.com/sensetheworld/sensetheworld/internal/api/response"
	"github.com/sensetheworld/sensetheworld/internal/community"
)

// CommunityHandler handles community directory endpoints.
type CommunityHandler struct {
	communityService *community.Service
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communityService *community.Service) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// ListMembers handles GET /v1/community/members.
func (h *CommunityHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.communityService.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	list := models.CommunityMemberList{Items: make([]models.CommunityMember, 0, len(members))}
	for _, m := range members {
		list.Items = append(list.Items, models.NewCommunityMember(m))
	}
	response.JSON(w, r, http.StatusOK, list)
}

// JoinCommunity handles POST /v1/community/members.
func (h *CommunityHandler) JoinCommunity(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	var req models.CommunityJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	member, err := h.communityService.Join(r.Context(), community.JoinInput{
		UserID:             userID,
		DisplayName:        req.DisplayName,
		Bio:                req.Bio,
		Interests:          req.Interests,
		AccessibilityNotes: req.AccessibilityNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, community.ErrMemberExists):
			response.Conflict(w, r, "user already has a community membership")
		case errors.Is(err, community.ErrDisplayNameRequired),
			errors.Is(err, community.ErrDisplayNameTooLong),
			errors.Is(err, community.ErrBioTooLong),
			errors.Is(err, community.ErrTooManyInterests):
			response.BadRequest(w, r, err.Error(), nil)
		default:
			response.InternalError(w, r, "internal server error")
		}
		return
	}

	response.Created(w, r, "/v1/community/members/"+member.ID, models.NewCommunityMember(member))
}

// LeaveCommunity handles DELETE /v1/community/members/me.
func (h *CommunityHandler) LeaveCommunity(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	if err := h.communityService.Leave(r.Context(), userID); err != nil {
		if errors.Is(err, community.ErrMemberNotFound) {
			response.NotFound(w, r, "membership")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.NoContent(w, r)
}
