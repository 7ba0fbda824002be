package models

import "github.com/sensetheworld/sensetheworld/internal/community"

// CommunityJoinRequest is the request body for POST /v1/community/members.
type CommunityJoinRequest struct {
	DisplayName        string   `json:"displayName"`
	Bio                string   `json:"bio,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	AccessibilityNotes string   `json:"accessibilityNotes,omitempty"`
}

// CommunityMember is a community directory entry in API shape.
type CommunityMember struct {
	ID                 string    `json:"id"`
	DisplayName        string    `json:"displayName"`
	Bio                string    `json:"bio,omitempty"`
	Interests          []string  `json:"interests"`
	AccessibilityNotes string    `json:"accessibilityNotes,omitempty"`
	CreatedAt          Timestamp `json:"createdAt"`
}

// NewCommunityMember converts a domain member to the API shape. The
// owning user ID is deliberately not exposed.
func NewCommunityMember(m *community.Member) CommunityMember {
	return CommunityMember{
		ID:                 m.ID,
		DisplayName:        m.DisplayName,
		Bio:                m.Bio,
		Interests:          m.Interests,
		AccessibilityNotes: m.AccessibilityNotes,
		CreatedAt:          Timestamp(m.CreatedAt),
	}
}

// CommunityMemberList is the response body for GET /v1/community/members.
type CommunityMemberList struct {
	Items []CommunityMember `json:"items"`
}
