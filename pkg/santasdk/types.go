package santasdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "group_not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details maps request fields to validation failures, when there are any
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Group Types
// ============================================================================

// CreateGroupRequest is the body of POST /v1/groups.
type CreateGroupRequest struct {
	// Name is the display name of the group
	Name string `json:"name" example:"Office"`

	// Budget is a free-form spending guide (e.g., "$20")
	Budget string `json:"budget,omitempty" example:"$20"`

	// Criteria is free-form guidance for gift givers
	Criteria string `json:"criteria,omitempty" example:"something handmade"`

	// Members are the participant names, in order; 2 to 50, unique
	Members []string `json:"members" example:"Al,Bo,Cy"`
}

// GuestLinkResponse is one member's private link. It is only ever returned
// at creation time.
type GuestLinkResponse struct {
	Member string `json:"member"`
	Token  string `json:"token"`
	URL    string `json:"url"`
}

// GroupResponse describes a group.
type GroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Budget    string    `json:"budget,omitempty"`
	Criteria  string    `json:"criteria,omitempty"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGroupResponse is returned from POST /v1/groups.
type CreateGroupResponse struct {
	Group GroupResponse       `json:"group"`
	Links []GuestLinkResponse `json:"links"`
}

// ============================================================================
// Assignment Types
// ============================================================================

// AssignRequest is the body of POST /v1/groups/{id}/assign.
type AssignRequest struct {
	// Member is the giver whose recipient is requested
	Member string `json:"member" example:"Al"`
}

// AssignResponse names the member's recipient.
type AssignResponse struct {
	GroupID   string `json:"group_id"`
	Member    string `json:"member"`
	Recipient string `json:"recipient"`
}

// ============================================================================
// Guest Types
// ============================================================================

// GuestResponse is the restricted view behind a guest link: it never
// contains the member list or anyone else's recipient.
type GuestResponse struct {
	GroupName string `json:"group_name"`
	Budget    string `json:"budget,omitempty"`
	Criteria  string `json:"criteria,omitempty"`
	Member    string `json:"member"`
	Recipient string `json:"recipient"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Storage indicates whether the data directory is writable
	Storage string `json:"storage"`
}
