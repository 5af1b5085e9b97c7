package domain

import "time"

// Guest binds a guest access token to one member of one group. The token
// itself is never stored; the store keys guests by the token fingerprint.
type Guest struct {
	GroupID   string    `json:"group_id"`
	Member    string    `json:"member"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestLink is handed back once, at group creation, for each member.
type GuestLink struct {
	Member string
	Token  string
	URL    string
}

// GuestView is everything a guest may see: never the member list and
// never anyone else's recipient.
type GuestView struct {
	GroupName string
	Budget    string
	Criteria  string
	Member    string
	Recipient string
}
