package models

import "time"

// Gender classifies a baby name.
type Gender string

const (
	GenderBoy     Gender = "boy"
	GenderGirl    Gender = "girl"
	GenderNeutral Gender = "neutral"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderBoy, GenderGirl, GenderNeutral:
		return true
	}
	return false
}

// User represents a registered user in the system
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PartnerID    *string   `json:"partner_id,omitempty"`
	PartnerCode  string    `json:"partner_code"`
	PasswordHash string    `json:"-"`
	PushToken    *string   `json:"push_token,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BabyName represents one candidate name from the catalog.
// Reference data; never mutated by the service.
type BabyName struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Gender     Gender    `json:"gender"`
	Origin     string    `json:"origin"`
	Meaning    string    `json:"meaning"`
	Popularity *int      `json:"popularity,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Swipe represents a user's like/dislike decision on one name
type Swipe struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	NameID   string    `json:"name_id"`
	IsLike   bool      `json:"is_like"`
	SwipedAt time.Time `json:"swiped_at"`
}

// Match represents a name both partners liked
type Match struct {
	ID        string     `json:"id"`
	NameID    string     `json:"name_id"`
	Name      BabyName   `json:"name"`
	User1ID   string     `json:"user1_id"`
	User2ID   string     `json:"user2_id"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Involves reports whether userID is one of the two matched partners.
func (m *Match) Involves(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// PartnerInvite is a single-use, time-boxed token used to link two partners
type PartnerInvite struct {
	ID           string    `json:"id"`
	InviteCode   string    `json:"invite_code"`
	InviterID    string    `json:"inviter_id"`
	InviterEmail string    `json:"inviter_email"`
	InviterName  string    `json:"inviter_name"`
	Used         bool      `json:"used"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (i *PartnerInvite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsUsable reports whether the invite can still be accepted at the given time.
func (i *PartnerInvite) IsUsable(now time.Time) bool {
	return !i.Used && !i.IsExpired(now)
}
