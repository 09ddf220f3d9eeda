package domain

// MembershipTier is a descriptive label attached to a member.
type MembershipTier string

const (
	MembershipSilver   MembershipTier = "Silver"
	MembershipGold     MembershipTier = "Gold"
	MembershipPlatinum MembershipTier = "Platinum"
)

// Member is a gym member. The ID is carried as the map key in responses.
type Member struct {
	ID         int            `json:"-"`
	Name       string         `json:"name"`
	Age        int            `json:"age"`
	Membership MembershipTier `json:"membership"`
}
