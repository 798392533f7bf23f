package domain

import "time"

// User identifies a chat participant on the messaging platform.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// FullName joins first and last name the way the platform displays them.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// MemberStatus is the raw membership state reported by the platform.
type MemberStatus string

const (
	MemberCreator       MemberStatus = "creator"
	MemberAdministrator MemberStatus = "administrator"
	MemberMember        MemberStatus = "member"
	MemberRestricted    MemberStatus = "restricted"
	MemberLeft          MemberStatus = "left"
	MemberKicked        MemberStatus = "kicked"
)

// Member carries the subset of a membership record that role
// classification needs.
type Member struct {
	Status      MemberStatus
	CanRestrict bool
}

// Message is a platform-neutral inbound update.
type Message struct {
	ID      int
	ChatID  int64
	Private bool
	Sender  User
	Text    string
	Sticker bool
	Joined  []User
	ReplyTo *Message
	Sent    time.Time
}

// IsJoinNotice reports whether the message announces new members.
func (m Message) IsJoinNotice() bool {
	return len(m.Joined) > 0
}
