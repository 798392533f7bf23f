package telegram

import (
	tele "gopkg.in/telebot.v4"

	"sticker-gate/domain"
)

// ToMessage converts an inbound platform message into the neutral domain
// shape the engines work with.
func ToMessage(m *tele.Message) domain.Message {
	msg := domain.Message{
		ID:      m.ID,
		Text:    m.Text,
		Sticker: m.Sticker != nil,
		Sent:    m.Time(),
	}
	if m.Chat != nil {
		msg.ChatID = m.Chat.ID
		msg.Private = m.Chat.Type == tele.ChatPrivate
	}
	if m.Sender != nil {
		msg.Sender = toUser(m.Sender)
	}
	for _, u := range m.UsersJoined {
		msg.Joined = append(msg.Joined, toUser(&u))
	}
	if len(msg.Joined) == 0 && m.UserJoined != nil {
		msg.Joined = append(msg.Joined, toUser(m.UserJoined))
	}
	if m.ReplyTo != nil {
		reply := ToMessage(m.ReplyTo)
		msg.ReplyTo = &reply
	}
	return msg
}

func toUser(u *tele.User) domain.User {
	return domain.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
	}
}
