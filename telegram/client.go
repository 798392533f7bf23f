// Package telegram adapts the Bot API to the contract.IMessenger surface.
// Every operation logs its round-trip time; failures degrade to neutral
// return values so callers proceed as if the effect did not occur.
package telegram

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"sticker-gate/domain"
)

const (
	pollTimeout  = 50 * time.Second
	updateBuffer = 100
)

type Client struct {
	bot *tele.Bot
	log *slog.Logger
}

// New authenticates against the Bot API. Failing to authenticate is fatal
// for the process, so the error propagates.
func New(token string, log *slog.Logger) (*Client, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout:        pollTimeout,
			AllowedUpdates: []string{"message"},
		},
	})
	if err != nil {
		return nil, err
	}
	log.Info("Telegram authentication ok", "username", bot.Me.Username)
	return &Client{bot: bot, log: log}, nil
}

func (c *Client) Me() domain.User {
	return toUser(c.bot.Me)
}

// Updates long-polls the platform and delivers inbound messages until the
// context ends. Non-message updates are filtered out.
func (c *Client) Updates(ctx context.Context) <-chan domain.Message {
	raw := make(chan tele.Update, updateBuffer)
	out := make(chan domain.Message, updateBuffer)
	stop := make(chan struct{})

	go c.bot.Poller.Poll(c.bot, raw, stop)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				close(stop)
				return
			case upd := <-raw:
				if upd.Message == nil {
					continue
				}
				select {
				case <-ctx.Done():
					close(stop)
					return
				case out <- ToMessage(upd.Message):
				}
			}
		}
	}()
	return out
}

func (c *Client) Send(ctx context.Context, chat int64, html string, replyTo int) int {
	started := time.Now()
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
	if replyTo != 0 {
		opts.ReplyTo = &tele.Message{ID: replyTo, Chat: &tele.Chat{ID: chat}}
	}
	m, err := c.bot.Send(&tele.Chat{ID: chat}, html, opts)
	if err != nil {
		c.log.Warn("Send failed", "chat", chat, "reply", replyTo, "took", since(started), "err", err)
		return 0
	}
	c.log.Debug("Send ok", "chat", chat, "msg", m.ID, "took", since(started))
	return m.ID
}

func (c *Client) SendSticker(ctx context.Context, chat int64, fileID string) (domain.Message, bool) {
	started := time.Now()
	m, err := c.bot.Send(&tele.Chat{ID: chat}, &tele.Sticker{File: tele.File{FileID: fileID}})
	if err != nil {
		c.log.Warn("SendSticker failed", "chat", chat, "took", since(started), "err", err)
		return domain.Message{}, false
	}
	c.log.Debug("SendSticker ok", "chat", chat, "msg", m.ID, "took", since(started))
	return ToMessage(m), true
}

func (c *Client) Delete(ctx context.Context, chat int64, msg int) bool {
	started := time.Now()
	err := c.bot.Delete(&tele.Message{ID: msg, Chat: &tele.Chat{ID: chat}})
	if err != nil {
		c.log.Warn("Delete failed", "chat", chat, "msg", msg, "took", since(started), "err", err)
		return false
	}
	c.log.Debug("Delete ok", "chat", chat, "msg", msg, "took", since(started))
	return true
}

func (c *Client) Restrict(ctx context.Context, chat int64, user int64) bool {
	started := time.Now()
	err := c.bot.Restrict(&tele.Chat{ID: chat}, &tele.ChatMember{
		User:   &tele.User{ID: user},
		Rights: tele.NoRights(),
	})
	if err != nil {
		c.log.Warn("Restrict failed", "chat", chat, "user", user, "took", since(started), "err", err)
		return false
	}
	c.log.Debug("Restrict ok", "chat", chat, "user", user, "took", since(started))
	return true
}

func (c *Client) Ban(ctx context.Context, chat int64, user int64) bool {
	started := time.Now()
	err := c.bot.Ban(&tele.Chat{ID: chat}, &tele.ChatMember{User: &tele.User{ID: user}})
	if err != nil {
		c.log.Warn("Ban failed", "chat", chat, "user", user, "took", since(started), "err", err)
		return false
	}
	c.log.Debug("Ban ok", "chat", chat, "user", user, "took", since(started))
	return true
}

func (c *Client) Unban(ctx context.Context, chat int64, user int64) bool {
	started := time.Now()
	err := c.bot.Unban(&tele.Chat{ID: chat}, &tele.User{ID: user})
	if err != nil {
		c.log.Warn("Unban failed", "chat", chat, "user", user, "took", since(started), "err", err)
		return false
	}
	c.log.Debug("Unban ok", "chat", chat, "user", user, "took", since(started))
	return true
}

// Member looks up a membership record. A 4xx answer means the platform has
// never seen the user in this chat: that is an absence, not an outage, and
// maps to (nil, nil). Other errors are transient and left to the caller.
func (c *Client) Member(ctx context.Context, chat int64, user int64) (*domain.Member, error) {
	started := time.Now()
	cm, err := c.bot.ChatMemberOf(&tele.Chat{ID: chat}, &tele.User{ID: user})
	if err != nil {
		var apiErr *tele.Error
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
			c.log.Debug("Member absent", "chat", chat, "user", user, "took", since(started))
			return nil, nil
		}
		c.log.Warn("Member lookup failed", "chat", chat, "user", user, "took", since(started), "err", err)
		return nil, err
	}
	c.log.Debug("Member ok", "chat", chat, "user", user, "took", since(started))
	return &domain.Member{
		Status:      domain.MemberStatus(cm.Role),
		CanRestrict: cm.Rights.CanRestrictMembers,
	}, nil
}

func (c *Client) Leave(ctx context.Context, chat int64) bool {
	started := time.Now()
	err := c.bot.Leave(&tele.Chat{ID: chat})
	if err != nil {
		c.log.Warn("Leave failed", "chat", chat, "took", since(started), "err", err)
		return false
	}
	c.log.Info("Left chat", "chat", chat, "took", since(started))
	return true
}

func since(t time.Time) time.Duration {
	return time.Since(t).Round(time.Millisecond)
}
