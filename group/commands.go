package group

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"sticker-gate/domain"
)

// helpKeys lists every command line of the help text, in display order.
var helpKeys = []string{
	"help.help",
	"ping.help",
	"id.help",
	"status.help",
	"enable.help",
	"disable.help",
	"lang.help",
	"action.help",
	"timeout.help",
	"onjoin.help",
	"onpass.help",
	"onfail.help",
	"verbose.help",
	"quiet.help",
	"debug.help",
	"refresh.help",
	"reverify.help",
	"pass.help",
	"fail.help",
}

// parseCommand splits "/cmd@Bot arg" into its parts. Commands addressed to
// another bot are not ours to handle.
func parseCommand(text string, botName string) (cmd string, arg string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest, _ := strings.Cut(text[1:], " ")
	if head == "" {
		return "", "", false
	}
	cmd, target, addressed := strings.Cut(head, "@")
	if addressed && !strings.EqualFold(target, botName) {
		return "", "", false
	}
	return strings.ToLower(cmd), strings.TrimSpace(rest), true
}

// handleCommand dispatches one slash command, reporting whether the message
// was a command for this bot at all.
func (e *Engine) handleCommand(ctx context.Context, m domain.Message) bool {
	cmd, arg, ok := parseCommand(m.Text, e.bot.Me().Username)
	if !ok {
		return false
	}
	e.debugf(ctx, "Command", "cmd", cmd, "arg", arg, "from", m.Sender.ID)

	switch cmd {
	case "start", "help":
		e.help(ctx, m)
	case "ping":
		latency := time.Since(m.Sent).Round(time.Millisecond)
		e.reply(ctx, m, e.format(ctx, "ping.pong", latency.String()))
	case "id":
		e.reply(ctx, m, fmt.Sprintf("<code>%d</code>", e.id))
	case "refresh":
		e.refresh(ctx, m)
	case "status":
		if !e.checkFromAdmin(ctx, m, false) {
			return true
		}
		key := lo.Ternary(e.enabled(ctx), "status.enable", "status.disable")
		e.reply(ctx, m, e.format(ctx, key))
	case "enable":
		e.enable(ctx, m)
	case "disable":
		if !e.checkFromAdmin(ctx, m, false) {
			return true
		}
		e.del(ctx, e.key("enabled"))
		e.reply(ctx, m, e.format(ctx, "status.disable"))
	case "lang":
		e.setLang(ctx, m, arg)
	case "action":
		e.setAction(ctx, m, arg)
	case "timeout":
		e.setTimeout(ctx, m, arg)
	case "onjoin", "onpass", "onfail":
		e.setTemplate(ctx, m, cmd, arg)
	case "verbose":
		e.toggleFlag(ctx, m, "verbose", arg, "quiet")
	case "quiet":
		e.toggleFlag(ctx, m, "quiet", arg, "verbose")
	case "debug":
		e.toggleFlag(ctx, m, "debug", arg, "")
	case "reverify":
		e.manualSession(ctx, m, func(u domain.User) {
			go e.runSession(ctx, *m.ReplyTo, u)
		})
	case "pass":
		e.manualSession(ctx, m, func(u domain.User) {
			e.onPass(ctx, *m.ReplyTo, u)
		})
	case "fail":
		e.manualSession(ctx, m, func(u domain.User) {
			e.onFail(ctx, u)
		})
	default:
		return false
	}
	return true
}

func (e *Engine) help(ctx context.Context, m domain.Message) {
	lines := append([]string{e.format(ctx, "help.title"), ""},
		lo.Map(helpKeys, func(key string, _ int) string {
			return e.format(ctx, key)
		})...)
	lines = append(lines, "", e.format(ctx, "template.help"))
	e.reply(ctx, m, strings.Join(lines, "\n"))
}

// refresh drops the cached role of the sender, or of the replied user, then
// removes the command so the chat stays clean. Open to everyone: it only
// forces the next lookup to hit the platform.
func (e *Engine) refresh(ctx context.Context, m domain.Message) {
	target := m.Sender
	if m.ReplyTo != nil {
		target = m.ReplyTo.Sender
	}
	e.del(ctx, e.userKey(target.ID, "role"))
	e.bot.Delete(ctx, e.id, m.ID)
}

// enable turns verification on, but only after re-checking our own rights
// against the platform. A cached admin role is not good enough here: the
// whole feature hinges on being able to delete and ban.
func (e *Engine) enable(ctx context.Context, m domain.Message) {
	if !e.checkFromAdmin(ctx, m, false) {
		return
	}
	if e.role(ctx, e.bot.Me().ID, true) != domain.RoleAdmin {
		e.reply(ctx, m, e.format(ctx, "bot.not_admin"))
		return
	}
	e.set(ctx, e.key("enabled"), "true", 0)
	e.reply(ctx, m, e.format(ctx, "status.enable"))
}

func (e *Engine) setLang(ctx context.Context, m domain.Message, arg string) {
	if !e.checkFromAdmin(ctx, m, true) {
		return
	}
	if arg == "" {
		e.reply(ctx, m, e.format(ctx, "lang.query", e.lang(ctx), e.tr.AllLangs()))
		return
	}
	e.set(ctx, e.key("lang"), arg, 0)
	e.reply(ctx, m, e.format(ctx, "lang.query", arg, e.tr.AllLangs()))
}

func (e *Engine) setAction(ctx context.Context, m domain.Message, arg string) {
	if !e.checkFromAdmin(ctx, m, false) {
		return
	}
	if arg == "" {
		current := e.failAction(ctx)
		e.reply(ctx, m, e.format(ctx, "action.query", e.format(ctx, "action."+string(current))))
		return
	}
	action, known := domain.ParseAction(arg)
	if !known {
		e.reply(ctx, m, e.format(ctx, "cmd.bad_param"))
		return
	}
	e.set(ctx, e.key("action"), string(action), 0)
	e.reply(ctx, m, e.format(ctx, "action.query", e.format(ctx, "action."+string(action))))
}

func (e *Engine) setTimeout(ctx context.Context, m domain.Message, arg string) {
	if !e.checkFromAdmin(ctx, m, false) {
		return
	}
	if arg == "" {
		e.reply(ctx, m, e.format(ctx, "timeout.query", int(e.timeout(ctx).Seconds())))
		return
	}
	seconds, err := strconv.Atoi(arg)
	if err != nil || seconds <= 0 || seconds > math.MaxInt32 {
		e.reply(ctx, m, e.format(ctx, "cmd.bad_param"))
		return
	}
	e.set(ctx, e.key("timeout"), strconv.Itoa(seconds), 0)
	reply := e.format(ctx, "timeout.query", seconds)
	if seconds < 10 {
		reply += "\n\n" + e.format(ctx, "timeout.notice")
	}
	e.reply(ctx, m, reply)
}

func (e *Engine) setTemplate(ctx context.Context, m domain.Message, kind string, arg string) {
	if !e.checkFromAdmin(ctx, m, false) {
		return
	}
	if arg != "" {
		e.set(ctx, e.key(kind+":template"), arg, 0)
	}
	query := e.format(ctx, kind+".query", EscapeHTML(e.template(ctx, kind)))
	e.reply(ctx, m, query+"\n\n"+e.format(ctx, "template.help"))
}

// toggleFlag handles the on/off flag commands. verbose and quiet contradict
// each other, so turning one on clears the other.
func (e *Engine) toggleFlag(ctx context.Context, m domain.Message, name string, arg string, conflict string) {
	if !e.checkFromAdmin(ctx, m, false) {
		return
	}
	switch arg {
	case "":
	case "on":
		e.set(ctx, e.key(name), "true", 0)
		if conflict != "" {
			e.del(ctx, e.key(conflict))
		}
	case "off":
		e.del(ctx, e.key(name))
	default:
		e.reply(ctx, m, e.format(ctx, "cmd.bad_param"))
		return
	}
	key := name + lo.Ternary(e.exists(ctx, e.key(name)), ".on", ".off")
	e.reply(ctx, m, e.format(ctx, key))
}

// manualSession runs fn for every user targeted by an admin's reply command.
// Replying to a join notice addresses all users it announced; replying to a
// regular message addresses its sender.
func (e *Engine) manualSession(ctx context.Context, m domain.Message, fn func(domain.User)) {
	if !e.checkFromAdmin(ctx, m, false) || !e.checkHasReply(ctx, m) {
		return
	}
	if m.ReplyTo.IsJoinNotice() {
		for _, u := range m.ReplyTo.Joined {
			fn(u)
		}
		return
	}
	fn(m.ReplyTo.Sender)
}

// checkFromAdmin gates a command on the sender's admin role. Private chats
// have no admins; commands that still make sense there opt in via
// allowPrivate, the rest are redirected to group usage.
func (e *Engine) checkFromAdmin(ctx context.Context, m domain.Message, allowPrivate bool) bool {
	if m.Private {
		if allowPrivate {
			return true
		}
		e.reply(ctx, m, e.format(ctx, "cmd.not_in_group"))
		return false
	}
	if e.role(ctx, m.Sender.ID, false) != domain.RoleAdmin {
		e.reply(ctx, m, e.format(ctx, "cmd.not_admin"))
		return false
	}
	return true
}

func (e *Engine) checkHasReply(ctx context.Context, m domain.Message) bool {
	if m.ReplyTo == nil {
		e.reply(ctx, m, e.format(ctx, "cmd.need_reply"))
		return false
	}
	return true
}

func (e *Engine) reply(ctx context.Context, m domain.Message, html string) {
	e.send(ctx, html, m.ID)
}
