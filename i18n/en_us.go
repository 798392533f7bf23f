package i18n

var enUS = map[string]string{
	"action.ban":       "ban",
	"action.help":      "/action [kick|mute|ban] - show or set the action taken on users who fail verification",
	"action.kick":      "kick",
	"action.mute":      "mute",
	"action.query":     "Current action on failed verification is <b>%s</b>.",
	"bot.angry":        "<b>Someone took away my admin rights, so I am leaving.</b>",
	"bot.not_admin":    "That did not work. The admins probably did not grant me the <b>delete messages</b> and <b>ban users</b> permissions.",
	"cmd.bad_param":    "Invalid parameter.",
	"cmd.need_reply":   "This command must be used in reply to a message.",
	"cmd.not_admin":    "This command is reserved for admins holding the <b>ban users</b> permission.",
	"cmd.not_in_group": "Please use this command in a group chat.",
	"debug.help":       "/debug [on|off] - toggle debug mode (log extra detail for this chat)",
	"debug.off":        "Debug mode is <b>off</b>.",
	"debug.on":         "Debug mode is <b>on</b>.",
	"disable.help":     "/disable - disable verification in this chat",
	"enable.help":      "/enable - enable verification in this chat",
	"fail.help":        "/fail - reply to a user's message or their join notice to force-fail their verification",
	"help.help":        "/help - show this help",
	"help.title":       "<b>Sticker Gate Bot</b>",
	"id.help":          "/id - show the id of this chat",
	"lang.help":        "/lang [string] - show or set the display language for this chat",
	"lang.query":       "Current language is <code>%s</code>\n\nAvailable languages: %s",
	"onfail.default":   "$u failed the verification.",
	"onfail.help":      "/onfail [string] - show or set the template sent when a user fails verification",
	"onfail.query":     "Current template for failed users:\n<pre>%s</pre>",
	"onjoin.default":   "Hello $u, this chat verifies newcomers. Please send a sticker (any sticker) within $t seconds.",
	"onjoin.help":      "/onjoin [string] - show or set the template sent to joining users. <b>It should tell them to send a sticker to pass.</b>",
	"onjoin.query":     "Current template for joining users:\n<pre>%s</pre>",
	"onpass.default":   "$u passed the verification.",
	"onpass.help":      "/onpass [string] - show or set the template sent when a user passes verification",
	"onpass.query":     "Current template for passed users:\n<pre>%s</pre>",
	"pass.help":        "/pass - reply to a user's message or their join notice to let them skip verification",
	"ping.help":        "/ping - am I alive?",
	"ping.pong":        "Pong! | %s",
	"quiet.help":       "/quiet [on|off] - toggle quiet mode (keep the chat as quiet as possible)",
	"quiet.off":        "Quiet mode is <b>off</b>.",
	"quiet.on":         "Quiet mode is <b>on</b>.",
	"refresh.help":     "/refresh - drop the cached role of yourself or of the replied user",
	"reverify.help":    "/reverify - reply to a member's message to run their verification again",
	"status.disable":   "Verification is <b>disabled</b> in this chat.",
	"status.enable":    "Verification is <b>enabled</b> in this chat.",
	"status.help":      "/status - show whether verification is enabled in this chat",
	"template.help":    "Template variables: mention the user => <code>$u</code>, mention by id only => <code>$i</code>, timeout in seconds => <code>$t</code>, a literal <code>$</code> => <code>$$</code>.",
	"timeout.help":     "/timeout [integer] - show or set the verification timeout for this chat",
	"timeout.notice":   "<b>Is that not a little short for a human?</b>",
	"timeout.query":    "Verification timeout is <b>%d seconds</b>.",
	"verbose.help":     "/verbose [on|off] - toggle verbose mode (keep every message)",
	"verbose.off":      "Verbose mode is <b>off</b>.",
	"verbose.on":       "Verbose mode is <b>on</b>.",
}
