package group

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sticker-gate/domain"
)

// render expands the template mini-language: $u mentions the user by name,
// $i by id only, $t is the current timeout in seconds, $$ a literal dollar
// and unrecognized escapes are dropped. The template is HTML-escaped first;
// only the mention markup built here is emitted as HTML.
func (e *Engine) render(ctx context.Context, tmpl string, u domain.User) string {
	tmpl = EscapeHTML(tmpl)
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '$' {
			b.WriteByte(tmpl[i])
			continue
		}
		i++
		if i == len(tmpl) {
			break
		}
		switch tmpl[i] {
		case '$':
			b.WriteByte('$')
		case 'u':
			b.WriteString(mention(u.ID, EscapeHTML(u.FullName())))
		case 'i':
			b.WriteString(mention(u.ID, strconv.FormatInt(u.ID, 10)))
		case 't':
			b.WriteString(strconv.Itoa(int(e.timeout(ctx).Seconds())))
		}
	}
	return b.String()
}

func mention(user int64, label string) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user, label)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
