package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"sticker-gate/domain"
)

func TestRender_Variables(t *testing.T) {
	req := require.New(t)
	engine, store, _ := newTestEngine(t)
	store.put(engine.key("timeout"), "60")
	ann := domain.User{ID: 7, FirstName: "Ann"}

	out := engine.render(context.Background(), "$u went $i in $t s", ann)
	req.Equal(`<a href="tg://user?id=7">Ann</a> went <a href="tg://user?id=7">7</a> in 60 s`, out)

	out = engine.render(context.Background(), "$u went $$home in $t s", ann)
	req.Equal(`<a href="tg://user?id=7">Ann</a> went $home in 60 s`, out)
}

func TestRender_EscapesUserContent(t *testing.T) {
	req := require.New(t)
	engine, _, _ := newTestEngine(t)
	evil := domain.User{ID: 7, FirstName: "<b>Ann", LastName: "& Bob</b>"}

	out := engine.render(context.Background(), "hi $u <3", evil)
	req.Equal(`hi <a href="tg://user?id=7">&lt;b&gt;Ann &amp; Bob&lt;/b&gt;</a> &lt;3`, out)
}

func TestRender_DollarEscapes(t *testing.T) {
	req := require.New(t)
	engine, _, _ := newTestEngine(t)
	u := domain.User{ID: 7, FirstName: "Ann"}

	req.Equal("$100", engine.render(context.Background(), "$$100", u))
	req.Equal("ab", engine.render(context.Background(), "a$xb", u))
	req.Equal("end", engine.render(context.Background(), "end$", u))
}
