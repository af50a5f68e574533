package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Localizer looks up UI copy by catalog key. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// T returns the localized copy for key, or the key itself without a
// localizer.
func T(loc Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}

// htmlWriter remembers the first write error so components read as a
// straight sequence of writes.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, part)
	}
}

func (hw *htmlWriter) text(value string) {
	hw.raw(Escape(value))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" ", name, `="`, Escape(value), `"`)
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

func component(fn func(ctx context.Context, hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		fn(ctx, hw)
		return hw.err
	})
}

// safeURL drops URLs with schemes templ does not consider navigable.
func safeURL(value string) string {
	return string(templ.URL(value))
}
