package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dispatch-tools/chatcmd/message"
)

// Renderer formats and prints the messages the dispatch core selects. This is
// the only place in the host that imports lipgloss; all styling is semantic.
type Renderer struct {
	out     io.Writer
	enabled bool

	errorStyle lipgloss.Style
	warnStyle  lipgloss.Style
	mutedStyle lipgloss.Style
}

// NewRenderer builds a renderer writing to out. Styling is applied only when
// enable is set, the terminal supports color, and NO_COLOR is unset.
func NewRenderer(out io.Writer, enable bool) *Renderer {
	if os.Getenv("NO_COLOR") != "" || termenv.EnvColorProfile() == termenv.Ascii {
		enable = false
	}

	r := &Renderer{out: out, enabled: enable}
	if enable {
		r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		r.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return r
}

// Install registers a handler for every message key the core can emit.
func (r *Renderer) Install(reg *message.Registry) {
	reg.Register(message.SenderMismatch, func(_ any, ctx message.Context) {
		r.errorf("this command cannot be used from here")
		r.usage(ctx)
	})
	reg.Register(message.UnmetRequirement, func(_ any, ctx message.Context) {
		r.warnf("you cannot use '%s' right now", ctx.Command)
	})
	reg.Register(message.UnknownSubCommand, func(_ any, ctx message.Context) {
		r.errorf("unknown command '%s'", ctx.Typed)
		if len(ctx.Suggestions) > 0 {
			r.mutedf("did you mean: %s", strings.Join(ctx.Suggestions, ", "))
		}
	})
	reg.Register(message.NotEnoughArguments, func(_ any, ctx message.Context) {
		r.errorf("missing required argument '%s'", ctx.Argument)
		r.usage(ctx)
	})
	reg.Register(message.TooManyArguments, func(_ any, ctx message.Context) {
		r.errorf("too many arguments")
		r.usage(ctx)
	})
	reg.Register(message.InvalidArgument, func(_ any, ctx message.Context) {
		r.errorf("'%s' is not a valid %s for '%s'", ctx.Typed, ctx.Expected, ctx.Argument)
		r.usage(ctx)
	})
	reg.Register(message.UnknownFlag, func(_ any, ctx message.Context) {
		r.errorf("unknown flag '%s'", ctx.Flag)
		r.usage(ctx)
	})
	reg.Register(message.MissingRequiredFlag, func(_ any, ctx message.Context) {
		r.errorf("missing required flag '%s'", ctx.Flag)
		r.usage(ctx)
	})
	reg.Register(message.InvalidFlagArgument, func(_ any, ctx message.Context) {
		if ctx.Typed == "" {
			r.errorf("flag '%s' needs a %s value", ctx.Flag, ctx.Expected)
		} else {
			r.errorf("'%s' is not a valid %s for flag '%s'", ctx.Typed, ctx.Expected, ctx.Flag)
		}
		r.usage(ctx)
	})
}

// Printf writes a plain line, for command handlers to reply with.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) usage(ctx message.Context) {
	if ctx.Syntax == "" {
		return
	}
	r.mutedf("usage: %s", ctx.Syntax)
}

func (r *Renderer) errorf(format string, args ...any) {
	r.line(r.errorStyle, format, args...)
}

func (r *Renderer) warnf(format string, args ...any) {
	r.line(r.warnStyle, format, args...)
}

func (r *Renderer) mutedf(format string, args ...any) {
	r.line(r.mutedStyle, format, args...)
}

func (r *Renderer) line(style lipgloss.Style, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if r.enabled {
		text = style.Render(text)
	}
	fmt.Fprintln(r.out, text)
}
