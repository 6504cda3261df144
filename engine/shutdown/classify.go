// Package shutdown tears the engine down in a fixed order and tells the
// player why the game ended.
package shutdown

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindNormal      Kind = iota // "|..."
	KindAbort                   // "!|": abort key
	KindScriptAbort             // "!?...": AbortGame from a script
	KindScriptError             // "!...": script error
	KindWarning                 // "%...": warning treated as an error
	KindInternal                // anything else
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindAbort:
		return "abort"
	case KindScriptAbort:
		return "script abort"
	case KindScriptError:
		return "script error"
	case KindWarning:
		return "warning"
	default:
		return "internal error"
	}
}

// Message is a classified quit message.
type Message struct {
	Kind Kind
	Text string // message without its class prefix
	// Alert is the full text shown to the player; empty for a normal exit.
	Alert string
}

// Failed reports whether the game ended because of an error.
func (m Message) Failed() bool { return m.Kind != KindNormal && m.Kind != KindAbort }

// Classify decodes the class prefix of a quit message and builds the alert
// text. version is the engine version shown in error reports; script is the
// current script location, if known.
func Classify(msg, version, script string) Message {
	var (
		m        Message
		preamble string
	)
	switch {
	case strings.HasPrefix(msg, "|"):
		return Message{Kind: KindNormal, Text: msg[1:]}
	case strings.HasPrefix(msg, "!|"):
		m.Kind = KindAbort
		preamble = "Abort key pressed.\n\n" + script
	case strings.HasPrefix(msg, "!?"):
		m.Kind = KindScriptAbort
		m.Text = msg[2:]
		preamble = "A fatal error has been generated by the script using the AbortGame function. " +
			"Please contact the game author for support.\n\n" + script + "\nError: "
	case strings.HasPrefix(msg, "!"):
		m.Kind = KindScriptError
		m.Text = msg[1:]
		preamble = fmt.Sprintf("An error has occurred. Please contact the game author for support, as this "+
			"is likely to be a scripting error and not a bug in the engine.\n"+
			"(Engine version %s)\n\n", version) + script + "\nError: "
	case strings.HasPrefix(msg, "%"):
		m.Kind = KindWarning
		m.Text = msg[1:]
		preamble = fmt.Sprintf("A warning has been generated. This is not normally fatal, but you have selected "+
			"to treat warnings as errors.\n"+
			"(Engine version %s)\n\n%s\n", version, script)
	default:
		m.Kind = KindInternal
		m.Text = msg
		preamble = fmt.Sprintf("An internal error has occurred. Please note down the following information.\n"+
			"If the problem persists, report it with the details below.\n"+
			"(Engine version %s)\n"+
			"\nError: ", version)
	}
	m.Alert = preamble + m.Text + "\n"
	return m
}
