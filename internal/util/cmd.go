package util

import "strings"

// CmdSpec describes a subprocess invocation. It is only ever printed: the
// command is handed to the user or an external pipeline, never run here.
type CmdSpec struct {
	Path string   // Binary path
	Args []string // Arguments
}

// String returns a shell-pasteable command line.
func (c CmdSpec) String() string {
	b := &strings.Builder{}
	b.WriteString(quote(c.Path))
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(quote(a))
	}
	return b.String()
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	// Wrap in single quotes and escape embedded single quotes.
	if strings.ContainsAny(s, " \t\n\"'\\$`(){}[]*&;|<>?!") {
		return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
	}
	return s
}
