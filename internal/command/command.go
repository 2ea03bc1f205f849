// Package command parses player input from the command line.
package command

import "strings"

// Verb is a recognized command word.
type Verb int

const (
	// VerbNone is returned for blank input.
	VerbNone Verb = iota
	// VerbUnknown is any word that is not a command.
	VerbUnknown
	VerbHelp
	VerbLook
	VerbGo
	VerbMap
	VerbQuit
)

// Help lists the commands for the "help" verb.
const Help = `Available commands: help, look, go <where>, move <where>, map, quit. Directions: north/south/east/west (n/s/e/w).`

var verbs = map[string]Verb{
	"help": VerbHelp,
	"?":    VerbHelp,
	"look": VerbLook,
	"l":    VerbLook,
	"go":   VerbGo,
	"move": VerbGo,
	"map":  VerbMap,
	"quit": VerbQuit,
	"exit": VerbQuit,
}

// String returns the canonical name of the verb.
func (v Verb) String() string {
	switch v {
	case VerbNone:
		return "none"
	case VerbHelp:
		return "help"
	case VerbLook:
		return "look"
	case VerbGo:
		return "go"
	case VerbMap:
		return "map"
	case VerbQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed line of input.
type Command struct {
	Verb Verb
	Word string   // The verb as typed, lowercased
	Args []string // Remaining words in their original case
	Raw  string   // Trimmed input line
}

// Parse splits a line on whitespace and resolves its first word. Verbs are
// case-insensitive.
func Parse(line string) Command {
	raw := strings.TrimSpace(line)
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{Verb: VerbNone}
	}

	word := strings.ToLower(fields[0])
	verb, ok := verbs[word]
	if !ok {
		verb = VerbUnknown
	}

	return Command{
		Verb: verb,
		Word: word,
		Args: fields[1:],
		Raw:  raw,
	}
}

// Target joins the arguments into a single phrase, e.g. "break room".
func (c Command) Target() string {
	return strings.Join(c.Args, " ")
}
