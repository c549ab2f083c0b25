package tui

import "strings"

// command is a parsed slash command such as "/mood Friendly".
type command struct {
	name string
	arg  string
}

// parseCommand splits input starting with "/" into a command name and its
// argument text.
func parseCommand(input string) (command, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") || len(input) < 2 {
		return command{}, false
	}
	name, arg, _ := strings.Cut(input[1:], " ")
	return command{name: strings.ToLower(name), arg: strings.TrimSpace(arg)}, true
}

// splitContact reads "<email> <message>".
func splitContact(arg string) (email, text string, ok bool) {
	email, text, _ = strings.Cut(strings.TrimSpace(arg), " ")
	text = strings.TrimSpace(text)
	if !strings.Contains(email, "@") || text == "" {
		return "", "", false
	}
	return email, text, true
}

const helpText = "/new  /mood <text>  /instructions <text>  /theme [dark|light|system]  /upload <path>  /contact <email> <message>  /quit"
