package shell

import "strings"

// Command is one parsed input line.
type Command struct {
	Name     string
	Argument string
	// Flag is accepted for forward compatibility; no command reads it.
	Flag string
	// Raw is the line as it was read.
	Raw string
}

// ParseLine splits a line on whitespace into name, argument and flag.
// Tokens after the third are ignored.
func ParseLine(line string) Command {
	cmd := Command{Raw: line}
	fields := strings.Fields(line)
	if len(fields) > 0 {
		cmd.Name = fields[0]
	}
	if len(fields) > 1 {
		cmd.Argument = fields[1]
	}
	if len(fields) > 2 {
		cmd.Flag = fields[2]
	}
	return cmd
}

// CommandDef describes a built-in command for help output.
type CommandDef struct {
	Usage       string
	Description string
}

// Commands returns the built-in commands in display order.
func Commands() []CommandDef {
	return []CommandDef{
		{Usage: "pwd", Description: "Print the current directory"},
		{Usage: "mkdir <name>", Description: "Create a directory in the current directory"},
		{Usage: "cd [<path>]", Description: "Change directory; no argument or / returns to root"},
		{Usage: "ls", Description: "List directories in the current directory"},
		{Usage: "rm <path>", Description: "Remove a directory by relative path"},
		{Usage: "session clear", Description: "Remove every directory and return to root"},
	}
}
