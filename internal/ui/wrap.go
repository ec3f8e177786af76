package ui

import "strings"

// Wrap word-wraps text to width columns, preserving explicit newlines. Words
// longer than the width stay on their own line unbroken.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}
	// Leading spaces are indentation, keep them on the first output line.
	indent := line[:strings.Index(line, words[0])]

	var lines []string
	current := indent + words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = indent + word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
