package util

import "strings"

// LastSegment returns the part of path after the final sep, or path itself when sep doesn't occur.
func LastSegment(path string, sep byte) string {
	i := strings.LastIndexByte(path, sep)
	if i < 0 {
		return path
	}
	return path[i+1:]
}

func StripQuotes(s string) string {
	return strings.ReplaceAll(s, "\"", "")
}

// Lines splits text into lines, dropping empty ones. A trailing newline doesn't produce an extra line.
func Lines(text string) []string {
	var ret []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		ret = append(ret, l)
	}
	return ret
}

// IndentLines prefixes every non-empty line of text with indent and terminates each with a newline.
func IndentLines(text, indent string) string {
	var b strings.Builder
	for _, l := range Lines(text) {
		b.WriteString(indent)
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
