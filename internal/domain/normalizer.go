package domain

import "strings"

// SplitLines splits text on "\n", "\r\n" and lone "\r". A trailing
// terminator does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = normalizeTerminators(text)
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}

// Normalize maps snippet text to its comparison form: surrounding blank
// lines dropped, common indentation removed, "\n" terminators and no
// trailing whitespace. Indentation is measured in characters, so a tab and
// a space both count as one and mixed indentation is never reconciled.
func Normalize(text string) string {
	lines := SplitLines(text)

	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\f\v")
	}

	lines = trimBlankLines(lines)
	lines = Dedent(lines)

	return strings.Join(lines, "\n")
}

// Dedent removes the smallest leading-whitespace count of the non-blank
// lines from every line. Blank lines shorter than that count become empty.
func Dedent(lines []string) []string {
	indent := CommonIndent(lines)
	out := make([]string, len(lines))

	for i, line := range lines {
		if len(line) < indent {
			out[i] = strings.TrimLeft(line, " \t")
			continue
		}

		out[i] = line[indent:]
	}

	return out
}

// CommonIndent returns the minimum number of leading whitespace characters
// over all non-blank lines.
func CommonIndent(lines []string) int {
	minIndent := -1

	for _, line := range lines {
		if isBlank(line) {
			continue
		}

		n := leadingWhitespace(line)
		if minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}

	if minIndent < 0 {
		return 0
	}

	return minIndent
}

func normalizeTerminators(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}

	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}

	return lines[start:end]
}

func leadingWhitespace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
