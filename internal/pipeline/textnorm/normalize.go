package textnorm

import "strings"

// Normalize cleans raw extracted text while keeping line structure:
// line-wrapped hyphenated words are rejoined, runs of spaces and tabs
// collapse to one space, and blank-line runs collapse to one break.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	raw = dehyphenate(raw)

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = collapseSpaces(line)
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// dehyphenate rejoins words split across a line break, e.g.
// "confiden-\ntial" -> "confidential". A hyphen is only removed when
// both sides are lowercase letters, so real compounds like
// "non-\nDisclosure" keep the hyphen.
func dehyphenate(text string) string {
	var sb strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '-' && i > 0 && i+1 < len(runes) && runes[i+1] == '\n' {
			j := i + 2
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			if j < len(runes) && isLowerLetter(runes[i-1]) && isLowerLetter(runes[j]) {
				i = j - 1 // skip the hyphen and the break
				continue
			}
			// keep the hyphen, drop only the break
			sb.WriteRune('-')
			i = j - 1
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

func isLowerLetter(r rune) bool { return 'a' <= r && r <= 'z' }

func collapseSpaces(line string) string {
	var sb strings.Builder
	space := false
	for _, r := range line {
		if r == ' ' || r == '\t' {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}
