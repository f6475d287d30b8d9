package lexer

import "strings"

// DetectEncoding inspects content's BOM and, failing that, the first two
// physical lines for a "coding:"/"coding=" marker, the way a "# -*- coding:
// utf-8 -*-" header declares a Python source file's encoding. The result is
// advisory only: Tokenize always treats content as a raw byte sequence.
func DetectEncoding(content []byte) string {
	switch {
	case len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF:
		return "utf-8"
	case len(content) >= 2 && content[0] == 0xFE && content[1] == 0xFF:
		return "utf-16be"
	case len(content) >= 2 && content[0] == 0xFF && content[1] == 0xFE:
		return "utf-16le"
	}

	lineNo := 0
	start := 0
	for i := 0; i <= len(content) && lineNo < 2; i++ {
		atEnd := i == len(content)
		if atEnd || content[i] == '\n' || content[i] == '\r' {
			line := content[start:i]
			if enc, ok := codingFromLine(line); ok {
				return enc
			}
			lineNo++
			if !atEnd && content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
		if atEnd {
			break
		}
	}

	return "utf-8"
}

func codingFromLine(line []byte) (string, bool) {
	if len(line) == 0 || line[0] != '#' {
		return "", false
	}
	s := string(line)

	idx := strings.Index(s, "coding:")
	marker := "coding:"
	if idx < 0 {
		idx = strings.Index(s, "coding=")
		marker = "coding="
	}
	if idx < 0 {
		return "", false
	}

	rest := strings.TrimLeft(s[idx+len(marker):], " \t")
	end := 0
	for end < len(rest) && rest[end] != ' ' && rest[end] != '\t' {
		end++
	}
	return strings.ToLower(rest[:end]), true
}
