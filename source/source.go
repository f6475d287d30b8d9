// Package source tracks a single input file's bytes together with a
// line-start index so any byte offset can be mapped to a 1-based
// (line, col) pair for diagnostics.
package source

import (
	"bytes"
	"unicode/utf8"
)

// Source holds the bytes of one input file plus a cached index of where
// each line begins, used to answer LineCol queries without rescanning.
type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
}

// New builds a Source over content, named name (typically a file path).
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	s.lineStarts[0] = 0
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// Name returns the source's file name.
func (s *Source) Name() string {
	return s.name
}

// Content returns the raw bytes of the source.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns the byte length of the source.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol maps a byte offset to a 1-based (line, col) pair. col counts runes,
// not bytes, so it stays meaningful for UTF-8 content.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// findLineIndex does a binary search biased around the previously found
// line, since callers (lexers) almost always ask for monotonically
// increasing positions.
func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	index := 0
	if s.prevLineIndex >= 0 {
		rightIndex = s.prevLineIndex
	}
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart := s.lineStarts[index]
		if lineStart == pos {
			break
		}

		if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = index
	return index
}

// Pos is a resolved (source, byte offset, line, col) tuple, implementing
// llcc.SourcePos-like access for anything that needs to report a position
// without being a token.
type Pos struct {
	src       *Source
	pos       int
	line, col int
}

// NewPos resolves pos's line/col against src immediately.
func NewPos(src *Source, pos int) Pos {
	p := Pos{src: src, pos: pos}
	if src != nil {
		p.line, p.col = src.LineCol(pos)
	}
	return p
}

func (p Pos) Source() *Source { return p.src }
func (p Pos) Pos() int        { return p.pos }
func (p Pos) Line() int       { return p.line }
func (p Pos) Col() int        { return p.col }

// SourceName implements llcc.SourcePos.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}
