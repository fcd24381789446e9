package program

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/decdump/decdump/pkg/numeric"
)

// commentMarker begins a comment that runs to the end of the line.
const commentMarker = '#'

// ParseError describes a malformed word in program source.
type ParseError struct {
	// Line is the 1-based line number of the word.
	Line int
	// Column is the 1-based column (in bytes) of the word.
	Column int
	// Word is the offending word.
	Word string
	// Reason describes the problem.
	Reason string
}

// Error implements error.Error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %q", e.Line, e.Column, e.Reason, e.Word)
}

// parseWord converts a single source word into an instruction.
func parseWord(word string) (Instruction, string) {
	switch word {
	case "+":
		return Add(), ""
	case "-":
		return Minus(), ""
	case ".", "dump":
		return Dump(), ""
	}
	if word[0] < '0' || word[0] > '9' {
		return Instruction{}, "unknown word"
	}
	value, err := strconv.ParseUint(word, 10, 64)
	if err != nil {
		if numError, ok := err.(*strconv.NumError); ok && numError.Err == strconv.ErrRange {
			return Instruction{}, "literal exceeds " + numeric.MaxUint64Description
		}
		return Instruction{}, "invalid literal"
	}
	return Push(value), ""
}

// Parse reads program source from reader. Source consists of whitespace
// separated words: unsigned decimal literals push a value, "+" adds, "-"
// subtracts, and "." (or "dump") prints the top of the stack. A '#' starts a
// comment that extends to the end of the line.
func Parse(reader io.Reader) (Program, error) {
	var result Program
	scanner := bufio.NewScanner(reader)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()

		// Strip any comment.
		if index := strings.IndexByte(text, commentMarker); index != -1 {
			text = text[:index]
		}

		// Walk the words on the line, tracking their columns.
		offset := 0
		for {
			start := strings.IndexFunc(text[offset:], func(r rune) bool { return !unicode.IsSpace(r) })
			if start == -1 {
				break
			}
			start += offset
			end := strings.IndexFunc(text[start:], unicode.IsSpace)
			if end == -1 {
				end = len(text)
			} else {
				end += start
			}
			word := text[start:end]
			instruction, reason := parseWord(word)
			if reason != "" {
				return nil, &ParseError{Line: line, Column: start + 1, Word: word, Reason: reason}
			}
			result = append(result, instruction)
			offset = end
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read program source")
	}

	// Success.
	return result, nil
}

// ParseFile reads and parses the program source stored at path.
func ParseFile(path string) (Program, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open program source")
	}
	defer file.Close()
	return Parse(file)
}
