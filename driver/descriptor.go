package driver

import (
	"fmt"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Descriptor is the parsed form of a driver type descriptor. The textual
// grammar is "TypeName" or "TypeName, ModuleName": the type name designates
// a backend type or exported factory symbol, the optional module name a
// separately loadable library that provides it.
type Descriptor struct {
	Type   string
	Module string
}

// Token codes
const (
	whitespaceCode = iota
	typeNameCode
	moduleNameCode
	commaCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	typeNameToken   = parsly.NewToken(typeNameCode, "TypeName", &identifierMatcher{})
	moduleNameToken = parsly.NewToken(moduleNameCode, "ModuleName", &moduleMatcher{})
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
)

// identifierMatcher matches a Go identifier: a letter or underscore followed
// by letters, digits or underscores.
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size || !isIdentStart(input[pos]) {
		return 0
	}
	matched := 1
	for pos+matched < size && isIdentPart(input[pos+matched]) {
		matched++
	}
	return matched
}

// moduleMatcher matches a module/library name: identifier characters plus
// '.' and '-', so versioned library file stems parse as a single token.
type moduleMatcher struct{}

func (m *moduleMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size || !isIdentStart(input[pos]) {
		return 0
	}
	matched := 1
	for pos+matched < size {
		ch := input[pos+matched]
		if !isIdentPart(ch) && ch != '.' && ch != '-' {
			break
		}
		matched++
	}
	return matched
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// ParseDescriptor parses a driver type descriptor.
func ParseDescriptor(text string) (*Descriptor, error) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	descriptor := &Descriptor{}

	matched := cursor.MatchAfterOptional(whitespaceToken, typeNameToken)
	if matched.Code != typeNameToken.Code {
		return nil, cursor.NewError(typeNameToken)
	}
	descriptor.Type = matched.Text(cursor)

	matched = cursor.MatchAfterOptional(whitespaceToken, commaToken)
	if matched.Code == commaToken.Code {
		matched = cursor.MatchAfterOptional(whitespaceToken, moduleNameToken)
		if matched.Code != moduleNameToken.Code {
			return nil, cursor.NewError(moduleNameToken)
		}
		descriptor.Module = matched.Text(cursor)
	}

	if matched = cursor.MatchAfterOptional(whitespaceToken, commaToken); matched.Code == commaToken.Code {
		return nil, fmt.Errorf("unexpected ',' at position %v in %q", cursor.Pos, text)
	}
	if cursor.Pos < cursor.InputSize {
		return nil, fmt.Errorf("unexpected trailing input at position %v in %q", cursor.Pos, text)
	}
	return descriptor, nil
}

// String renders the descriptor back to its textual form.
func (d *Descriptor) String() string {
	if d.Module == "" {
		return d.Type
	}
	return d.Type + ", " + d.Module
}
