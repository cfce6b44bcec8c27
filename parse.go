package sketchlang

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	isNumber = regexp.MustCompile(`^-?\d+\.?\d*$`)
	isIdent  = regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9]*$`)
)

// parseNode classifies the trimmed substring s and recurses into its
// parts. offset is the absolute position of s's first byte in the
// original command string; it is threaded through every recursive call
// so error positions always point into the original input.
func parseNode(s string, offset int) (Node, error) {
	offset += leadingSpace(s)
	s = strings.TrimSpace(s)

	if s == "{}" {
		return Variable{}, nil
	}

	if isNumber.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ParseError{Kind: ParseNumberFail, Pos: offset, Msg: "got " + s}
		}
		return Number{Value: v}, nil
	}

	if isIdent.MatchString(s) {
		return Identifier{Name: s}, nil
	}

	// A string fully wrapped in one balanced bracket pair is unwrapped
	// in place. The wrap must span the entire string: "(x),(y)" is not
	// wrapped and falls through to the splice below.
	if inner, ok := stripOuterBrackets(s); ok {
		return parseNode(inner, offset+1)
	}

	if strings.ContainsAny(s, "(,") {
		return splice(s, offset)
	}

	if i := strings.IndexByte(s, ')'); i >= 0 {
		return nil, &ParseError{Kind: ExtraRightBracket, Pos: offset + i}
	}

	return nil, &ParseError{
		Kind: InvalidSyntax,
		Pos:  offset,
		Msg:  "failed to match any known patterns - got (" + s + ")",
	}
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func leadingSpace(s string) int {
	i := 0
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	return i
}

// stripOuterBrackets reports whether the bracket opened at position 0
// closes at the last character, and returns the interior if so.
func stripOuterBrackets(s string) (string, bool) {
	if len(s) < 2 || s[0] != '(' {
		return "", false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i == len(s)-1 {
					return s[1 : len(s)-1], true
				}
				return "", false
			}
		}
	}
	return "", false
}

// splice breaks a complex substring apart. Pass 1 scans for top-level
// commas while tracking bracket depth; if any are found the segments
// become an Expression. Otherwise pass 2 reads the string as a
// function-call chain ident(args1)(args2)...(argsN).
func splice(s string, offset int) (Node, error) {
	type segment struct {
		text string
		pos  int
	}

	depth := 0
	segStart := 0
	var segs []segment
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, &ParseError{Kind: ExtraRightBracket, Pos: offset + i}
			}
		case ',':
			if depth == 0 {
				segs = append(segs, segment{text: s[segStart:i], pos: segStart})
				segStart = i + 1
			}
		}
	}

	if len(segs) > 0 {
		segs = append(segs, segment{text: s[segStart:], pos: segStart})
		nodes := make([]Node, 0, len(segs))
		for _, seg := range segs {
			sub, err := parseNode(seg.text, offset+seg.pos)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, sub)
		}
		return Expression{Nodes: nodes}, nil
	}

	return spliceCall(s, offset)
}

// spliceCall parses the form ident(args1)(args2)...(argsN). Each
// top-level bracket group becomes one positional argument; the chain
// flattens into a single Function node.
func spliceCall(s string, offset int) (Node, error) {
	first := strings.IndexByte(s, '(')
	if first < 0 {
		return nil, &ParseError{Kind: InvalidSyntax, Pos: offset, Msg: "invalid function identifier"}
	}
	name := strings.TrimSpace(s[:first])

	depth := 0
	groupStart := -1
	var args []Node
	for i := first; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(':
			if depth == 0 {
				groupStart = i
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, &ParseError{Kind: ExtraRightBracket, Pos: offset + i}
			}
			if depth == 0 {
				sub, err := parseNode(s[groupStart+1:i], offset+groupStart+1)
				if err != nil {
					return nil, err
				}
				args = append(args, sub)
			}
		default:
			if depth == 0 && !isSpaceByte(c) {
				return nil, &ParseError{Kind: InvalidSyntax, Pos: offset + i, Msg: "invalid bracketed expression"}
			}
		}
	}
	if depth > 0 {
		// groupStart is the first bracket that never closed.
		return nil, &ParseError{Kind: BracketNotClosed, Pos: offset + groupStart}
	}

	return Function{Name: name, Args: args}, nil
}
