package sketchlang

import "fmt"

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	// BracketNotClosed marks an opening bracket with no matching close.
	BracketNotClosed ParseErrorKind = iota
	// ExtraRightBracket marks a closing bracket with no matching open.
	ExtraRightBracket
	// ParseNumberFail marks a numeric-looking token that failed to parse.
	ParseNumberFail
	// InvalidSyntax is everything that matched no known form.
	InvalidSyntax
)

func (k ParseErrorKind) String() string {
	switch k {
	case BracketNotClosed:
		return "bracket not closed"
	case ExtraRightBracket:
		return "extra right bracket"
	case ParseNumberFail:
		return "failed to parse number"
	default:
		return "invalid syntax"
	}
}

// ParseError reports a malformed command. Pos is a byte offset into the
// original command string, never a substring.
type ParseError struct {
	Kind ParseErrorKind
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s at char %d: %s", e.Kind, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s at char %d", e.Kind, e.Pos)
}

// MatchErrorKind classifies a MatchError.
type MatchErrorKind int

const (
	// VarOnLeftExpr means a wildcard appeared on the input side of a
	// match. Wildcards live in templates only, so this is template
	// misuse, not a plain non-match.
	VarOnLeftExpr MatchErrorKind = iota
	// IdentCaptureUnsupported means an identifier reached a wildcard
	// position. Named bindings are not supported.
	IdentCaptureUnsupported
)

func (k MatchErrorKind) String() string {
	switch k {
	case VarOnLeftExpr:
		return "wildcard on input side"
	default:
		return "identifier capture not supported"
	}
}

// MatchError is a fatal matcher failure. A structural non-match is not
// an error; it is reported through the matcher's ok result instead.
type MatchError struct {
	Kind MatchErrorKind
	Msg  string
}

func (e *MatchError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return e.Kind.String()
}

// EvalError means a function node failed to evaluate during the pure
// reduction stage.
type EvalError struct{ Msg string }

func (e *EvalError) Error() string { return e.Msg }

// PatternMatchKind classifies a PatternMatchError.
type PatternMatchKind int

const (
	// NoMatch means a drawing call matched no registered pattern.
	NoMatch PatternMatchKind = iota
	// ASTMatchError wraps a fatal MatchError raised while scanning the
	// drawing patterns.
	ASTMatchError
)

// PatternMatchError is raised by the drawing stage. Either kind aborts
// the whole command; no partial draw list is returned.
type PatternMatchError struct {
	Kind   PatternMatchKind
	Detail string
}

func (e *PatternMatchError) Error() string {
	if e.Kind == NoMatch {
		if e.Detail != "" {
			return "no pattern matches " + e.Detail
		}
		return "no pattern matches"
	}
	return "invalid match syntax: " + e.Detail
}

// DimensionError reports an operation across coordinates or figures of
// unequal dimensions.
type DimensionError struct{ Msg string }

func (e *DimensionError) Error() string { return e.Msg }
