package sketchlang

import "fmt"

// PayloadKind tags a VariablePayload.
type PayloadKind int

const (
	// NumberPayload carries one float captured from a literal.
	NumberPayload PayloadKind = iota
	// NumberTuplePayload carries the floats of an all-numeric
	// expression, e.g. the (0, 0) in line((0, 0), (3, 4)).
	NumberTuplePayload
)

// VariablePayload is the typed value captured at one `{}` position. The
// payloads are handed to a pattern's behavior in template pre-order,
// left to right; that ordering is the contract behaviors rely on.
type VariablePayload struct {
	Kind   PayloadKind
	Number float64
	Tuple  []float64
}

func numberPayload(v float64) VariablePayload {
	return VariablePayload{Kind: NumberPayload, Number: v}
}

func tuplePayload(vs []float64) VariablePayload {
	return VariablePayload{Kind: NumberTuplePayload, Tuple: vs}
}

// Float returns the captured number, or an error on a tuple capture.
func (p VariablePayload) Float() (float64, error) {
	if p.Kind != NumberPayload {
		return 0, &EvalError{Msg: "type mismatch: expected a number capture"}
	}
	return p.Number, nil
}

// Floats returns the captured tuple, or an error on a number capture.
func (p VariablePayload) Floats() ([]float64, error) {
	if p.Kind != NumberTuplePayload {
		return nil, &EvalError{Msg: "type mismatch: expected a tuple capture"}
	}
	return p.Tuple, nil
}

// MatchTemplate structurally unifies input against template. On a match
// it returns the captured payloads in template pre-order and ok=true; a
// shape or literal mismatch returns ok=false with no error. A Variable
// on the input side, or an identifier reaching a wildcard, is fatal.
func MatchTemplate(input, template Node) ([]VariablePayload, bool, error) {
	var captured []VariablePayload
	ok, err := matchNodes(input, template, &captured)
	if err != nil || !ok {
		return nil, false, err
	}
	return captured, true, nil
}

func matchNodes(in, tmpl Node, out *[]VariablePayload) (bool, error) {
	if _, bad := in.(Variable); bad {
		return false, &MatchError{Kind: VarOnLeftExpr, Msg: "wildcard found in command input"}
	}

	switch t := tmpl.(type) {
	case Variable:
		switch x := in.(type) {
		case Number:
			*out = append(*out, numberPayload(x.Value))
			return true, nil
		case Expression:
			vs := make([]float64, 0, len(x.Nodes))
			for _, n := range x.Nodes {
				num, ok := n.(Number)
				if !ok {
					return false, nil
				}
				vs = append(vs, num.Value)
			}
			*out = append(*out, tuplePayload(vs))
			return true, nil
		case Identifier:
			return false, &MatchError{
				Kind: IdentCaptureUnsupported,
				Msg:  fmt.Sprintf("cannot bind identifier %q to a wildcard", x.Name),
			}
		default:
			return false, nil
		}

	case Number:
		x, ok := in.(Number)
		return ok && floatEq(x.Value, t.Value), nil

	case Identifier:
		x, ok := in.(Identifier)
		return ok && x.Name == t.Name, nil

	case Expression:
		x, ok := in.(Expression)
		if !ok || len(x.Nodes) != len(t.Nodes) {
			return false, nil
		}
		for i := range t.Nodes {
			ok, err := matchNodes(x.Nodes[i], t.Nodes[i], out)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case Function:
		x, ok := in.(Function)
		if !ok || x.Name != t.Name || len(x.Args) != len(t.Args) {
			return false, nil
		}
		for i := range t.Args {
			ok, err := matchNodes(x.Args[i], t.Args[i], out)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}

	return false, nil
}
