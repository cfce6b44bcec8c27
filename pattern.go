package sketchlang

import "fmt"

// PureFunc rewrites a matched call into a replacement node.
type PureFunc func(args []VariablePayload) (Node, error)

// ImpureFunc produces one drawable from a matched drawing call. A
// capture of the wrong payload kind is an error, not a silent zero.
type ImpureFunc func(args []VariablePayload) (Drawable, error)

type purePattern struct {
	template *AST
	fn       PureFunc
}

type impurePattern struct {
	template *AST
	fn       ImpureFunc
}

// Registry holds the pure and impure pattern tables. It is built once
// at startup and read-only afterwards. Lookup is a linear scan in
// registration order; the first structural match wins and later
// templates that could also match are never tried.
type Registry struct {
	pure        []purePattern
	impure      []impurePattern
	pureNames   map[string]bool
	impureNames map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		pureNames:   map[string]bool{},
		impureNames: map[string]bool{},
	}
}

func compileTemplate(pattern string) (*AST, string, error) {
	ast, err := NewAST(pattern)
	if err != nil {
		return nil, "", fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}
	fn, ok := ast.Root.(Function)
	if !ok {
		return nil, "", fmt.Errorf("pattern %q does not compile to a function call", pattern)
	}
	return ast, fn.Name, nil
}

// RegisterPure compiles pattern and adds it to the pure table. A name
// already registered as a drawing function is rejected: the drawing
// lookup shadows pure dispatch, so a shared name could never reach its
// pure behavior.
func (r *Registry) RegisterPure(pattern string, fn PureFunc) error {
	ast, name, err := compileTemplate(pattern)
	if err != nil {
		return err
	}
	if r.impureNames[name] {
		return fmt.Errorf("pattern name %q is already registered as a drawing function", name)
	}
	r.pureNames[name] = true
	r.pure = append(r.pure, purePattern{template: ast, fn: fn})
	return nil
}

// RegisterImpure compiles pattern and adds it to the drawing table.
func (r *Registry) RegisterImpure(pattern string, fn ImpureFunc) error {
	ast, name, err := compileTemplate(pattern)
	if err != nil {
		return err
	}
	if r.pureNames[name] {
		return fmt.Errorf("pattern name %q is already registered as a pure function", name)
	}
	r.impureNames[name] = true
	r.impure = append(r.impure, impurePattern{template: ast, fn: fn})
	return nil
}

// IsPure reports whether name has at least one pure pattern.
func (r *Registry) IsPure(name string) bool { return r.pureNames[name] }

// IsImpure reports whether name has at least one drawing pattern.
func (r *Registry) IsImpure(name string) bool { return r.impureNames[name] }

// evaluatePure dispatches a call node against the pure table. node is
// known to be a Function whose name is pure-registered.
func (r *Registry) evaluatePure(node Node) (Node, error) {
	for _, p := range r.pure {
		vars, ok, err := MatchTemplate(node, p.template.Root)
		if err != nil {
			return nil, &EvalError{Msg: err.Error()}
		}
		if ok {
			return p.fn(vars)
		}
	}
	return nil, &EvalError{Msg: "function does not match any known patterns: " + FormatNode(node)}
}

// evaluateImpure dispatches a drawing call against the impure table.
func (r *Registry) evaluateImpure(node Node) (Drawable, error) {
	for _, p := range r.impure {
		vars, ok, err := MatchTemplate(node, p.template.Root)
		if err != nil {
			return nil, &PatternMatchError{Kind: ASTMatchError, Detail: err.Error()}
		}
		if ok {
			d, err := p.fn(vars)
			if err != nil {
				return nil, &PatternMatchError{Kind: ASTMatchError, Detail: err.Error()}
			}
			return d, nil
		}
	}
	return nil, &PatternMatchError{Kind: NoMatch, Detail: FormatNode(node)}
}

// DefaultRegistry returns a registry preloaded with the builtin
// arithmetic and drawing commands. A malformed builtin template is a
// programming error and aborts startup.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	pure := func(pattern string, fn PureFunc) {
		if err := r.RegisterPure(pattern, fn); err != nil {
			panic(err)
		}
	}
	impure := func(pattern string, fn ImpureFunc) {
		if err := r.RegisterImpure(pattern, fn); err != nil {
			panic(err)
		}
	}

	binary := func(op func(a, b float64) (float64, error)) PureFunc {
		return func(v []VariablePayload) (Node, error) {
			a, err := v[0].Float()
			if err != nil {
				return nil, err
			}
			b, err := v[1].Float()
			if err != nil {
				return nil, err
			}
			res, err := op(a, b)
			if err != nil {
				return nil, err
			}
			return Number{Value: res}, nil
		}
	}

	add := binary(func(a, b float64) (float64, error) { return a + b, nil })
	sub := binary(func(a, b float64) (float64, error) { return a - b, nil })
	mul := binary(func(a, b float64) (float64, error) { return a * b, nil })
	div := binary(func(a, b float64) (float64, error) {
		if isZero(b) {
			return 0, &EvalError{Msg: "cannot divide by zero"}
		}
		return a / b, nil
	})

	// Flat and curried forms both work: add(1, 2) and add(1)(2).
	pure("add({}, {})", add)
	pure("add({})({})", add)
	pure("sub({}, {})", sub)
	pure("sub({})({})", sub)
	pure("mul({}, {})", mul)
	pure("mul({})({})", mul)
	pure("div({}, {})", div)
	pure("div({})({})", div)

	pure("neg({})", func(v []VariablePayload) (Node, error) {
		a, err := v[0].Float()
		if err != nil {
			return nil, err
		}
		return Number{Value: -a}, nil
	})

	pure("if({})({})({})", func(v []VariablePayload) (Node, error) {
		cond, err := v[0].Float()
		if err != nil {
			return nil, err
		}
		then, err := v[1].Float()
		if err != nil {
			return nil, err
		}
		els, err := v[2].Float()
		if err != nil {
			return nil, err
		}
		if isZero(cond) {
			return Number{Value: els}, nil
		}
		return Number{Value: then}, nil
	})

	impure("point({}, {})", func(v []VariablePayload) (Drawable, error) {
		fs, err := payloadFloats(v)
		if err != nil {
			return nil, err
		}
		return NewPoint(NewCoordinates(fs[0], fs[1])), nil
	})
	impure("line({}, {}, {}, {})", func(v []VariablePayload) (Drawable, error) {
		fs, err := payloadFloats(v)
		if err != nil {
			return nil, err
		}
		return NewLine(NewCoordinates(fs[0], fs[1]), NewCoordinates(fs[2], fs[3])), nil
	})
	impure("line({}, {})", func(v []VariablePayload) (Drawable, error) {
		return NewLine(payloadCoordinates(v[0]), payloadCoordinates(v[1])), nil
	})
	impure("circle({}, {}, {})", func(v []VariablePayload) (Drawable, error) {
		fs, err := payloadFloats(v)
		if err != nil {
			return nil, err
		}
		return NewCircle(NewCoordinates(fs[0], fs[1]), fs[2]), nil
	})

	return r
}

// payloadFloats unpacks every capture as a single number; a tuple
// capture in any position is an error.
func payloadFloats(v []VariablePayload) ([]float64, error) {
	out := make([]float64, len(v))
	for i, p := range v {
		f, err := p.Float()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// payloadCoordinates lifts a capture into a coordinate point: tuples
// keep their dimension, a lone number becomes one-dimensional.
func payloadCoordinates(p VariablePayload) Coordinates {
	if p.Kind == NumberTuplePayload {
		return NewCoordinates(p.Tuple...)
	}
	return NewCoordinates(p.Number)
}
