package sketchlang

import "sync"

// evalNode rewrites a node bottom-up, reducing every call bound to a
// pure pattern. Drawing calls and calls bound to no pure name are left
// in place for the drawing stage.
func (r *Registry) evalNode(n Node) (Node, error) {
	switch x := n.(type) {
	case Function:
		evaluated := make([]Node, 0, len(x.Args))
		for _, arg := range x.Args {
			e, err := r.evalNode(arg)
			if err != nil {
				return nil, err
			}
			evaluated = append(evaluated, e)
		}
		reduced := Function{Name: x.Name, Args: evaluated}
		if r.IsImpure(x.Name) || !r.IsPure(x.Name) {
			return reduced, nil
		}
		return r.evaluatePure(reduced)

	case Expression:
		evaluated := make([]Node, 0, len(x.Nodes))
		for _, c := range x.Nodes {
			e, err := r.evalNode(c)
			if err != nil {
				return nil, err
			}
			evaluated = append(evaluated, e)
		}
		return Expression{Nodes: evaluated}, nil

	default:
		return n, nil
	}
}

// EvaluateAll reduces every pure call in the tree, returning a new AST.
// The input AST is never mutated.
func (r *Registry) EvaluateAll(a *AST) (*AST, error) {
	root, err := r.evalNode(a.Root)
	if err != nil {
		return nil, err
	}
	return &AST{Root: root}, nil
}

// collectNode gathers drawables post-order. Drawing calls are terminal:
// their arguments were already reduced, so there is no recursion into a
// matched call.
func (r *Registry) collectNode(n Node, out *[]Drawable) error {
	switch x := n.(type) {
	case Function:
		d, err := r.evaluateImpure(x)
		if err != nil {
			return err
		}
		*out = append(*out, d)
		return nil
	case Expression:
		for _, c := range x.Nodes {
			if err := r.collectNode(c, out); err != nil {
				return err
			}
		}
		return nil
	default:
		// Leftover literals and identifiers draw nothing.
		return nil
	}
}

// CollectDrawables walks a pure-reduced AST and gathers its drawing
// commands in order. The first failure aborts the whole command; no
// partial list is returned.
func (r *Registry) CollectDrawables(a *AST) ([]Drawable, error) {
	var out []Drawable
	if err := r.collectNode(a.Root, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Interpreter runs commands through the one-shot pipeline:
// text → AST → pure reduction → drawables. Each stage either advances
// or returns the first error; there is no retry or partial commit.
// Matching is read-only, so a single lock is enough to share one
// interpreter between goroutines.
type Interpreter struct {
	mu  sync.Mutex
	reg *Registry
}

func NewInterpreter(reg *Registry) *Interpreter {
	return &Interpreter{reg: reg}
}

// Run executes one command to completion. A command that reduces to no
// drawing call legitimately returns an empty slice.
func (in *Interpreter) Run(cmd string) ([]Drawable, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	ast, err := NewAST(cmd)
	if err != nil {
		return nil, err
	}
	reduced, err := in.reg.EvaluateAll(ast)
	if err != nil {
		return nil, err
	}
	return in.reg.CollectDrawables(reduced)
}
