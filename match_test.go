package sketchlang

import (
	"errors"
	"testing"
)

func matchStrings(t *testing.T, input, template string) ([]VariablePayload, bool, error) {
	t.Helper()
	in := mustParse(t, input)
	tmpl := mustParse(t, template)
	return MatchTemplate(in.Root, tmpl.Root)
}

func TestMatchCapturesNumbers(t *testing.T) {
	vars, ok, err := matchStrings(t, "point(3, 5)", "point({}, {})")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want match", ok, err)
	}
	if len(vars) != 2 {
		t.Fatalf("captured %d payloads, want 2", len(vars))
	}
	for i, want := range []float64{3, 5} {
		got, err := vars[i].Float()
		if err != nil {
			t.Fatalf("payload %d: %v", i, err)
		}
		if !floatEq(got, want) {
			t.Errorf("payload %d = %v, want %v", i, got, want)
		}
	}
}

func TestMatchNameMismatchIsNotError(t *testing.T) {
	vars, ok, err := matchStrings(t, "circle(3, 5)", "point({}, {})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || vars != nil {
		t.Fatalf("ok=%v vars=%v, want plain non-match", ok, vars)
	}
}

func TestMatchArityMismatchIsNotError(t *testing.T) {
	_, ok, err := matchStrings(t, "point(3, 5, 7)", "point({}, {})")
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want plain non-match", ok, err)
	}
}

func TestMatchWildcardInInputIsFatal(t *testing.T) {
	_, ok, err := matchStrings(t, "point({}, 5)", "point({}, {})")
	if ok {
		t.Fatal("matched, want fatal error")
	}
	var me *MatchError
	if !errors.As(err, &me) || me.Kind != VarOnLeftExpr {
		t.Fatalf("got %v, want MatchError VarOnLeftExpr", err)
	}
}

func TestMatchIdentifierCaptureIsFatal(t *testing.T) {
	_, ok, err := matchStrings(t, "point(x, 5)", "point({}, {})")
	if ok {
		t.Fatal("matched, want fatal error")
	}
	var me *MatchError
	if !errors.As(err, &me) || me.Kind != IdentCaptureUnsupported {
		t.Fatalf("got %v, want MatchError IdentCaptureUnsupported", err)
	}
}

func TestMatchTupleCapture(t *testing.T) {
	vars, ok, err := matchStrings(t, "line((0, 0), (3, 4))", "line({}, {})")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want match", ok, err)
	}
	if len(vars) != 2 {
		t.Fatalf("captured %d payloads, want 2", len(vars))
	}
	from, err := vars[0].Floats()
	if err != nil {
		t.Fatal(err)
	}
	to, err := vars[1].Floats()
	if err != nil {
		t.Fatal(err)
	}
	if len(from) != 2 || !floatEq(from[0], 0) || !floatEq(from[1], 0) {
		t.Errorf("first tuple = %v, want [0 0]", from)
	}
	if len(to) != 2 || !floatEq(to[0], 3) || !floatEq(to[1], 4) {
		t.Errorf("second tuple = %v, want [3 4]", to)
	}
}

func TestMatchTupleRejectsNonNumericSiblings(t *testing.T) {
	// A sibling group holding anything but numbers cannot become a
	// tuple capture; that is a plain non-match.
	_, ok, err := matchStrings(t, "line((x, 0), (3, 4))", "line({}, {})")
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want plain non-match", ok, err)
	}
}

func TestMatchLiteralTemplateParts(t *testing.T) {
	vars, ok, err := matchStrings(t, "point(3, 5)", "point(3, {})")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want match", ok, err)
	}
	if len(vars) != 1 {
		t.Fatalf("captured %d payloads, want 1", len(vars))
	}
	if v, _ := vars[0].Float(); !floatEq(v, 5) {
		t.Errorf("captured %v, want 5", v)
	}

	_, ok, err = matchStrings(t, "point(4, 5)", "point(3, {})")
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want literal mismatch", ok, err)
	}
}

func TestMatchCaptureOrderIsPreOrder(t *testing.T) {
	vars, ok, err := matchStrings(t, "f(1, g(2), 3)", "f({}, g({}), {})")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want match", ok, err)
	}
	want := []float64{1, 2, 3}
	if len(vars) != len(want) {
		t.Fatalf("captured %d payloads, want %d", len(vars), len(want))
	}
	for i, w := range want {
		if v, _ := vars[i].Float(); !floatEq(v, w) {
			t.Errorf("payload %d = %v, want %v", i, v, w)
		}
	}
}

func TestPayloadAccessorMismatch(t *testing.T) {
	p := numberPayload(3)
	if _, err := p.Floats(); err == nil {
		t.Error("Floats on a number payload: want error")
	}
	q := tuplePayload([]float64{1, 2})
	if _, err := q.Float(); err == nil {
		t.Error("Float on a tuple payload: want error")
	}
}
