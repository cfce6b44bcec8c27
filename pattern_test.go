package sketchlang

import (
	"strings"
	"testing"
)

func TestRegisterRejectsNonFunctionTemplate(t *testing.T) {
	reg := NewRegistry()
	for _, pattern := range []string{"5", "{}", "x", "1, 2"} {
		err := reg.RegisterPure(pattern, func([]VariablePayload) (Node, error) {
			return Number{}, nil
		})
		if err == nil {
			t.Errorf("RegisterPure(%q): want error", pattern)
		}
	}
}

func TestRegisterRejectsMalformedTemplate(t *testing.T) {
	reg := NewRegistry()
	err := reg.RegisterImpure("point({}, {}", func([]VariablePayload) (Drawable, error) {
		return NewPoint(NewCoordinates(0, 0)), nil
	})
	if err == nil {
		t.Fatal("want compile error for unclosed template")
	}
}

func TestRegisterRejectsCrossTableCollision(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterPure("twice({})", func(v []VariablePayload) (Node, error) {
		return Number{Value: 2 * v[0].Number}, nil
	}); err != nil {
		t.Fatal(err)
	}
	err := reg.RegisterImpure("twice({}, {})", func(v []VariablePayload) (Drawable, error) {
		return NewPoint(NewCoordinates(v[0].Number, v[1].Number)), nil
	})
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Fatalf("got %v, want collision error naming the pattern", err)
	}

	// And the other direction.
	reg2 := NewRegistry()
	if err := reg2.RegisterImpure("dot({}, {})", func(v []VariablePayload) (Drawable, error) {
		return NewPoint(NewCoordinates(v[0].Number, v[1].Number)), nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg2.RegisterPure("dot({})", func(v []VariablePayload) (Node, error) {
		return Number{Value: v[0].Number}, nil
	}); err == nil {
		t.Fatal("want collision error registering pure over a drawing name")
	}
}

func TestSameNameMultipleShapes(t *testing.T) {
	// One name may carry several templates within one table; dispatch
	// tries them in registration order.
	reg := DefaultRegistry()
	compareTree(t, reg, "add(1, 2)", "3")
	compareTree(t, reg, "add(1)(2)", "3")
}

func TestFirstMatchWins(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterPure("pick({})", func([]VariablePayload) (Node, error) {
		return Number{Value: 1}, nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterPure("pick({})", func([]VariablePayload) (Node, error) {
		return Number{Value: 2}, nil
	}); err != nil {
		t.Fatal(err)
	}
	compareTree(t, reg, "pick(0)", "1")
}

func TestDefaultRegistryNames(t *testing.T) {
	reg := DefaultRegistry()
	for _, name := range []string{"add", "sub", "mul", "div", "neg", "if"} {
		if !reg.IsPure(name) {
			t.Errorf("IsPure(%q) = false", name)
		}
		if reg.IsImpure(name) {
			t.Errorf("IsImpure(%q) = true", name)
		}
	}
	for _, name := range []string{"point", "line", "circle"} {
		if !reg.IsImpure(name) {
			t.Errorf("IsImpure(%q) = false", name)
		}
		if reg.IsPure(name) {
			t.Errorf("IsPure(%q) = true", name)
		}
	}
}

func TestPayloadCoordinates(t *testing.T) {
	c := payloadCoordinates(tuplePayload([]float64{3, 4}))
	if c.Dims() != 2 {
		t.Errorf("tuple payload dims = %d, want 2", c.Dims())
	}
	single := payloadCoordinates(numberPayload(7))
	if single.Dims() != 1 {
		t.Errorf("number payload dims = %d, want 1", single.Dims())
	}
	if v, _ := single.Get(0); !floatEq(v, 7) {
		t.Errorf("component = %v, want 7", v)
	}
}
