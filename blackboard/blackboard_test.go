package blackboard_test

import (
	"testing"

	"github.com/471VE/ai-roguelike/blackboard"
)

func TestRegisterGetSetRoundTrip(t *testing.T) {
	b := blackboard.New()
	key := blackboard.Register[int](b, "counter")

	if got := blackboard.Get(b, key); got != 0 {
		t.Errorf("zero value = %d, want 0", got)
	}

	blackboard.Set(b, key, 7)
	if got := blackboard.Get(b, key); got != 7 {
		t.Errorf("Get after Set = %d, want 7", got)
	}
}

func TestRegisterIsIdempotentForSameType(t *testing.T) {
	b := blackboard.New()
	key := blackboard.Register[string](b, "name")
	blackboard.Set(b, key, "crafter")
	key2 := blackboard.Register[string](b, "name")

	if got := blackboard.Get(b, key2); got != "crafter" {
		t.Errorf("re-registering reset the value: got %q", got)
	}
}

func TestGetUnregisteredPanics(t *testing.T) {
	registered := blackboard.New()
	key := blackboard.Register[int](registered, "missing")

	unregistered := blackboard.New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a slot not registered on this board")
		}
	}()
	blackboard.Get(unregistered, key)
}

func TestRegisterWrongTypePanics(t *testing.T) {
	b := blackboard.New()
	blackboard.Register[int](b, "n")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic re-registering a slot under a different type")
		}
	}()
	blackboard.Register[string](b, "n")
}

func TestHas(t *testing.T) {
	b := blackboard.New()
	if b.Has("x") {
		t.Fatal("Has should be false before Register")
	}
	blackboard.Register[bool](b, "x")
	if !b.Has("x") {
		t.Fatal("Has should be true after Register")
	}
}
