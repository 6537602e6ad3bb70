package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Errorf("Coalesce(0, 0, 3, 4) = %d, want 3", got)
	}
	if got := Coalesce("", "a"); got != "a" {
		t.Errorf(`Coalesce("", "a") = %q, want "a"`, got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce(0, 0) = %d, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %d, want 3", got)
	}
	if got := Clamp(-1.5, 0.0, 3.0); got != 0 {
		t.Errorf("Clamp(-1.5, 0, 3) = %v, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2, 0, 3) = %d, want 2", got)
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		i, delta, n, want int
	}{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{1, 7, 3, 2},
		{1, -7, 3, 0},
	}
	for _, c := range cases {
		if got := WrapIndex(c.i, c.delta, c.n); got != c.want {
			t.Errorf("WrapIndex(%d, %d, %d) = %d, want %d", c.i, c.delta, c.n, got, c.want)
		}
	}
}

func TestWrapIndexPanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WrapIndex with n=0 did not panic")
		}
	}()
	WrapIndex(0, 1, 0)
}
