package normalization

import "testing"

type color string

const (
	red  color = "red"
	blue color = "blue"
)

func newColorNormalizer() *Normalizer[color] {
	return NewNormalizer(map[string]color{"red": red, "blue": blue}, red)
}

func TestNormalizeFallsBackToDefault(t *testing.T) {
	n := newColorNormalizer()
	cases := []struct {
		in   string
		want color
	}{
		{"red", red},
		{"  Blue ", blue},
		{"GREEN", red},
		{"", red},
	}
	for _, c := range cases {
		if got := n.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeWithError(t *testing.T) {
	n := newColorNormalizer()
	if _, err := n.NormalizeWithError("blue"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := n.NormalizeWithError("green"); err == nil {
		t.Fatal("expected error for unknown value")
	}
}

func TestValidKeysSorted(t *testing.T) {
	n := newColorNormalizer()
	keys := n.ValidKeys()
	if len(keys) != 2 || keys[0] != "blue" || keys[1] != "red" {
		t.Fatalf("ValidKeys() = %v, want [blue red]", keys)
	}
	if !n.IsValid(" RED ") || n.IsValid("green") {
		t.Fatal("IsValid mismatch")
	}
}
