package tuple

import "testing"

func TestPair(t *testing.T) {
	p := PairOf(int32(3), "x")
	a, b := p.Unpack()
	if a != 3 || b != "x" {
		t.Errorf("Unpack = %v,%v, want 3,x", a, b)
	}

	// comparable elements make the aggregate comparable with ==
	if p != PairOf(int32(3), "x") {
		t.Error("identical pairs should compare equal")
	}
	if p == PairOf(int32(4), "x") {
		t.Error("different pairs should not compare equal")
	}
}

func TestTriple(t *testing.T) {
	tr := TripleOf(1, 2.5, "z")
	a, b, c := tr.Unpack()
	if a != 1 || b != 2.5 || c != "z" {
		t.Errorf("Unpack = %v,%v,%v, want 1,2.5,z", a, b, c)
	}
	if tr != TripleOf(1, 2.5, "z") {
		t.Error("identical triples should compare equal")
	}
}
