package leopard16

import "testing"

func TestValidateShapeAccepts(t *testing.T) {
	cases := []struct{ k, r int }{
		// 61440 + ceilPow2(4096) == 65536: the HighRate asymmetric boundary
		// where a small parityShards count (hence small m) allows a much
		// larger dataShards count. {4096, 61440} is its LowRate mirror:
		// m anchors on dataShards instead, so ceilPow2(4096) + 61440 ==
		// 65536 fits exactly too, per spec.md §6's m=12 table row.
		{1, 1}, {3, 5}, {2, 2}, {256, 256}, {32768, 32768}, {61440, 4096}, {4096, 61440},
	}
	for _, c := range cases {
		if _, err := validateShape(c.k, c.r); err != nil {
			t.Fatalf("validateShape(%d,%d) = %v, want nil", c.k, c.r, err)
		}
	}
}

func TestValidateShapeRejects(t *testing.T) {
	cases := []struct{ k, r int }{
		{0, 1}, {1, 0}, {-1, 5}, {65535, 65535}, {65536, 1},
	}
	for _, c := range cases {
		if _, err := validateShape(c.k, c.r); err == nil {
			t.Fatalf("validateShape(%d,%d) = nil, want error", c.k, c.r)
		}
	}
}

func TestShapeRateClassification(t *testing.T) {
	s, err := validateShape(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.rate() != highRate {
		t.Fatalf("shape(10,4) classified %v, want highRate", s.rate())
	}

	s, err = validateShape(4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.rate() != lowRate {
		t.Fatalf("shape(4,10) classified %v, want lowRate", s.rate())
	}
}
