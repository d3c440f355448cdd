package fixed

import "testing"

func TestFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want int16
	}{
		{0, 0},
		{1, 8},
		{-1, -8},
		{120, 960},
		{-120, -960},
	}
	for _, tt := range tests {
		if got := FromInt(tt.in); got.Raw() != tt.want {
			t.Errorf("FromInt(%d) raw = %d, want %d", tt.in, got.Raw(), tt.want)
		}
	}
}

func TestFromFloatTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0.95, 7},   // 7.6 truncates to 7 eighths = 0.875
		{-0.95, -7}, // symmetric toward zero
		{0.3, 2},    // 2.4 -> 2 eighths = 0.25
		{0.5, 4},
		{1.0, 8},
		{0.12, 0}, // below resolution
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); got.Raw() != tt.want {
			t.Errorf("FromFloat(%v) raw = %d, want %d", tt.in, got.Raw(), tt.want)
		}
	}
}

func TestFromParts(t *testing.T) {
	if got := FromParts(2, 3); got.Raw() != 19 {
		t.Errorf("FromParts(2, 3) raw = %d, want 19", got.Raw())
	}
	if got := FromParts(-2, 4); got.Raw() != -12 {
		t.Errorf("FromParts(-2, 4) raw = %d, want -12", got.Raw())
	}
}

func TestEpsilon(t *testing.T) {
	if Epsilon.Float64() != 0.125 {
		t.Errorf("Epsilon = %v, want 0.125", Epsilon.Float64())
	}
}

func TestMulFloors(t *testing.T) {
	tests := []struct {
		name string
		a, b int16
		want int16
	}{
		{"one times friction", 8, 7, 7},            // 1.0 * 0.875 = 0.875 exact
		{"exact product", 16, 16, 32},              // 2.0 * 2.0 = 4.0
		{"positive floors down", 25, 3, 9},         // 75>>3 = 9 (9.375 floored)
		{"negative floors down", -25, 3, -10},      // -75>>3 = -10 (-9.375 floored)
		{"both negative", -25, -3, 9},              // 75>>3 = 9
		{"restitution scale", -24, 2, -6},          // -3.0 * 0.25 = -0.75 exact
		{"zero annihilates", 0, 123, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRaw(tt.a).Mul(FromRaw(tt.b))
			if got.Raw() != tt.want {
				t.Errorf("Mul(%d, %d) raw = %d, want %d", tt.a, tt.b, got.Raw(), tt.want)
			}
		})
	}
}

func TestDivTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name string
		a, b int16
		want int16
	}{
		{"exact", 16, 8, 16},                // 2.0 / 1.0 = 2.0
		{"positive truncates", 25, 16, 12},  // 200/16 = 12.5 -> 12
		{"negative truncates", -25, 16, -12},
		{"unit mass", 4, 8, 4}, // force / mass=1 is exact
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRaw(tt.a).Div(FromRaw(tt.b))
			if got.Raw() != tt.want {
				t.Errorf("Div(%d, %d) raw = %d, want %d", tt.a, tt.b, got.Raw(), tt.want)
			}
		})
	}
}

func TestOverflowWraps(t *testing.T) {
	// 3000.0 * 3000.0: 32-bit product 576000000, >>3 = 72000000,
	// 72000000 mod 2^16 = 41472, which reads back as -24064.
	got := FromInt(3000).Mul(FromInt(3000))
	if got.Raw() != -24064 {
		t.Errorf("overflowing Mul raw = %d, want -24064", got.Raw())
	}
	// Same inputs always produce the same wrapped result.
	if again := FromInt(3000).Mul(FromInt(3000)); again != got {
		t.Errorf("overflow not deterministic: %d vs %d", again.Raw(), got.Raw())
	}
}

func TestNegationExact(t *testing.T) {
	for _, raw := range []int16{0, 1, -1, 7, -24, 960} {
		n := FromRaw(raw)
		if -(-n) != n {
			t.Errorf("double negation of raw %d not exact", raw)
		}
	}
}

func TestIntFloors(t *testing.T) {
	tests := []struct {
		raw  int16
		want int
	}{
		{9, 1},
		{8, 1},
		{7, 0},
		{-1, -1},
		{-8, -1},
		{-9, -2},
	}
	for _, tt := range tests {
		if got := FromRaw(tt.raw).Int(); got != tt.want {
			t.Errorf("Int() of raw %d = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if FromRaw(-24).Abs().Raw() != 24 {
		t.Error("Abs(-3.0) != 3.0")
	}
	if FromRaw(24).Abs().Raw() != 24 {
		t.Error("Abs(3.0) != 3.0")
	}
}

func TestSignedUnsignedReinterpret(t *testing.T) {
	if Unsigned(FromRaw(-1)) != NumberU(65535) {
		t.Errorf("Unsigned(-epsilon) = %d, want 65535", Unsigned(FromRaw(-1)))
	}
	if Signed(NumberU(200)).Raw() != 200 {
		t.Errorf("Signed round trip failed")
	}
	n := FromRaw(12345)
	if Signed(Unsigned(n)) != n {
		t.Error("reinterpret round trip not identity")
	}
}
