package simd

import "testing"

func TestAddBroadcastInt32MatchesScalarPath(t *testing.T) {
	vec := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	scalar := make([]int32, len(vec))
	copy(scalar, vec)

	AddBroadcastInt32(vec, 100)
	addBroadcastInt32Scalar(scalar, 100)

	for i := range vec {
		if vec[i] != scalar[i] {
			t.Errorf("lane %d = %d, want %d (scalar path)", i, vec[i], scalar[i])
		}
	}
}

func TestAddBroadcastInt32FallsBackOnOddLength(t *testing.T) {
	vec := []int32{1, 2, 3}
	AddBroadcastInt32(vec, 5)
	want := []int32{6, 7, 8}
	for i := range vec {
		if vec[i] != want[i] {
			t.Errorf("lane %d = %d, want %d", i, vec[i], want[i])
		}
	}
}

func TestPopcountRow16(t *testing.T) {
	cases := []struct {
		word uint16
		want int
	}{
		{0x0000, 0},
		{0xFFFF, 16},
		{0x8001, 2},
		{0x00F0, 4},
	}
	for _, c := range cases {
		if got := PopcountRow16(c.word); got != c.want {
			t.Errorf("PopcountRow16(%#04x) = %d, want %d", c.word, got, c.want)
		}
	}
}
