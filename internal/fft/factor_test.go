package fft

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func product(factors []int) int {
	p := 1
	for _, f := range factors {
		p *= f
	}

	return p
}

func TestFactorizeExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		path Path
		want []int
	}{
		{1, PathGeneric, []int{}},
		{1, PathPow2, []int{}},
		{2, PathGeneric, []int{2}},
		{2, PathPow2, []int{2}},
		{4, PathPow2, []int{4}},
		{8, PathGeneric, []int{2, 4}},
		{8, PathPow2, []int{2, 4}},
		{12, PathGeneric, []int{3, 4}},
		{30, PathGeneric, []int{5, 3, 2}},
		{32, PathPow2, []int{2, 4, 4}},
		{60, PathGeneric, []int{5, 3, 4}},
		{1024, PathPow2, []int{4, 4, 4, 4, 4}},
	}

	for _, tt := range tests {
		got, err := Factorize(tt.n, tt.path)
		if err != nil {
			t.Fatalf("Factorize(%d, %s): %v", tt.n, tt.path, err)
		}

		if !slices.Equal(got, tt.want) {
			t.Errorf("Factorize(%d, %s) = %v, want %v", tt.n, tt.path, got, tt.want)
		}
	}
}

func TestFactorizeTotality(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 1<<16; n++ {
		rest := n
		for _, r := range []int{2, 3, 5} {
			for rest%r == 0 {
				rest /= r
			}
		}

		inGeneric := n == 1 || (rest == 1 && n%2 == 0)

		factors, err := Factorize(n, PathGeneric)
		if inGeneric != (err == nil) {
			t.Fatalf("Factorize(%d, generic) err = %v, want success %v", n, err, inGeneric)
		}

		if err == nil && product(factors) != n {
			t.Fatalf("Factorize(%d, generic) = %v, product %d", n, factors, product(factors))
		}

		factors, err = Factorize(n, PathPow2)
		if IsPowerOfTwo(n) != (err == nil) {
			t.Fatalf("Factorize(%d, pow2) err = %v", n, err)
		}

		if err == nil {
			if product(factors) != n {
				t.Fatalf("Factorize(%d, pow2) = %v, product %d", n, factors, product(factors))
			}

			for i, f := range factors {
				if f != 4 && !(f == 2 && i == 0) {
					t.Fatalf("Factorize(%d, pow2) = %v: radix 2 only allowed first", n, factors)
				}
			}
		}
	}
}

func TestFactorizeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		path Path
	}{
		{0, PathGeneric},
		{-8, PathGeneric},
		{3, PathGeneric},
		{15, PathGeneric},
		{14, PathGeneric},
		{44, PathGeneric},
		{12, PathPow2},
		{MaxLength * 2, PathPow2},
		{MaxLength * 2, PathGeneric},
		{16, Path(9)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s", tt.n, tt.path), func(t *testing.T) {
			t.Parallel()

			if _, err := Factorize(tt.n, tt.path); !errors.Is(err, ErrFactor) {
				t.Fatalf("err = %v, want ErrFactor", err)
			}
		})
	}
}

func TestFactorizeMaxLength(t *testing.T) {
	t.Parallel()

	factors, err := Factorize(MaxLength, PathPow2)
	if err != nil {
		t.Fatal(err)
	}

	if product(factors) != MaxLength {
		t.Fatalf("product = %d", product(factors))
	}
}

func TestStages(t *testing.T) {
	t.Parallel()

	got := Stages(60, []int{5, 3, 4})
	want := []Stage{
		{Radix: 5, M: 1, F: 12},
		{Radix: 3, M: 5, F: 4},
		{Radix: 4, M: 15, F: 1},
	}

	if !slices.Equal(got, want) {
		t.Fatalf("Stages = %+v, want %+v", got, want)
	}
}
