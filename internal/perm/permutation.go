// Package perm finds the pth lexicographic permutation of a sequence without
// enumerating the permutations that come before it.
//
// The permutations of a sequence of length n, listed in lexicographic order,
// fall into n contiguous blocks of (n-1)! permutations each. Block k holds the
// permutations that start with the kth element of the sequence, so the first
// element of the pth permutation is found by dividing the zero-based rank by
// (n-1)!. Removing that element and repeating on the remainder yields the rest.
//
// The order of the input sequence is the ordering basis: no sort is performed,
// so Permutation(1, s) is always s itself.
package perm

import (
	"errors"
	"fmt"
)

// MaxLength is the longest sequence whose permutation count fits in a uint64.
// 20! = 2432902008176640000; 21! overflows.
const MaxLength = 20

// ErrInvalidArgument is returned for inputs outside the domain of the algorithm.
var ErrInvalidArgument = errors.New("invalid argument")

// Factorial returns n!. Results for n > MaxLength wrap around.
func Factorial(n uint64) uint64 {
	f := uint64(1)
	for i := uint64(2); i <= n; i++ {
		f *= i
	}
	return f
}

// NumberOfPermutations returns the number of orderings of the sequence.
func NumberOfPermutations(s Sequence) uint64 {
	return Factorial(uint64(s.Len()))
}

// FirstElement returns the first element of the pth (1-based) permutation of s.
// Indices past len(s)! wrap around.
func FirstElement(p uint64, s Sequence) (uint64, error) {
	if err := checkArgs(p, s); err != nil {
		return 0, err
	}
	return s[blockIndex(p, uint64(len(s)))], nil
}

// blockIndex is the position in a sequence of length n of the first element of
// permutation p: ((p-1) mod n!) / (n-1)!.
func blockIndex(p, n uint64) uint64 {
	return (p - 1) % Factorial(n) / Factorial(n-1)
}

// Permutation returns the pth (1-based) lexicographic permutation of s.
//
// Indices are reduced modulo the factorial of the remaining length at every
// step, so Permutation(p, s) == Permutation(p+len(s)!, s). The elements of s
// must be distinct; this is not checked here (see Sequence.Validate).
// The input is never modified.
func Permutation(p uint64, s Sequence) (Sequence, error) {
	if err := checkArgs(p, s); err != nil {
		return nil, err
	}

	remaining := s.Clone()
	out := make(Sequence, 0, len(s))
	for len(remaining) > 1 {
		e := remaining[blockIndex(p, uint64(len(remaining)))]
		out = append(out, e)
		remaining = removeFirst(remaining, e)
	}
	return append(out, remaining...), nil
}

// MustPermutation is like Permutation but panics on error.
func MustPermutation(p uint64, s Sequence) Sequence {
	out, err := Permutation(p, s)
	if err != nil {
		panic(err)
	}
	return out
}

func checkArgs(p uint64, s Sequence) error {
	if len(s) == 0 {
		return fmt.Errorf("sequence is empty: %w", ErrInvalidArgument)
	}
	if len(s) > MaxLength {
		return fmt.Errorf("sequence length %d exceeds maximum %d: %w", len(s), MaxLength, ErrInvalidArgument)
	}
	if p == 0 {
		return fmt.Errorf("permutation index must be 1 or greater: %w", ErrInvalidArgument)
	}
	return nil
}

// removeFirst removes the first occurrence of e from s in place, keeping the
// order of the other elements. s is returned unchanged if e is absent.
func removeFirst(s Sequence, e uint64) Sequence {
	for i, x := range s {
		if x == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
