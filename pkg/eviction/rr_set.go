package eviction

import (
	"math/rand"
)

type rrSet[T comparable] struct {
	elements []T
}

// NewRRSet creates a new cache replacement set that implements the
// Random Replacement (RR) policy.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#Random_replacement_(RR)
func NewRRSet[T comparable]() Set[T] {
	return &rrSet[T]{}
}

func (s *rrSet[T]) Insert(value T) {
	// Insert element into a random location in the list, opening up
	// space by moving an existing element to the end of the list.
	index := rand.Intn(len(s.elements) + 1)
	if index == len(s.elements) {
		s.elements = append(s.elements, value)
	} else {
		s.elements = append(s.elements, s.elements[index])
		s.elements[index] = value
	}
}

func (s *rrSet[T]) Touch(value T) {
}

func (s *rrSet[T]) Erase(value T) {
	for i, element := range s.elements {
		if element == value {
			s.elements[i] = s.elements[len(s.elements)-1]
			s.elements = s.elements[:len(s.elements)-1]
			return
		}
	}
	panic("Attempted to erase value not present in cache replacement set")
}

func (s *rrSet[T]) Peek() T {
	return s.elements[len(s.elements)-1]
}

func (s *rrSet[T]) Remove() {
	s.elements = s.elements[:len(s.elements)-1]
}
