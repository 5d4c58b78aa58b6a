package utility

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

type Set[T comparable] struct {
	set map[T]struct{}
}

func NewSet[T comparable]() Set[T] {
	set := make(map[T]struct{})
	return Set[T]{set}
}

func NewSetFrom[T comparable](keys ...T) Set[T] {
	set := make(map[T]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return Set[T]{set}
}

func (set *Set[T]) Add(key T) {
	if set.set == nil {
		set.set = make(map[T]struct{})
	}
	set.set[key] = struct{}{}
}
func (set *Set[T]) Has(key T) bool {
	_, found := set.set[key]
	return found
}
func (set *Set[T]) Remove(key T) {
	delete(set.set, key)
}
func (set *Set[T]) Iter() iter.Seq[T] {
	return maps.Keys(set.set)
}
func (set *Set[T]) Len() int {
	return len(set.set)
}

// Equal reports whether both sets hold the same keys.
func (set *Set[T]) Equal(other *Set[T]) bool {
	if set.Len() != other.Len() {
		return false
	}
	for key := range set.set {
		if !other.Has(key) {
			return false
		}
	}
	return true
}

func (set *Set[T]) Clone() Set[T] {
	return Set[T]{maps.Clone(set.set)}
}

func (set *Set[T]) String() string {
	return fmt.Sprintf("%+v", set.set)
}

// Sorted returns the keys of an ordered set in ascending order.
func Sorted[T cmp.Ordered](set *Set[T]) []T {
	return slices.Sorted(set.Iter())
}
