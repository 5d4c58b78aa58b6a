package utility_test

import (
	"slices"
	"testing"

	"variantchess/utility"
)

func Test_set(test *testing.T) {
	test.Run("test add has remove", func(test *testing.T) {
		set := utility.NewSet[int]()
		set.Add(3)
		set.Add(1)
		set.Add(3)

		if set.Len() != 2 {
			test.Fatalf("expected 2 keys, received %d", set.Len())
		}
		if !set.Has(1) || !set.Has(3) || set.Has(2) {
			test.Fatalf("unexpected contents %s", set.String())
		}

		set.Remove(3)
		if set.Has(3) || set.Len() != 1 {
			test.Fatalf("remove failed: %s", set.String())
		}
	})

	test.Run("test zero value", func(test *testing.T) {
		var set utility.Set[string]
		if set.Has("a") || set.Len() != 0 {
			test.Fatal("zero set is not empty")
		}
		set.Add("a")
		if !set.Has("a") {
			test.Fatal("zero set did not accept a key")
		}
	})

	test.Run("test from and sorted", func(test *testing.T) {
		set := utility.NewSetFrom(5, 2, 9, 2)
		received := utility.Sorted(&set)
		if !slices.Equal([]int{2, 5, 9}, received) {
			test.Fatalf("expected [2 5 9], received %v", received)
		}
	})

	test.Run("test equal and clone", func(test *testing.T) {
		set := utility.NewSetFrom("x", "y")
		clone := set.Clone()
		if !set.Equal(&clone) {
			test.Fatal("clone is not equal")
		}

		clone.Add("z")
		if set.Equal(&clone) || set.Has("z") {
			test.Fatal("clone shares storage with the original")
		}
	})
}
