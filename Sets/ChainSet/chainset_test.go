package ChainSet

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChainSet_All(t *testing.T) {
	S := New[int](nil)
	for i := 0; i < 100; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 100; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 100; i < 200; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 100 {
		t.Errorf("wrong size %d", S.Size())
	}
}

func TestChainSet_Union(t *testing.T) {
	A, B := New[string](nil), New[string](nil)
	for _, e := range []string{"a", "b", "c"} {
		A.Put(e)
	}
	for _, e := range []string{"c", "d"} {
		B.Put(e)
	}
	if n := A.Union(B); n != 1 {
		t.Errorf("union added %d", n)
	}
	got := A.Elements()
	sort.Strings(got)
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}
}

func TestChainSet_Func(t *testing.T) {
	S := NewFunc[[]byte](func(b []byte) uint { return uint(len(b)) }, func(a, b []byte) bool { return string(a) == string(b) })
	S.Put([]byte("key"))
	if !S.Has([]byte("key")) || S.Has([]byte("kez")) {
		t.Error("byte slices compared by identity")
	}
	n := 0
	S.Range(func([]byte) bool {
		n++
		return true
	})
	if n != 1 {
		t.Errorf("ranged over %d", n)
	}
}
