package Hashers

import "testing"

type point struct {
	x, y int
}

func TestString_Stable(t *testing.T) {
	if String("chain") != String("chain") {
		t.Error("String not deterministic")
	}
	if String("chain") == String("chaim") {
		t.Error("String collided on near keys")
	}
	if String("abc") != Bytes([]byte("abc")) {
		t.Error("String and Bytes disagree")
	}
	if Bytes(nil) != Bytes([]byte{}) {
		t.Error("nil and empty slices hash differently")
	}
}

func TestInteger_Spread(t *testing.T) {
	const capacity = 11
	var hit [capacity]int
	for i := 0; i < capacity*64; i++ {
		hit[Integer(i)%capacity]++
	}
	for i, n := range hit {
		if n == 0 {
			t.Errorf("bucket %d never hit", i)
		}
	}
	if Integer(int32(-1)) != Integer(int32(-1)) {
		t.Error("Integer not deterministic")
	}
}

func TestFor_All(t *testing.T) {
	if h := For[string](); h("k") != String("k") {
		t.Error("For[string] isn't String")
	}
	if h := For[int](); h(42) != Integer(42) {
		t.Error("For[int] isn't Integer")
	}
	if h := For[uint8](); h(7) != Integer(uint8(7)) {
		t.Error("For[uint8] isn't Integer")
	}
	h := For[point]()
	if h(point{1, 2}) != h(point{1, 2}) {
		t.Error("fallback hash not deterministic")
	}
	var p *point
	if hp := For[*point](); hp(p) != hp(nil) {
		t.Error("nil pointer keys hash differently")
	}
}
