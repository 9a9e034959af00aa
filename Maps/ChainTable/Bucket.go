package ChainTable

import (
	"fmt"
	"strings"
)

type entry[K any, V any] struct {
	key K
	val V
}

// bucket is a chain of entries in insertion order.
type bucket[K any, V any] []entry[K, V]

// find returns the index of key in the chain or -1.
func (b bucket[K, V]) find(key K, eq func(K, K) bool) int {
	for i := range b {
		if eq(b[i].key, key) {
			return i
		}
	}
	return -1
}

func (b bucket[K, V]) writeTo(sb *strings.Builder) {
	sb.WriteByte('[')
	for i := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%v:%v", b[i].key, b[i].val)
	}
	sb.WriteByte(']')
}
