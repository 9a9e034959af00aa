package ChainTable

import "math/bits"

// capacities are the preferred bucket array lengths, in growth order. Never written to.
var capacities = [...]int{11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853}

// maxLoad is the average chain length that triggers growth.
const maxLoad = 3

// nextCapacity returns the capacity that follows c. Past the end of capacities it's the smallest 2^k+1 greater than c.
func nextCapacity(c int) int {
	for i, p := range capacities[:len(capacities)-1] {
		if p == c {
			return capacities[i+1]
		}
	}
	n := uint(c)
	for shift := 1; shift < bits.UintSize; shift <<= 1 {
		n |= n >> shift
	}
	return int(n + 2)
}
