// SPDX-License-Identifier: EPL-2.0

package utils

// RoundUpPow2 returns the smallest power of two >= n.
// n must be positive; RoundUpPow2(1) == 1.
func RoundUpPow2(n int) int {
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
