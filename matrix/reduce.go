// SPDX-License-Identifier: MIT

package matrix

// DiagonalSum returns the sum of the main diagonal and the anti-diagonal,
// counting the center cell once when n is odd.
// Implementation:
//   - For i = 0..n-1: add m[i][i], then add m[i][n-1-i] unless i == n-1-i.
//
// Behavior highlights:
//   - The accumulation order above is fixed (main term, then anti term, per i).
//   - Returns the zero value of T for n == 0 or a nil receiver.
//
// Complexity:
//   - Time O(n), Space O(1).
func (m *Square[T]) DiagonalSum() T {
	var sum T
	if m == nil {
		return sum
	}

	n := m.n
	for i := 0; i < n; i++ {
		sum += m.data[i*n+i] // main diagonal
		if anti := n - 1 - i; anti != i {
			sum += m.data[i*n+anti] // secondary diagonal
		}
	}

	return sum
}
