package domain

import "fmt"

// FinancialYear renders calendar year y as the fiscal label used in
// workforce reporting, e.g. 2025 -> "2025/26". The second part is the
// following year modulo 100, zero-padded.
func FinancialYear(y int) string {
	return fmt.Sprintf("%d/%02d", y, (y+1)%100)
}
