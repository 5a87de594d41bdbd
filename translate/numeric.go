package translate

import (
	"fmt"
	"strconv"
)

// ParseNumber converts STR into a signed integer and checks that it lies in
// [lower, upper], bounds inclusive. The token may carry an optional sign and
// is read as hexadecimal when it has a 0x/0X prefix, decimal otherwise.
// Values past the signed 64-bit range are rejected, never wrapped.
func ParseNumber(str string, lower, upper int64) (int64, error) {
	n, err := strconv.ParseInt(str, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", str, ErrOperandRange)
	}
	if n < lower || n > upper {
		return 0, fmt.Errorf("%q not in [%d, %d]: %w", str, lower, upper, ErrOperandRange)
	}
	return n, nil
}
