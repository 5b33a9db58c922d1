package converter

import (
	"fmt"
	"math"
)

// Int32 narrows n for an INTEGER column.
func Int32(n int, field string) (int32, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("%s out of int32 range: %d", field, n)
	}
	return int32(n), nil
}
