package intake

import (
	"database/sql"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberSeparators = regexp.MustCompile(`[, ]`)

// ToNumber coerces a human-entered amount like "1,000,000" into a nullable
// float. Empty and unparseable input both map to null; persistence never
// rejects a submission over a malformed number.
func ToNumber(v string) sql.NullFloat64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return sql.NullFloat64{}
	}
	n, err := strconv.ParseFloat(numberSeparators.ReplaceAllString(v, ""), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: n, Valid: true}
}
