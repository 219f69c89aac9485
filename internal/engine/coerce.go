package engine

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// coerceAmount converts a raw snapshot field to a monetary amount. Missing,
// malformed, and non-numeric values all become zero; the engine never
// propagates NaN or an error for a bad amount.
func coerceAmount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// parseInstant reads a timestamp field, accepting epoch milliseconds or an
// RFC 3339 string. The second return is false when no definite instant can
// be recovered from the value.
func parseInstant(v any) (time.Time, bool) {
	switch ts := v.(type) {
	case time.Time:
		return ts, true
	case float64:
		return time.UnixMilli(int64(ts)).UTC(), true
	case int64:
		return time.UnixMilli(ts).UTC(), true
	case int:
		return time.UnixMilli(int64(ts)).UTC(), true
	case json.Number:
		if ms, err := ts.Int64(); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
		if f, err := ts.Float64(); err == nil {
			return time.UnixMilli(int64(f)).UTC(), true
		}
		return time.Time{}, false
	case string:
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
