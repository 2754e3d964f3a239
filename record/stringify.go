package record

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig renders values that have no natural string form. spew
// detects circular references instead of recursing forever, which is the
// safety property Stringify relies on for self-referential records.
var dumpConfig = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Stringify renders a resolved placeholder value for display in a test
// name. nil renders as "null" and Undefined as "undefined"; everything
// else gets its ordinary string form, with a spew dump as the fallback
// for values that cannot be printed directly.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *big.Int:
		return t.String()
	case *big.Float:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case time.Duration:
		return t.String()
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return dumpConfig.Sprintf("%v", t)
	}
}
