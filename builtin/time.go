/*
File    : PeanutScript/builtin/time.go
Package : builtin

time(), grounded on original_source's execute_time (`Number(time.time())`).
*/
package builtin

import (
	"time"

	"github.com/gapples2/PeanutScript/value"
)

func timeFn(_ []value.Value, _ interface{}) (value.Value, *value.RTError) {
	return value.NewFloat(float64(time.Now().UnixNano()) / 1e9), nil
}
