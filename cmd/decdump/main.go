package main

import (
	"github.com/decdump/decdump/pkg/decimal"
	"github.com/decdump/decdump/pkg/numeric"
)

func main() {
	// Dump the maximum 64-bit unsigned value. Any write failure is dropped and
	// the process exits successfully regardless.
	decimal.Dump(numeric.MaxUint64)
}
