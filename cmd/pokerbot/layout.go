package main

import (
	"fmt"

	"github.com/lox/pokerbot-skeleton/protocol"
)

// verifyLayout compares the C size and field offsets of the named record with
// the Go mirror in protocol. Offsets are given in declaration order.
func verifyLayout(name string, size uintptr, offsets []uintptr) error {
	record, ok := protocol.Records()[name]
	if !ok {
		return fmt.Errorf("unknown record %s", name)
	}
	fields, goSize, err := protocol.Layout(record)
	if err != nil {
		return err
	}
	if want, _ := protocol.ExpectedSize(name); size != want || goSize != want {
		return fmt.Errorf("%s: C size %d, Go size %d, expected %d", name, size, goSize, want)
	}
	if len(fields) != len(offsets) {
		return fmt.Errorf("%s: C has %d fields, Go has %d", name, len(offsets), len(fields))
	}
	for i, f := range fields {
		if f.Offset != offsets[i] {
			return fmt.Errorf("%s.%s: C offset %d, Go offset %d", name, f.Name, offsets[i], f.Offset)
		}
	}
	return nil
}
