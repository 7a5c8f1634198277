package protocol

import (
	"fmt"
	"reflect"
)

// FieldLayout is the position of one record field in memory.
type FieldLayout struct {
	Name   string
	Type   string
	Offset uintptr
	Size   uintptr
}

// Layout describes the in-memory layout of a record value as the Go compiler
// lays it out. On 64-bit targets this must equal the engine's C layout.
func Layout(record any) ([]FieldLayout, uintptr, error) {
	t := reflect.TypeOf(record)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, 0, fmt.Errorf("layout: %T is not a struct", record)
	}
	fields := make([]FieldLayout, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		fields = append(fields, FieldLayout{
			Name:   f.Name,
			Type:   f.Type.String(),
			Offset: f.Offset,
			Size:   f.Type.Size(),
		})
	}
	return fields, t.Size(), nil
}

// Records returns a zero value of every boundary record keyed by its C name.
func Records() map[string]any {
	return map[string]any{
		"GameInfo":      GameInfo{},
		"Action":        Action{},
		"RoundInfo":     RoundInfo{},
		"RoundOverInfo": RoundOverInfo{},
	}
}

// ExpectedSize returns the C size of the named record.
func ExpectedSize(name string) (uintptr, bool) {
	switch name {
	case "GameInfo":
		return GameInfoSize, true
	case "Action":
		return ActionSize, true
	case "RoundInfo":
		return RoundInfoSize, true
	case "RoundOverInfo":
		return RoundOverInfoSize, true
	default:
		return 0, false
	}
}
