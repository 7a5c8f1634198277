package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// The binary forms below are the exact little-endian C layouts, padding
// included, so captured engine memory can be decoded byte for byte.

// ErrRecordSize is returned when a buffer does not hold exactly one record.
var ErrRecordSize = errors.New("record size mismatch")

var byteOrder = binary.LittleEndian

// gameInfoWire makes the C padding around the double explicit.
type gameInfoWire struct {
	Bankroll  int32
	_         [4]byte
	GameClock float64
	RoundNum  int32
	_         [4]byte
}

func decodeRecord(data []byte, size int, v any) error {
	if len(data) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrRecordSize, len(data), size)
	}
	return binary.Read(bytes.NewReader(data), byteOrder, v)
}

// MarshalBinary encodes g in its C layout.
func (g GameInfo) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, byteOrder, gameInfoWire{
		Bankroll:  g.Bankroll,
		GameClock: g.GameClock,
		RoundNum:  g.RoundNum,
	})
}

// UnmarshalBinary decodes g from its C layout.
func (g *GameInfo) UnmarshalBinary(data []byte) error {
	var w gameInfoWire
	if err := decodeRecord(data, GameInfoSize, &w); err != nil {
		return fmt.Errorf("decode GameInfo: %w", err)
	}
	*g = GameInfo{Bankroll: w.Bankroll, GameClock: w.GameClock, RoundNum: w.RoundNum}
	return nil
}

// MarshalBinary encodes a in its C layout.
func (a Action) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, byteOrder, a)
}

// UnmarshalBinary decodes a from its C layout.
func (a *Action) UnmarshalBinary(data []byte) error {
	if err := decodeRecord(data, ActionSize, a); err != nil {
		return fmt.Errorf("decode Action: %w", err)
	}
	return nil
}

// MarshalBinary encodes r in its C layout.
func (r RoundInfo) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, byteOrder, r)
}

// UnmarshalBinary decodes r from its C layout.
func (r *RoundInfo) UnmarshalBinary(data []byte) error {
	if err := decodeRecord(data, RoundInfoSize, r); err != nil {
		return fmt.Errorf("decode RoundInfo: %w", err)
	}
	return nil
}

// MarshalBinary encodes r in its C layout.
func (r RoundOverInfo) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, byteOrder, r)
}

// UnmarshalBinary decodes r from its C layout.
func (r *RoundOverInfo) UnmarshalBinary(data []byte) error {
	if err := decodeRecord(data, RoundOverInfoSize, r); err != nil {
		return fmt.Errorf("decode RoundOverInfo: %w", err)
	}
	return nil
}
