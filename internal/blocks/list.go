// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownType is returned when an operation references a block type the
// editor does not offer.
var ErrUnknownType = errors.New("unknown block type")

// ErrTypeMismatch is returned when new data does not match a block's type.
// A block's type is immutable after creation.
var ErrTypeMismatch = errors.New("block data type mismatch")

// NewID returns a fresh block id. IDs are opaque, unique within a page's
// block array, and never reused after deletion.
func NewID() string {
	return uuid.NewString()
}

// New creates a block of the given registered type with its default data.
func New(t Type) (Block, error) {
	data := DefaultData(t)
	if data == nil {
		return Block{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return Block{ID: NewID(), Type: t, Data: data}, nil
}

// Append returns a new list with a freshly created block of the given type
// at the end, along with the created block.
func Append(blocks []Block, t Type) ([]Block, Block, error) {
	blk, err := New(t)
	if err != nil {
		return blocks, Block{}, err
	}
	out := make([]Block, 0, len(blocks)+1)
	out = append(out, blocks...)
	out = append(out, blk)
	return out, blk, nil
}

// Delete returns a new list without the block carrying the given id. A
// missing id leaves the list unchanged.
func Delete(blocks []Block, id string) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

// Reorder moves the block at from to position to, preserving the relative
// order of all other blocks. Out-of-range indices return the input order
// unchanged.
func Reorder(blocks []Block, from, to int) []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Block{moved}, out[to:]...)...)
	return out
}

// UpdateData returns a new list with the identified block's data replaced
// wholesale. The replacement must carry the block's own type.
func UpdateData(blocks []Block, id string, data Data) ([]Block, error) {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	for i, b := range out {
		if b.ID != id {
			continue
		}
		if data == nil || data.BlockType() != b.Type {
			return blocks, fmt.Errorf("%w: block %s is %s", ErrTypeMismatch, id, b.Type)
		}
		out[i].Data = data
		return out, nil
	}
	return blocks, fmt.Errorf("block %s not found", id)
}

// Find returns the block with the given id.
func Find(blocks []Block, id string) (Block, bool) {
	for _, b := range blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}
