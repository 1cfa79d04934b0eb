package sand

import (
	"encoding/binary"
	"fmt"
)

// Snapshot is a serializable copy of the grid. Effect particles, growing
// branches, and rainbow counters are transient and intentionally excluded;
// a restored world settles within a few ticks.
type Snapshot struct {
	Width  int
	Height int
	Cells  []Element
}

const snapshotVersion = 1

// snapshot header: version byte, then width and height as uint32 LE.
const snapshotHeaderLen = 1 + 4 + 4

// Snapshot copies the current grid.
func (w *World) Snapshot() Snapshot {
	cells := make([]Element, len(w.grid.Cells()))
	copy(cells, w.grid.Cells())
	return Snapshot{
		Width:  w.grid.Width(),
		Height: w.grid.Height(),
		Cells:  cells,
	}
}

// Restore replaces the world's grid with the snapshot. Index-coupled state
// (particles, branches, rainbow counters) is discarded, same as a resize.
// On a malformed snapshot the world is left untouched.
func (w *World) Restore(s Snapshot) error {
	if err := s.validate(); err != nil {
		return err
	}
	w.Resize(s.Width, s.Height)
	copy(w.grid.Cells(), s.Cells)
	return nil
}

func (s Snapshot) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("snapshot: invalid dimensions %dx%d", s.Width, s.Height)
	}
	if len(s.Cells) != s.Width*s.Height {
		return fmt.Errorf("snapshot: %d cells for %dx%d grid", len(s.Cells), s.Width, s.Height)
	}
	for i, e := range s.Cells {
		if e >= NumElements {
			return fmt.Errorf("snapshot: unknown element %d at cell %d", e, i)
		}
	}
	return nil
}

// MarshalBinary encodes the snapshot as a fixed header plus one byte per
// cell. Element tags are stable, so the encoding survives across versions
// that only append new elements.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, snapshotHeaderLen+len(s.Cells))
	buf[0] = snapshotVersion
	binary.LittleEndian.PutUint32(buf[1:5], uint32(s.Width))
	binary.LittleEndian.PutUint32(buf[5:9], uint32(s.Height))
	for i, e := range s.Cells {
		buf[snapshotHeaderLen+i] = byte(e)
	}
	return buf, nil
}

// UnmarshalBinary decodes and validates a snapshot. The receiver is only
// modified on success.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) < snapshotHeaderLen {
		return fmt.Errorf("snapshot: truncated header (%d bytes)", len(data))
	}
	if data[0] != snapshotVersion {
		return fmt.Errorf("snapshot: unsupported version %d", data[0])
	}
	width := int(binary.LittleEndian.Uint32(data[1:5]))
	height := int(binary.LittleEndian.Uint32(data[5:9]))

	decoded := Snapshot{
		Width:  width,
		Height: height,
		Cells:  make([]Element, len(data)-snapshotHeaderLen),
	}
	for i, b := range data[snapshotHeaderLen:] {
		decoded.Cells[i] = Element(b)
	}
	if err := decoded.validate(); err != nil {
		return err
	}
	*s = decoded
	return nil
}
