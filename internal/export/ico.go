package export

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxICOEntrySize is the largest image an ICO directory entry can
// describe; the width/height bytes encode 256 as zero.
const maxICOEntrySize = 256

// encodeICO writes a Windows ICO container holding the PNG-compressed
// entries. Modern consumers (Vista and later) accept PNG payloads
// directly, so the already-encoded bytes are embedded as-is.
func encodeICO(w io.Writer, entries []Result) error {
	const headerLen = 6
	const dirEntryLen = 16

	// ICONDIR: reserved, type (1 = icon), count.
	if err := binary.Write(w, binary.LittleEndian, [3]uint16{0, 1, uint16(len(entries))}); err != nil {
		return err
	}

	offset := uint32(headerLen + dirEntryLen*len(entries))
	for _, e := range entries {
		if e.Size > maxICOEntrySize {
			return fmt.Errorf("entry %q is %d px, over the ICO limit of %d", e.Label, e.Size, maxICOEntrySize)
		}
		dim := uint8(e.Size)
		if e.Size == maxICOEntrySize {
			dim = 0
		}
		if _, err := w.Write([]byte{dim, dim, 0, 0}); err != nil {
			return err
		}
		// Color planes, bits per pixel, payload size, payload offset.
		if err := binary.Write(w, binary.LittleEndian, uint16(1)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(32)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(e.png))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, offset); err != nil {
			return err
		}
		offset += uint32(len(e.png))
	}

	for _, e := range entries {
		if _, err := w.Write(e.png); err != nil {
			return err
		}
	}
	return nil
}
