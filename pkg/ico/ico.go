// Package ico reads and writes Windows ICO containers with PNG entries.
//
// Layout (all fields little-endian):
//
//	ICONDIR       6 bytes   reserved(0) type(1=icon) count
//	ICONDIRENTRY 16 bytes   width height colors reserved planes bpp size offset
//	...                     one record per entry
//	payloads                entry data, in record order
//
// A width or height byte of 0 means 256 pixels.
// See https://learn.microsoft.com/en-us/previous-versions/ms997538(v=msdn.10)
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ResourceType is the type field of the container header.
type ResourceType uint16

const (
	TypeIcon   ResourceType = 1
	TypeCursor ResourceType = 2
)

const (
	headerSize = 6
	recordSize = 16
	maxEdge    = 256
)

var (
	// ErrInvalid is wrapped by every parse failure.
	ErrInvalid = errors.New("ico: invalid container")
	// ErrCursor is returned for CUR containers.
	ErrCursor = errors.New("ico: cursor resources are not supported")
	// ErrUnsupportedEntry is returned when an entry payload is not PNG.
	ErrUnsupportedEntry = errors.New("ico: unsupported entry format")
)

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// Directory is an in-memory icon container.
type Directory struct {
	Type    ResourceType
	entries []Entry
}

// NewDirectory creates an empty container of the given type.
func NewDirectory(t ResourceType) *Directory {
	return &Directory{Type: t}
}

// Add appends an entry, keeping insertion order.
func (d *Directory) Add(e Entry) {
	d.entries = append(d.entries, e)
}

// Entries returns the entries in stored order.
func (d *Directory) Entries() []Entry {
	return d.entries
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// MarshalBinary serializes the container.
func (d *Directory) MarshalBinary() ([]byte, error) {
	if len(d.entries) > 0xFFFF {
		return nil, fmt.Errorf("ico: too many entries: %d", len(d.entries))
	}

	var buf bytes.Buffer
	hdr := iconDir{Type: uint16(d.Type), Count: uint16(len(d.entries))}
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		return nil, err
	}

	offset := uint32(headerSize + recordSize*len(d.entries))
	for i, e := range d.entries {
		w, err := edgeByte(e.Width)
		if err != nil {
			return nil, fmt.Errorf("ico: entry %d: %w", i, err)
		}
		h, err := edgeByte(e.Height)
		if err != nil {
			return nil, fmt.Errorf("ico: entry %d: %w", i, err)
		}

		rec := iconDirEntry{
			Width:       w,
			Height:      h,
			ColorCount:  e.ColorCount,
			Planes:      e.Planes,
			BitCount:    e.BitsPerPixel,
			BytesInRes:  uint32(len(e.Data)),
			ImageOffset: offset,
		}
		if err := binary.Write(&buf, binary.LittleEndian, rec); err != nil {
			return nil, err
		}
		offset += uint32(len(e.Data))
	}

	for _, e := range d.entries {
		buf.Write(e.Data)
	}
	return buf.Bytes(), nil
}

// Write serializes the container to w.
func (d *Directory) Write(w io.Writer) error {
	data, err := d.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read parses a whole container from r.
func Read(r io.Reader) (*Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a container held in memory. Entry payloads alias data.
func Parse(data []byte) (*Directory, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: truncated header (%d bytes)", ErrInvalid, len(data))
	}

	var hdr iconDir
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if hdr.Reserved != 0 {
		return nil, fmt.Errorf("%w: bad magic number", ErrInvalid)
	}
	switch ResourceType(hdr.Type) {
	case TypeIcon:
	case TypeCursor:
		return nil, ErrCursor
	default:
		return nil, fmt.Errorf("%w: unknown resource type %d", ErrInvalid, hdr.Type)
	}

	dirEnd := headerSize + recordSize*int(hdr.Count)
	if len(data) < dirEnd {
		return nil, fmt.Errorf("%w: truncated directory: %d entries need %d bytes, have %d",
			ErrInvalid, hdr.Count, dirEnd, len(data))
	}

	records := make([]iconDirEntry, hdr.Count)
	if err := binary.Read(bytes.NewReader(data[headerSize:dirEnd]), binary.LittleEndian, records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	dir := NewDirectory(TypeIcon)
	for i, rec := range records {
		start := uint64(rec.ImageOffset)
		end := start + uint64(rec.BytesInRes)
		if rec.BytesInRes == 0 {
			return nil, fmt.Errorf("%w: entry %d has no data", ErrInvalid, i)
		}
		if start < uint64(dirEnd) || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d data [%d, %d) outside of [%d, %d)",
				ErrInvalid, i, start, end, dirEnd, len(data))
		}

		entry := Entry{
			Width:        edgeValue(rec.Width),
			Height:       edgeValue(rec.Height),
			ColorCount:   rec.ColorCount,
			Planes:       rec.Planes,
			BitsPerPixel: rec.BitCount,
			Data:         data[start:end],
		}
		// The directory cannot express edges over 256, so PNG headers win.
		if info, ok := readPNGHeader(entry.Data); ok {
			entry.Width = info.width
			entry.Height = info.height
			if entry.BitsPerPixel == 0 {
				entry.BitsPerPixel = info.bitsPerPixel
			}
		}
		dir.Add(entry)
	}

	return dir, nil
}

func edgeByte(v uint32) (uint8, error) {
	switch {
	case v == 0 || v > maxEdge:
		return 0, fmt.Errorf("edge length %d out of range 1..%d", v, maxEdge)
	case v == maxEdge:
		return 0, nil
	default:
		return uint8(v), nil
	}
}

func edgeValue(b uint8) uint32 {
	if b == 0 {
		return maxEdge
	}
	return uint32(b)
}
