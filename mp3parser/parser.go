// Package mp3parser reads tag metadata and frame layout from MP3 bytes
package mp3parser

import (
	"bytes"
	"encoding/binary"
	"iter"
)

const (
	id3v2HeaderSize = 10
	frameHeaderSize = 10

	// ID3v1TagLength is the length of an MP3 ID3v1 tag in bytes.
	ID3v1TagLength = 128
)

var (
	id3v2Magic = []byte("ID3")
	id3v1Magic = []byte("TAG")
)

// Synchsafe decodes a 4-byte synchsafe integer. Only the low 7 bits of
// each byte carry value.
func Synchsafe(b []byte) int {
	return int(b[0]&0x7F)<<21 |
		int(b[1]&0x7F)<<14 |
		int(b[2]&0x7F)<<7 |
		int(b[3]&0x7F)
}

// ReadID3v2Header reads the 10-byte ID3v2 header at the start of buf.
// It reports false when buf does not start with one.
func ReadID3v2Header(buf []byte) (ID3v2Header, bool) {
	if len(buf) < id3v2HeaderSize || !bytes.Equal(buf[:3], id3v2Magic) {
		return ID3v2Header{}, false
	}
	return ID3v2Header{
		Version: [2]byte{buf[3], buf[4]},
		Flags:   buf[5],
		Size:    Synchsafe(buf[6:10]),
	}, true
}

// frames walks the frames of the ID3v2 tag described by h. The walk
// ends at padding, at a frame of non-positive size, at a frame larger
// than what is left of the declared tag, or at the end of buf.
func frames(buf []byte, h ID3v2Header) iter.Seq[frame] {
	return func(yield func(frame) bool) {
		end := id3v2HeaderSize + h.Size
		offset := id3v2HeaderSize
		for offset < end-frameHeaderSize {
			if offset+frameHeaderSize > len(buf) {
				return
			}
			id := buf[offset : offset+4]
			if id[0] == 0 {
				return
			}

			// v2.3 frame sizes are plain integers, v2.4 made them synchsafe.
			var size int
			if h.Major() == 4 {
				size = Synchsafe(buf[offset+4 : offset+8])
			} else {
				size = int(binary.BigEndian.Uint32(buf[offset+4 : offset+8]))
			}

			start := offset + frameHeaderSize
			if size <= 0 || size > end-start || start+size > len(buf) {
				return
			}
			if !yield(frame{ID: string(id), Size: size, Body: buf[start : start+size]}) {
				return
			}
			offset = start + size
		}
	}
}

// ParseID3v1 reads the classic 128-byte trailer at the end of buf.
func ParseID3v1(buf []byte) (*ID3v1Tag, bool) {
	if len(buf) < ID3v1TagLength {
		return nil, false
	}
	t := buf[len(buf)-ID3v1TagLength:]
	if !bytes.Equal(t[:3], id3v1Magic) {
		return nil, false
	}

	tag := &ID3v1Tag{
		Title:   latin1Text(t[3:33]),
		Artist:  latin1Text(t[33:63]),
		Album:   latin1Text(t[63:93]),
		Year:    latin1Text(t[93:97]),
		Comment: latin1Text(t[97:127]),
		Genre:   t[127],
	}
	// ID3v1.1 steals the last two comment bytes for a track number.
	if t[125] == 0 && t[126] != 0 {
		tag.Track = int(t[126])
	}
	return tag, true
}
