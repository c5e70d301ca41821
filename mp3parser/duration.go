package mp3parser

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// MPEG version IDs as they appear in the frame header.
const (
	mpegVersion2_5 = 0
	mpegVersion2   = 2
	mpegVersion1   = 3
)

// Layer indices as they appear in the frame header.
const (
	layerIII = 1
	layerII  = 2
	layerI   = 3
)

var errNoSync = errors.New("missing sync bits in MPEG frame header")

// bitrates in kbit/s, indexed by the 4-bit bitrate index.
var (
	bitratesV1L1 = [16]int{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0}
	bitratesV1L2 = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0}
	bitratesV1L3 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	bitratesV2L1 = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0}
	bitratesV2L2 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
)

var sampleRates = map[int][4]int{
	mpegVersion1:   {44100, 48000, 32000, 0},
	mpegVersion2:   {22050, 24000, 16000, 0},
	mpegVersion2_5: {11025, 12000, 8000, 0},
}

func bitrateTable(version, layer int) [16]int {
	if version == mpegVersion1 {
		switch layer {
		case layerI:
			return bitratesV1L1
		case layerII:
			return bitratesV1L2
		default:
			return bitratesV1L3
		}
	}
	if layer == layerI {
		return bitratesV2L1
	}
	return bitratesV2L2
}

func samplesPerFrame(version, layer int) int {
	switch {
	case layer == layerI:
		return 384
	case layer == layerII, version == mpegVersion1:
		return 1152
	default:
		return 576
	}
}

// ReadFrameHeader parses the 4-byte MPEG audio frame header at the start of b.
func ReadFrameHeader(b []byte) (*MP3FrameHeader, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("frame header too short: %d bytes", len(b))
	}
	header := binary.BigEndian.Uint32(b)

	if (header & 0xFFE00000) != 0xFFE00000 {
		return nil, errNoSync
	}

	versionID := int((header >> 19) & 0x3)
	layer := int((header >> 17) & 0x3)
	prot := ((header >> 16) & 0x1) == 0
	bitrateIdx := int((header >> 12) & 0xF)
	sampleRateIdx := int((header >> 10) & 0x3)
	padding := ((header >> 9) & 0x1) == 1
	channelMode := int((header >> 6) & 0x3)

	if versionID == 1 || layer == 0 {
		return nil, fmt.Errorf("reserved version or layer in header 0x%08X", header)
	}

	bitrate := bitrateTable(versionID, layer)[bitrateIdx] * 1000
	sampleRate := sampleRates[versionID][sampleRateIdx]
	if bitrate == 0 || sampleRate == 0 {
		return nil, fmt.Errorf("unsupported bitrate or samplerate")
	}

	samples := samplesPerFrame(versionID, layer)
	var frameLen int
	if layer == layerI {
		frameLen = (12*bitrate/sampleRate + btoi(padding)) * 4
	} else {
		frameLen = samples/8*bitrate/sampleRate + btoi(padding)
	}

	return &MP3FrameHeader{
		VersionID:     versionID,
		Layer:         layer,
		ProtectionBit: prot,
		Bitrate:       bitrate,
		SampleRate:    sampleRate,
		Padding:       padding,
		ChannelMode:   channelMode,
		FrameLength:   frameLen,
		Samples:       samples,
	}, nil
}

// EstimateDuration walks the MPEG frames between the ID3v2 tag and the
// ID3v1 trailer and sums their playing time. Bytes that do not start a
// valid frame are skipped one at a time. A Xing or VBRI header in the
// first frame gives the frame count directly.
func EstimateDuration(buf []byte) time.Duration {
	start := 0
	if h, ok := ReadID3v2Header(buf); ok {
		start = id3v2HeaderSize + h.Size
		if h.Flags&0x10 != 0 { // footer present
			start += id3v2HeaderSize
		}
	}
	end := len(buf)
	if _, ok := ParseID3v1(buf); ok {
		end -= ID3v1TagLength
	}

	var d time.Duration
	first := true
	for off := start; off+4 <= end; {
		h, err := ReadFrameHeader(buf[off : off+4])
		if err != nil || h.FrameLength < 4 || off+h.FrameLength > end {
			off++
			continue
		}
		if first {
			if n, ok := vbrFrameCount(buf[off:off+h.FrameLength], h); ok {
				return framesDuration(n, h)
			}
			first = false
		}
		d += framesDuration(1, h)
		off += h.FrameLength
	}
	return d
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
