package mp3parser

import (
	"encoding/binary"
	"time"
)

const (
	channelModeMono = 3

	xingFramesFlag = 0x1
	vbriOffset     = 36 // VBRI sits at a fixed offset after the frame header
)

// sideInfoSize is the length of the Layer III side information that
// follows the frame header (and CRC, when present).
func sideInfoSize(h *MP3FrameHeader) int {
	mono := h.ChannelMode == channelModeMono
	switch {
	case h.VersionID == mpegVersion1 && mono:
		return 17
	case h.VersionID == mpegVersion1:
		return 32
	case mono:
		return 9
	default:
		return 17
	}
}

// vbrFrameCount reads the total frame count from a Xing/Info or VBRI
// header stored in the first audio frame of a VBR file. It reports false
// when the frame is ordinary audio.
func vbrFrameCount(frame []byte, h *MP3FrameHeader) (int, bool) {
	if h.Layer != layerIII {
		return 0, false
	}

	off := 4 + sideInfoSize(h)
	if h.ProtectionBit {
		off += 2
	}
	if off+12 <= len(frame) {
		switch string(frame[off : off+4]) {
		case "Xing", "Info":
			flags := binary.BigEndian.Uint32(frame[off+4:])
			if flags&xingFramesFlag == 0 {
				return 0, false
			}
			n := int(binary.BigEndian.Uint32(frame[off+8:]))
			return n, n > 0
		}
	}

	if vbriOffset+18 <= len(frame) && string(frame[vbriOffset:vbriOffset+4]) == "VBRI" {
		n := int(binary.BigEndian.Uint32(frame[vbriOffset+14:]))
		return n, n > 0
	}
	return 0, false
}

// framesDuration splits whole seconds from the remainder so that a
// 32-bit frame count cannot overflow the nanosecond product.
func framesDuration(frames int, h *MP3FrameHeader) time.Duration {
	samples := int64(frames) * int64(h.Samples)
	rate := int64(h.SampleRate)
	secs, rem := samples/rate, samples%rate
	return time.Duration(secs)*time.Second + time.Duration(rem)*time.Second/time.Duration(rate)
}
