package mp3parser

import "iter"

// Decode reads title, artist and year from the raw bytes of an audio
// file. ID3v2 frames are preferred; any field they leave empty is
// filled from an ID3v1 trailer when one is present.
//
// Decode never fails. Malformed, truncated or untagged input yields
// empty fields. buf is not retained.
func Decode(buf []byte) (md Metadata) {
	defer func() {
		if recover() != nil {
			md = Metadata{}
		}
	}()

	if h, ok := ReadID3v2Header(buf); ok && (h.Major() == 3 || h.Major() == 4) {
		for f := range textFrames(frames(buf, h)) {
			switch f.ID {
			case "TIT2":
				md.Title = readTextFrame(f.Body)
			case "TPE1":
				md.Artist = readTextFrame(f.Body)
			case "TYER", "TDRC":
				md.Year = truncateYear(readTextFrame(f.Body))
			}
		}
	}

	if md.Complete() {
		return md
	}
	if v1, ok := ParseID3v1(buf); ok {
		if md.Title == "" {
			md.Title = v1.Title
		}
		if md.Artist == "" {
			md.Artist = v1.Artist
		}
		if md.Year == "" {
			md.Year = v1.Year
		}
	}
	return md
}

// textFrames keeps the frames Decode knows how to interpret.
func textFrames(seq iter.Seq[frame]) iter.Seq[frame] {
	return func(yield func(frame) bool) {
		for f := range seq {
			switch f.ID {
			case "TIT2", "TPE1", "TYER", "TDRC":
				if !yield(f) {
					return
				}
			}
		}
	}
}
