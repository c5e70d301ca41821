package mp3parser

// Metadata is the best-effort result of reading an audio file's tags.
// An empty field means the tag did not carry that value; a non-empty
// field is always trimmed and free of NUL characters.
type Metadata struct {
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Complete reports whether every field has a value.
func (m Metadata) Complete() bool {
	return m.Title != "" && m.Artist != "" && m.Year != ""
}

// ID3v2Header represents ID3v2 tag header
type ID3v2Header struct {
	Version [2]byte
	Flags   byte
	Size    int // bytes of frame data following the 10-byte header
}

// Major returns the major version, e.g. 3 for ID3v2.3.
func (h ID3v2Header) Major() int {
	return int(h.Version[0])
}

// ID3v1Tag represents ID3v1 tag (128 bytes at end of file)
type ID3v1Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	Track   int // ID3v1.1 only, 0 when absent
	Genre   byte
}

// frame is a single ID3v2 frame seen during one scan.
type frame struct {
	ID   string
	Size int
	Body []byte
}

// MP3FrameHeader represents an MPEG audio frame header
type MP3FrameHeader struct {
	VersionID     int
	Layer         int
	ProtectionBit bool
	Bitrate       int
	SampleRate    int
	Padding       bool
	ChannelMode   int
	FrameLength   int
	Samples       int
}
