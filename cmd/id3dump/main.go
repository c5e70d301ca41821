// Command id3dump prints the title, artist, year and length of audio files.
package main

import (
	"fmt"
	"log"
	"os"

	"room-backend/audio"
	"room-backend/format"
)

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func printFile(in *audio.Inspector, name string) {
	fmt.Println(name)
	data, err := os.ReadFile(name)
	if err != nil {
		log.Println(err)
		return
	}

	info, err := in.Inspect(name, data)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Title: %s\n", orUnknown(info.Title))
	fmt.Printf("Artist: %s\n", orUnknown(info.Artist))
	fmt.Printf("Year: %s\n", orUnknown(info.Year))
	fmt.Printf("Length: %s\n", format.Duration(info.Duration))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: id3dump file...")
		os.Exit(2)
	}
	in := audio.NewInspector()
	for _, name := range os.Args[1:] {
		printFile(in, name)
		fmt.Println()
	}
}
