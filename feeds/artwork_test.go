package feeds

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"room-backend/models"
	"room-backend/probe"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestArtworkManifest(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"images/artwork/manifest.json": `{"files":["my_cat-drawing.png","notes.txt","Sky.JPG"]}`,
		"images/artwork/1.png":         "ignored when a manifest exists",
	})

	got := NewArtwork(probe.NewDirProber(root)).Discover(context.Background())
	want := []models.Artwork{
		{ID: "my_cat_drawing_png", Title: "My Cat Drawing", Description: "Artwork", Path: "images/artwork/my_cat-drawing.png"},
		{ID: "Sky_JPG", Title: "Sky", Description: "Artwork", Path: "images/artwork/Sky.JPG"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestArtworkProbe(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{"sequential", []string{"1.png", "2.jpg", "3.webp", "5.png"}, []string{"1_png", "2_jpg", "3_webp"}},
		{"first missing", []string{"2.gif", "3.svg"}, []string{"2_gif", "3_svg"}},
		{"extension order", []string{"1.jpg", "1.png"}, []string{"1_png"}},
		{"nothing", nil, nil},
	}

	for _, test := range tests {
		files := map[string]string{}
		for _, f := range test.files {
			files["images/artwork/"+f] = "img"
		}
		root := writeFiles(t, files)

		var got []string
		for _, item := range NewArtwork(probe.NewDirProber(root)).Discover(context.Background()) {
			got = append(got, item.ID)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestArtworkBadManifest(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"images/artwork/manifest.json": `not json`,
		"images/artwork/1.gif":         "img",
	})
	got := NewArtwork(probe.NewDirProber(root)).Discover(context.Background())
	if len(got) != 1 || got[0].Path != "images/artwork/1.gif" {
		t.Errorf("got %+v", got)
	}
}

func TestNewArtworkItem(t *testing.T) {
	tests := []struct {
		in    string
		title string
		ok    bool
	}{
		{"hello_world.png", "Hello World", true},
		{"big-red dog.jpeg", "Big Red Dog", true},
		{"7.svg", "7", true},
		{"readme.md", "", false},
		{"noext", "", false},
	}
	for _, test := range tests {
		item, ok := NewArtworkItem(test.in)
		if ok != test.ok || item.Title != test.title {
			t.Errorf("NewArtworkItem(%q) = %q, %v; want %q, %v", test.in, item.Title, ok, test.title, test.ok)
		}
	}
}
