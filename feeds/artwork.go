package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"regexp"
	"slices"
	"strings"

	"room-backend/models"
	"room-backend/probe"
)

const (
	ArtworkDir      = "images/artwork"
	maxArtworkProbe = 50
)

var (
	ArtworkExtensions = []string{"png", "jpg", "jpeg", "gif", "webp", "svg"}

	nonWord       = regexp.MustCompile(`\W`)
	wordStart     = regexp.MustCompile(`\b\w`)
	titleSpacings = strings.NewReplacer("_", " ", "-", " ")
)

// Artwork finds the pix gallery images.
type Artwork struct {
	Prober probe.Prober
}

func NewArtwork(p probe.Prober) *Artwork {
	return &Artwork{Prober: p}
}

type artworkManifest struct {
	Files []string `json:"files"`
}

// Discover lists images/artwork/manifest.json when there is one. Without
// a manifest it probes 1.png, 1.jpg, ... 2.png and so on, stopping at the
// first number after 1 that has no image.
func (a *Artwork) Discover(ctx context.Context) []models.Artwork {
	if items, ok := a.fromManifest(ctx); ok {
		return items
	}

	var items []models.Artwork
	for i := 1; i <= maxArtworkProbe; i++ {
		if ctx.Err() != nil {
			break
		}
		found := false
		for _, ext := range ArtworkExtensions {
			name := fmt.Sprintf("%d.%s", i, ext)
			if !a.Prober.Exists(ctx, ArtworkDir+"/"+name) {
				continue
			}
			if item, ok := NewArtworkItem(name); ok {
				items = append(items, item)
			}
			found = true
			break
		}
		if !found && i > 1 {
			break
		}
	}
	log.Printf("Artwork discovery found %d files", len(items))
	return items
}

func (a *Artwork) fromManifest(ctx context.Context) ([]models.Artwork, bool) {
	data, err := a.Prober.Fetch(ctx, ArtworkDir+"/manifest.json")
	if err != nil {
		return nil, false
	}
	var m artworkManifest
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("Warning: could not load manifest.json: %v", err)
		return nil, false
	}

	items := []models.Artwork{}
	for _, file := range m.Files {
		if item, ok := NewArtworkItem(file); ok {
			items = append(items, item)
		}
	}
	return items, true
}

// NewArtworkItem describes one image file. Files without an image
// extension are rejected.
func NewArtworkItem(filename string) (models.Artwork, bool) {
	ext := path.Ext(filename)
	if !slices.Contains(ArtworkExtensions, strings.ToLower(strings.TrimPrefix(ext, "."))) {
		return models.Artwork{}, false
	}

	stem := titleSpacings.Replace(strings.TrimSuffix(filename, ext))
	return models.Artwork{
		ID:          nonWord.ReplaceAllString(filename, "_"),
		Title:       wordStart.ReplaceAllStringFunc(stem, strings.ToUpper),
		Description: "Artwork",
		Path:        ArtworkDir + "/" + filename,
	}, true
}
