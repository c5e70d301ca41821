package feeds

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"room-backend/models"
)

// Itch serves the toys catalog for an itch.io profile. There is no
// public listing API, so the catalog is configured rather than fetched.
type Itch struct {
	ProfileURL string
	Catalog    []models.Game
}

// NewItch returns a catalog holding placeholder entries until real games
// are published on the profile.
func NewItch(profileURL string) *Itch {
	now := time.Now()
	return &Itch{
		ProfileURL: profileURL,
		Catalog: []models.Game{
			placeholderGame(1, "Your first game will appear here", profileURL, now),
			placeholderGame(2, "Your second game will appear here", profileURL, now),
		},
	}
}

func (it *Itch) Games(ctx context.Context) ([]models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Game(nil), it.Catalog...), nil
}

func placeholderGame(n int, desc, profileURL string, published time.Time) models.Game {
	return models.Game{
		ID:          fmt.Sprintf("game-%d", n),
		Title:       "Coming Soon",
		Description: desc,
		Thumbnail:   placeholderThumbnail(fmt.Sprintf("Game %d", n)),
		EmbedURL:    "#",
		GameURL:     profileURL,
		PublishedAt: published,
	}
}

// placeholderThumbnail is a grey 400x300 SVG with label centred on it.
func placeholderThumbnail(label string) string {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300">` +
		`<rect fill="#333" width="400" height="300"/>` +
		`<text x="50%" y="50%" font-size="20" fill="#999" text-anchor="middle" dominant-baseline="middle">` +
		label + `</text></svg>`
	return "data:image/svg+xml," + url.PathEscape(svg)
}
