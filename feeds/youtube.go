// Package feeds pulls the room's cartoons, toys and pix from where they live
package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"room-backend/cache"
	"room-backend/format"
	"room-backend/models"
)

const (
	youtubeFeedURL  = "https://www.youtube.com/feeds/videos.xml"
	youtubeCacheKey = "youtube_cache"

	DefaultThumbnailQuality = "mqdefault"
	descriptionLength       = 100
)

var (
	videoIDPattern = regexp.MustCompile(`(?:v=|/)([\w-]{11})(?:\?|&|$)`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// YouTube reads a channel's public Atom feed.
type YouTube struct {
	ChannelID string
	FeedURL   string // overrides the public feed endpoint
	Client    *http.Client

	cache *cache.Manager
}

func NewYouTube(channelID string, store cache.Store, ttl time.Duration) *YouTube {
	return &YouTube{
		ChannelID: channelID,
		FeedURL:   youtubeFeedURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
		cache:     cache.NewManager(store, youtubeCacheKey, ttl),
	}
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	VideoID   string `xml:"videoId"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Links     []struct {
		Rel  string `xml:"rel,attr"`
		Href string `xml:"href,attr"`
	} `xml:"link"`
	Group struct {
		Description string `xml:"description"`
		Thumbnail   struct {
			URL string `xml:"url,attr"`
		} `xml:"thumbnail"`
	} `xml:"group"`
}

func (e atomEntry) link() string {
	for _, l := range e.Links {
		if l.Rel == "alternate" || l.Rel == "" {
			return l.Href
		}
	}
	return ""
}

// Videos returns the channel's latest videos, newest first as the feed
// lists them. A fresh cached copy is returned without a request.
func (y *YouTube) Videos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if y.cache.Get(&videos) {
		return videos, nil
	}

	feed, err := y.fetch(ctx)
	if err != nil {
		return nil, err
	}

	videos = make([]models.Video, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		videos = append(videos, e.video())
	}
	y.cache.Set(videos)
	log.Printf("Fetched %d videos for channel %s", len(videos), y.ChannelID)
	return videos, nil
}

// Refresh drops the cached feed and fetches it again.
func (y *YouTube) Refresh(ctx context.Context) ([]models.Video, error) {
	y.cache.Clear()
	return y.Videos(ctx)
}

func (y *YouTube) fetch(ctx context.Context) (*atomFeed, error) {
	u := y.FeedURL + "?channel_id=" + url.QueryEscape(y.ChannelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := y.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return &feed, nil
}

func (e atomEntry) video() models.Video {
	link := e.link()
	id := ExtractVideoID(link)
	if id == "" {
		id = e.VideoID
	}

	thumb := e.Group.Thumbnail.URL
	if thumb == "" && id != "" {
		thumb = ThumbnailURL(id, "")
	}

	v := models.Video{
		ID:          id,
		Title:       e.Title,
		Description: TruncateDescription(e.Group.Description),
		Thumbnail:   thumb,
		Link:        link,
	}
	if published, err := time.Parse(time.RFC3339, e.Published); err == nil {
		v.PublishedAt = published
		v.Published = format.Date(published)
	} else {
		log.Printf("Warning: bad published date %q for video %s", e.Published, id)
	}
	return v
}

// ExtractVideoID pulls the 11 character video id out of a watch, embed
// or short link. It returns "" when there is none.
func ExtractVideoID(link string) string {
	m := videoIDPattern.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

func ThumbnailURL(videoID, quality string) string {
	if quality == "" {
		quality = DefaultThumbnailQuality
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", videoID, quality)
}

// TruncateDescription strips markup and cuts the text to 100 characters,
// marking the cut with "...".
func TruncateDescription(desc string) string {
	stripped := tagPattern.ReplaceAllString(desc, "")
	runes := []rune(stripped)
	if len(runes) <= descriptionLength {
		return stripped
	}
	return strings.TrimSpace(string(runes[:descriptionLength])) + "..."
}
