package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"belle-detente-backend/internal/domain"
)

//go:embed data/*.json
var contentFS embed.FS

// Store holds the site's static content catalog, parsed once from the
// embedded JSON files. All accessors return the same parsed data; nothing
// mutates it after NewStore.
type Store struct {
	experiences []domain.Experience
	site        domain.SiteConfig
	booking     domain.BookingConfig
}

// NewStore parses the embedded content. Malformed content is a build
// artifact problem, so any error here is fatal at startup.
func NewStore() (*Store, error) {
	s := &Store{}

	var experiencesFile struct {
		Experiences []domain.Experience `json:"experiences"`
	}
	if err := loadJSON("data/experiences.json", &experiencesFile); err != nil {
		return nil, err
	}
	s.experiences = experiencesFile.Experiences

	if err := loadJSON("data/site.config.json", &s.site); err != nil {
		return nil, err
	}
	if err := loadJSON("data/booking.config.json", &s.booking); err != nil {
		return nil, err
	}

	if len(s.experiences) == 0 {
		return nil, fmt.Errorf("content: experiences.json contains no experiences")
	}

	return s, nil
}

func loadJSON(path string, v any) error {
	raw, err := contentFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("content: parse %s: %w", path, err)
	}
	return nil
}

func (s *Store) Experiences() []domain.Experience {
	return s.experiences
}

func (s *Store) Site() domain.SiteConfig {
	return s.site
}

func (s *Store) Booking() domain.BookingConfig {
	return s.booking
}
