package domain

// Duration is one bookable length/price option of an experience.
type Duration struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Price       int    `json:"price"`
	Recommended bool   `json:"recommended,omitempty"`
}

// Experience is a massage offering from the content catalog.
type Experience struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Tagline       string     `json:"tagline"`
	EmotionalHook string     `json:"emotionalHook"`
	IdealFor      []string   `json:"idealFor"`
	Flow          []string   `json:"flow"`
	Durations     []Duration `json:"durations"`
	ImageSrc      string     `json:"imageSrc,omitempty"`
}

// SiteConfig is the brand/presentation configuration of the site.
type SiteConfig struct {
	Brand struct {
		Name           string `json:"name"`
		Phone          string `json:"phone"`
		BaseAreaLabel  string `json:"baseAreaLabel"`
		PublicLocality string `json:"publicLocality"`
	} `json:"brand"`
	Zones struct {
		BaseLocation string   `json:"baseLocation"`
		SeoLocations []string `json:"seoLocations"`
	} `json:"zones"`
}

// BookingConfig maps duration IDs to the booking provider's event slugs.
type BookingConfig struct {
	Provider          string            `json:"provider"`
	Username          string            `json:"username"`
	FallbackEventSlug string            `json:"fallbackEventSlug"`
	Mapping           map[string]string `json:"mapping"`
}

// ContentStore gives read access to the embedded content catalog. Loaded
// once at startup, immutable afterwards.
type ContentStore interface {
	Experiences() []Experience
	Site() SiteConfig
	Booking() BookingConfig
}

// CatalogUsecase exposes the catalog lookups the site pages rely on.
type CatalogUsecase interface {
	ListExperiences() []Experience
	// GetExperience returns nil when the ID is unknown, never an error.
	GetExperience(id string) *Experience
	// GetDuration searches a duration across all experiences and returns the
	// owning experience alongside it.
	GetDuration(durationID string) (*Experience, *Duration)
	// MinPrice returns the lowest price across an experience's durations.
	MinPrice(experienceID string) (int, bool)
	// RecommendedDuration falls back to the first duration when none is
	// marked recommended, and returns nil for an unknown experience.
	RecommendedDuration(experienceID string) *Duration
	// BookingURL resolves the full booking page URL for a duration ID,
	// falling back to the catch-all event when the duration is unmapped.
	BookingURL(durationID string) string
	// BookingCalLink resolves the "username/event-slug" form used by the
	// embedded booking widget.
	BookingCalLink(durationID string) string
}
