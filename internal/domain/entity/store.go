// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Store is the central entity of the marketplace: a merchant's storefront.
// It is exclusively owned by the user that created it and is never deleted.
type Store struct {
	ID            string            // Opaque document identifier.
	OwnerID       string            // ID of the user that created the store.
	Name          string            // Public storefront name.
	Description   string            // Optional free-form description.
	Category      string            // Category slug, e.g. "moda", "gastronomia".
	City          string            // Optional city slug, stored lower-cased.
	Address       string            // Physical address; required even for online stores.
	Phone         string            // Optional WhatsApp number (9 digits, starts with 9).
	CoverImage    string            // Optional URL of the main cover image.
	GalleryImages []string          // Optional URLs of all cover/gallery images.
	Tags          []string          // Search keywords, at most MaxStoreTags, no duplicates.
	SocialMedia   []SocialMediaLink // Optional platform/URL pairs.
	Location      *orb.Point        // Optional geocoordinates (lon, lat); nil for online-only stores.
	Counters      StoreCounters     // Non-negative engagement counters, zeroed at creation.
	Stars         float64           // Star rating, 0–5.
	CurrentPlan   SubscriptionPlan  // The one active plan reference; set at creation.
	Payments      []Payment         // Append-only payment history.
	Products      []*Product        // Attached products sub-collection. Never nil once fetched.
	CreatedAt     time.Time         // Drives the catalog's recency ordering.
	UpdatedAt     time.Time
}

// SocialMediaLink pairs a platform name with the merchant's URL on it.
type SocialMediaLink struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// StoreCounters groups the engagement counters kept on every store document.
// All values are non-negative and initialized to zero at creation.
type StoreCounters struct {
	Views          int64 `json:"views"`
	Clicks         int64 `json:"clicks"`
	WhatsappClicks int64 `json:"whatsapp_clicks"`
	WebClicks      int64 `json:"web_clicks"`
	ProductSells   int64 `json:"product_sells"`
	Followers      int64 `json:"followers"`
	OpinionsCount  int64 `json:"opinions_count"`
}

// MaxStoreTags is the upper bound on tags per store, enforced at creation time.
const MaxStoreTags = 10

// MaxTagWords is the upper bound on words within a single tag.
const MaxTagWords = 10

// HasLocation reports whether the store carries geocoordinates.
func (s *Store) HasLocation() bool {
	return s.Location != nil
}

// Latitude returns the store latitude, or 0 when no location is set.
func (s *Store) Latitude() float64 {
	if s.Location == nil {
		return 0
	}

	return s.Location.Lat()
}

// Longitude returns the store longitude, or 0 when no location is set.
func (s *Store) Longitude() float64 {
	if s.Location == nil {
		return 0
	}

	return s.Location.Lon()
}
