// Package model contains the persistence representations of the domain
// entities, decorated with Firestore struct tags.
package model

import (
	"time"
)

// StoreModel mirrors a document in the 'stores' collection.
// The document ID is not stored as a field; it is taken from the reference.
type StoreModel struct {
	OwnerID       string                `firestore:"ownerId"`
	Name          string                `firestore:"name"`
	Description   string                `firestore:"description"`
	Category      string                `firestore:"category"`
	City          string                `firestore:"city"`
	Address       string                `firestore:"address"`
	Phone         string                `firestore:"phone"`
	CoverImage    string                `firestore:"coverImage"`
	GalleryImages []string              `firestore:"galleryImages"`
	Tags          []string              `firestore:"tags"`
	SocialMedia   []SocialMediaModel    `firestore:"socialMedia"`
	Latitude      *float64              `firestore:"latitude"`
	Longitude     *float64              `firestore:"longitude"`
	Counters      CountersModel         `firestore:"counters"`
	Stars         float64               `firestore:"stars"`
	CurrentPlan   SubscriptionPlanModel `firestore:"currentPlan"`
	Payments      []PaymentModel        `firestore:"payments"`
	CreatedAt     time.Time             `firestore:"createdAt,serverTimestamp"`
	UpdatedAt     time.Time             `firestore:"updatedAt,serverTimestamp"`
}

// SocialMediaModel is one platform/URL pair on a store document.
type SocialMediaModel struct {
	Platform string `firestore:"platform"`
	Link     string `firestore:"link"`
}

// CountersModel mirrors the nested 'counters' map. The field names double
// as the increment paths used by the stats worker ("counters.views" etc.).
type CountersModel struct {
	Views          int64 `firestore:"views"`
	Clicks         int64 `firestore:"clicks"`
	WhatsappClicks int64 `firestore:"whatsapp_clicks"`
	WebClicks      int64 `firestore:"web_clicks"`
	ProductSells   int64 `firestore:"product_sells"`
	Followers      int64 `firestore:"followers"`
	OpinionsCount  int64 `firestore:"opinions_count"`
}

// SubscriptionPlanModel mirrors the nested 'currentPlan' map.
type SubscriptionPlanModel struct {
	PlanType        string     `firestore:"planType"`
	StartDate       time.Time  `firestore:"startDate"`
	EndDate         time.Time  `firestore:"endDate"`
	IsActive        bool       `firestore:"isActive"`
	DiscountEndDate *time.Time `firestore:"discountEndDate"`
}

// PaymentModel is one entry of the append-only 'payments' array.
type PaymentModel struct {
	PlanType      string    `firestore:"planType"`
	Amount        float64   `firestore:"amount"`
	PaymentDate   time.Time `firestore:"paymentDate"`
	CoverageEnd   time.Time `firestore:"coverageEnd"`
	TransactionID string    `firestore:"transactionId"`
}
