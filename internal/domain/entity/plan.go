// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PlanType identifies one of the fixed subscription tiers.
type PlanType string

// The four subscription tiers offered to merchants.
const (
	PlanFreemium PlanType = "freemium"
	PlanCrece    PlanType = "crece"
	PlanProPlus  PlanType = "pro+"
	PlanEmpresa  PlanType = "empresa"
)

// Valid reports whether the plan type is one of the known tiers.
func (t PlanType) Valid() bool {
	switch t {
	case PlanFreemium, PlanCrece, PlanProPlus, PlanEmpresa:
		return true
	}

	return false
}

// PlanDefinition is a static catalog entry describing a purchasable plan.
type PlanDefinition struct {
	Name       string   `json:"name"`        // Visible name, e.g. "Plan Crece".
	WeeklyCost float64  `json:"weekly_cost"` // In local currency (S/).
	Features   []string `json:"features"`    // Marketing bullets.
	PlanType   PlanType `json:"plan_type"`
}

// SubscriptionPlan is a store's live instance of a chosen plan.
// A store always has exactly one active plan reference at creation.
type SubscriptionPlan struct {
	PlanType        PlanType   `json:"plan_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	IsActive        bool       `json:"is_active"`
	DiscountEndDate *time.Time `json:"discount_end_date,omitempty"`
}

// Payment records a single charge against a store's plan.
// The payment history is append-only and never mutated after creation.
type Payment struct {
	PlanType      PlanType  `json:"plan_type"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	CoverageEnd   time.Time `json:"coverage_end"`
	TransactionID string    `json:"transaction_id"`
}

// PlanCatalog is the static catalog offered on the store-creation wizard's
// first step. Weekly costs follow the published price list.
var PlanCatalog = []PlanDefinition{
	{
		Name:       "Plan Freemium",
		WeeklyCost: 6.00,
		Features:   []string{"Catálogo con imágenes", "Contacto por WhatsApp", "Acceso a comunidad", "Acompañamiento gratuito"},
		PlanType:   PlanFreemium,
	},
	{
		Name:       "Plan Crece",
		WeeklyCost: 18.00,
		Features:   []string{"Todo lo anterior +", "Catálogo con video", "Posicionamiento local", "Soporte personalizado"},
		PlanType:   PlanCrece,
	},
	{
		Name:       "Plan Pro+",
		WeeklyCost: 36.00,
		Features:   []string{"Todo lo anterior +", "Publicidad destacada", "Prioridad en búsquedas", "Estadísticas", "Asesoría mensual"},
		PlanType:   PlanProPlus,
	},
	{
		Name:       "Publicidad Empresarial",
		WeeklyCost: 100.00,
		Features:   []string{"Para empresas que desean promocionar productos a nivel nacional"},
		PlanType:   PlanEmpresa,
	},
}

// FindPlanDefinition looks up a catalog entry by plan type.
func FindPlanDefinition(t PlanType) (PlanDefinition, bool) {
	for _, def := range PlanCatalog {
		if def.PlanType == t {
			return def, true
		}
	}

	return PlanDefinition{}, false
}
