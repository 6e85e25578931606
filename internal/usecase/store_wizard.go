// Package usecase contains the application-specific business rules.
package usecase

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/util"
)

// WizardStep identifies one state of the store-creation wizard.
type WizardStep int

// Wizard states, in forward order. Forward transitions pass through
// validation gates; backward transitions are unrestricted.
const (
	StepPlanSelection WizardStep = iota
	StepBasicInfo
	StepSocialAndTags
	StepLocation
	StepCoverImages
	StepReviewAndPayment
	StepSubmitted
)

var wizardStepNames = map[WizardStep]string{
	StepPlanSelection:    "plan_selection",
	StepBasicInfo:        "basic_info",
	StepSocialAndTags:    "social_and_tags",
	StepLocation:         "location",
	StepCoverImages:      "cover_images",
	StepReviewAndPayment: "review_and_payment",
	StepSubmitted:        "submitted",
}

func (s WizardStep) String() string {
	if name, ok := wizardStepNames[s]; ok {
		return name
	}

	return fmt.Sprintf("step_%d", int(s))
}

// phonePattern is the accepted mobile format: nine digits starting with 9.
var phonePattern = regexp.MustCompile(`^9\d{8}$`)

// ValidPhone reports whether a phone number matches the accepted format.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// StoreWizard replays the client wizard's gating over a submission. It is a
// pure state machine: no I/O, single-goroutine by contract.
type StoreWizard struct {
	step  WizardStep
	input *CreateStoreInput
}

// NewStoreWizard starts a wizard over the given submission at plan selection.
func NewStoreWizard(input *CreateStoreInput) *StoreWizard {
	return &StoreWizard{step: StepPlanSelection, input: input}
}

// Step returns the wizard's current step.
func (w *StoreWizard) Step() WizardStep {
	return w.step
}

// Back moves one step backward. Backward transitions have no gates.
func (w *StoreWizard) Back() {
	if w.step > StepPlanSelection {
		w.step--
	}
}

// Advance validates the current step's data and, on success, moves forward.
// On failure the step does not change and the gate's user-facing error is
// returned.
func (w *StoreWizard) Advance() error {
	if w.step == StepSubmitted {
		return nil
	}

	if err := w.validateStep(w.step); err != nil {
		return err
	}
	w.step++

	return nil
}

// JumpTo moves directly to a target step. Backward jumps always succeed;
// a forward jump validates every gate in between and leaves the step
// untouched when any gate fails.
func (w *StoreWizard) JumpTo(target WizardStep) error {
	if target <= w.step {
		w.step = target

		return nil
	}

	for step := w.step; step < target; step++ {
		if err := w.validateStep(step); err != nil {
			return err
		}
	}
	w.step = target

	return nil
}

// Run advances through every remaining gate until the terminal state.
func (w *StoreWizard) Run() error {
	for w.step < StepSubmitted {
		if err := w.Advance(); err != nil {
			return err
		}
	}

	return nil
}

// AddTag appends a tag to the submission, enforcing the tag rules.
func (w *StoreWizard) AddTag(tag string) error {
	if err := ValidateNewTag(w.input.Tags, tag); err != nil {
		return err
	}
	w.input.Tags = append(w.input.Tags, tag)

	return nil
}

func (w *StoreWizard) validateStep(step WizardStep) error {
	switch step {
	case StepPlanSelection:
		if !w.input.PlanType.Valid() {
			return domainerrors.ErrPlanNotSelected
		}
	case StepBasicInfo:
		return w.validateBasicInfo()
	case StepSocialAndTags:
		return ValidateTags(w.input.Tags)
	case StepLocation:
		return w.validateLocation()
	case StepCoverImages:
		// Cover images are optional; no gate.
	case StepReviewAndPayment:
		if strings.TrimSpace(w.input.PaymentMethod) == "" {
			return domainerrors.ErrPaymentMethodMissing
		}
	case StepSubmitted:
	}

	return nil
}

func (w *StoreWizard) validateBasicInfo() error {
	if strings.TrimSpace(w.input.Name) == "" {
		return domainerrors.ErrWizardStepBlocked.WithDetails("el nombre de la tienda es obligatorio")
	}
	if strings.TrimSpace(w.input.Address) == "" {
		return domainerrors.ErrWizardStepBlocked.WithDetails("la dirección es obligatoria")
	}
	if strings.TrimSpace(w.input.Category) == "" {
		return domainerrors.ErrWizardStepBlocked.WithDetails("la categoría es obligatoria")
	}
	if w.input.Phone != "" && !ValidPhone(w.input.Phone) {
		return domainerrors.ErrValidationFailed.WithDetails("el número de WhatsApp debe tener 9 dígitos y empezar con 9")
	}

	return nil
}

func (w *StoreWizard) validateLocation() error {
	hasLat, hasLon := w.input.Latitude != nil, w.input.Longitude != nil
	if hasLat != hasLon {
		return domainerrors.ErrValidationFailed.WithDetails("la ubicación requiere latitud y longitud")
	}
	if hasLat {
		if *w.input.Latitude < -90 || *w.input.Latitude > 90 || *w.input.Longitude < -180 || *w.input.Longitude > 180 {
			return domainerrors.ErrValidationFailed.WithDetails("las coordenadas no son válidas")
		}
	}

	return nil
}

// ValidateNewTag checks one tag against the existing list: the list stays
// at or under the limit, duplicates are compared case-sensitively and a tag
// cannot exceed the word limit.
func ValidateNewTag(existing []string, tag string) error {
	if strings.TrimSpace(tag) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("la etiqueta no puede estar vacía")
	}
	if len(existing) >= entity.MaxStoreTags {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("máximo %d etiquetas por tienda", entity.MaxStoreTags))
	}
	if slices.Contains(existing, tag) {
		return domainerrors.ErrValidationFailed.WithDetails("esta etiqueta ya fue agregada")
	}
	if util.CountWords(tag) > entity.MaxTagWords {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("una etiqueta no puede tener más de %d palabras", entity.MaxTagWords))
	}

	return nil
}

// ValidateTags checks a full tag list by replaying the per-tag rule.
func ValidateTags(tags []string) error {
	accepted := make([]string, 0, len(tags))
	for _, tag := range tags {
		if err := ValidateNewTag(accepted, tag); err != nil {
			return err
		}
		accepted = append(accepted, tag)
	}

	return nil
}
