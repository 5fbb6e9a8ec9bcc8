// types.go - Typen fuer die System-Komponenten Registry
//
// Enthaelt:
// - ComponentType: Art der Komponente (vae, clip, t5, ...)
// - ComponentDescriptor: unveraenderliche Beschreibung einer Komponente
// - NamedComponent: Descriptor zusammen mit seinem Registry-Key
// - Filter: optionale Filterkriterien fuer Abfragen
// - ComponentError: Fehler beim Aufbau einer Registry
package components

import (
	"errors"
	"fmt"
)

// =============================================================================
// KOMPONENTEN-TYPEN
// =============================================================================

// ComponentType identifiziert die Rolle einer Komponente in der Pipeline
type ComponentType string

// Unterstuetzte Komponenten-Typen
const (
	TypeVAE        ComponentType = "vae"
	TypeCLIP       ComponentType = "clip"
	TypeT5         ComponentType = "t5"
	TypeCLIPVision ComponentType = "clip_vision"
	TypeLLM        ComponentType = "llm"
)

// String implementiert fmt.Stringer
func (t ComponentType) String() string {
	return string(t)
}

// IsValid prueft ob der Typ zu den eingebauten Typen gehoert.
// Eigene Registries duerfen weitere Typen verwenden.
func (t ComponentType) IsValid() bool {
	switch t {
	case TypeVAE, TypeCLIP, TypeT5, TypeCLIPVision, TypeLLM:
		return true
	}
	return false
}

// GetSupportedComponentTypes gibt alle bekannten Komponenten-Typen zurueck
func GetSupportedComponentTypes() []ComponentType {
	return []ComponentType{TypeVAE, TypeCLIP, TypeT5, TypeCLIPVision, TypeLLM}
}

// =============================================================================
// DESCRIPTOR
// =============================================================================

// ComponentDescriptor beschreibt eine ladbare Komponente.
// Werte werden kopiert, eine Registry gibt nie Referenzen auf ihre Eintraege heraus.
type ComponentDescriptor struct {
	Type        ComponentType `json:"type" validate:"required"`
	ModelFamily string        `json:"model_family" validate:"required"`
	Priority    int           `json:"priority"` // Hoeher = bevorzugt
}

// Matches prueft ob der Descriptor alle gesetzten Filterfelder erfuellt
func (d ComponentDescriptor) Matches(f Filter) bool {
	if f.Type != "" && d.Type != f.Type {
		return false
	}
	if f.ModelFamily != "" && d.ModelFamily != f.ModelFamily {
		return false
	}
	return true
}

// NamedComponent verbindet einen Descriptor mit seinem Registry-Key,
// damit Aufrufer die Komponente spaeter per Name anfordern koennen
type NamedComponent struct {
	Name   string              `json:"name" validate:"required"`
	Config ComponentDescriptor `json:"config"`
}

// Filter schraenkt Abfragen ein. Ein leeres Feld bedeutet "keine Einschraenkung".
type Filter struct {
	Type        ComponentType
	ModelFamily string
}

// =============================================================================
// ERROR TYPEN
// =============================================================================

var (
	// ErrDuplicateComponent wird gemeldet wenn ein Name mehrfach registriert wird
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrInvalidComponent wird gemeldet wenn ein Eintrag unvollstaendig ist
	ErrInvalidComponent = errors.New("invalid component")
)

// ComponentError repraesentiert einen Fehler beim Aufbau einer Registry
type ComponentError struct {
	Op   string // Operation (register, validate)
	Name string // Betroffene Komponente
	Err  error  // Urspruenglicher Fehler
}

// Error implementiert das error Interface
func (e *ComponentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("components %s [%s]: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("components %s: %v", e.Op, e.Err)
}

// Unwrap ermoeglicht errors.Is/As
func (e *ComponentError) Unwrap() error {
	return e.Err
}
