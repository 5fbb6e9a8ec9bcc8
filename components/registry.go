// registry.go - Unveraenderliche Registry fuer Pipeline-Komponenten
//
// Dieses Modul enthaelt:
// - Registry: geordnete Name -> Descriptor Zuordnung
// - NewRegistry: Aufbau und Validierung einer Registry
// - Abfragen: Lookup, Filter und Auswahl nach Prioritaet
//
// Eine Registry wird einmal aufgebaut und danach nur noch gelesen.
// Damit sind alle Abfragen ohne Locks aus beliebig vielen Goroutinen nutzbar.
package components

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registry haelt die Komponenten in Einfuege-Reihenfolge
type Registry struct {
	entries *orderedmap.OrderedMap[string, ComponentDescriptor]
}

// NewRegistry baut eine Registry aus den gegebenen Eintraegen.
// Jeder Eintrag muss Name, Typ und Model-Familie haben; Namen muessen eindeutig sein.
func NewRegistry(entries ...NamedComponent) (*Registry, error) {
	m := orderedmap.New[string, ComponentDescriptor](len(entries))
	for _, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, &ComponentError{Op: "validate", Name: e.Name, Err: fmt.Errorf("%w: %w", ErrInvalidComponent, err)}
		}
		if _, exists := m.Get(e.Name); exists {
			return nil, &ComponentError{Op: "register", Name: e.Name, Err: ErrDuplicateComponent}
		}
		m.Set(e.Name, e.Config)
	}
	return &Registry{entries: m}, nil
}

func mustNewRegistry(entries ...NamedComponent) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len gibt die Anzahl der Eintraege zurueck
func (r *Registry) Len() int {
	return r.entries.Len()
}

// GetComponentConfig sucht eine Komponente exakt ueber ihren Namen
func (r *Registry) GetComponentConfig(name string) (ComponentDescriptor, bool) {
	return r.entries.Get(name)
}

// IsKnownComponent prueft ob ein Name registriert ist
func (r *Registry) IsKnownComponent(name string) bool {
	_, ok := r.entries.Get(name)
	return ok
}

// GetAllComponentConfigs gibt alle passenden Descriptoren in Tabellen-Reihenfolge zurueck
func (r *Registry) GetAllComponentConfigs(filter Filter) []ComponentDescriptor {
	configs := []ComponentDescriptor{}
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Matches(filter) {
			configs = append(configs, pair.Value)
		}
	}
	return configs
}

// GetAllComponentsWithNames arbeitet wie GetAllComponentConfigs,
// liefert aber zusaetzlich den Registry-Key jedes Treffers
func (r *Registry) GetAllComponentsWithNames(filter Filter) []NamedComponent {
	named := []NamedComponent{}
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Matches(filter) {
			named = append(named, NamedComponent{Name: pair.Key, Config: pair.Value})
		}
	}
	return named
}

// GetOptimalComponent waehlt die Komponente mit der hoechsten Prioritaet
// fuer Typ und Model-Familie. Bei Gleichstand gewinnt der erste Eintrag der Tabelle.
func (r *Registry) GetOptimalComponent(componentType ComponentType, modelFamily string) (ComponentDescriptor, bool) {
	best, ok := r.GetOptimalNamedComponent(componentType, modelFamily)
	return best.Config, ok
}

// GetOptimalNamedComponent arbeitet wie GetOptimalComponent und liefert zusaetzlich den Namen.
// Beide Kriterien muessen exakt passen, ein leerer Wert trifft keinen Eintrag.
func (r *Registry) GetOptimalNamedComponent(componentType ComponentType, modelFamily string) (NamedComponent, bool) {
	var (
		best  NamedComponent
		found bool
	)
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Type != componentType || pair.Value.ModelFamily != modelFamily {
			continue
		}
		if !found || pair.Value.Priority > best.Config.Priority {
			best, found = NamedComponent{Name: pair.Key, Config: pair.Value}, true
		}
	}

	if !found {
		slog.Debug("no component available", "type", componentType, "family", modelFamily)
		return NamedComponent{}, false
	}
	slog.Debug("selected component", "name", best.Name, "type", componentType, "family", modelFamily, "priority", best.Config.Priority)
	return best, true
}

// GetComponentNames gibt alle Namen in Tabellen-Reihenfolge zurueck
func (r *Registry) GetComponentNames() []string {
	names := make([]string, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// GetModelFamilies gibt alle Model-Familien in der Reihenfolge ihres ersten Auftretens zurueck
func (r *Registry) GetModelFamilies() []string {
	seen := make(map[string]struct{})
	var families []string
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := seen[pair.Value.ModelFamily]; ok {
			continue
		}
		seen[pair.Value.ModelFamily] = struct{}{}
		families = append(families, pair.Value.ModelFamily)
	}
	return families
}
