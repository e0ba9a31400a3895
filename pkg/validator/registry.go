package validator

import (
	"fmt"
	"slices"
	"sync"
)

// Predicate reports whether a value satisfies a constraint.
type Predicate func(value string) bool

// Constraint is a named rule: the predicate plus the message reported when
// it fails.
type Constraint struct {
	Name           string
	Message        string
	TranslationKey string
	Check          Predicate
}

// Built-in constraint names.
const (
	RuleEmail            = "email"
	RuleFrenchPhone      = "french_phone"
	RuleFrenchPostalCode = "french_postal_code"
	RuleUUID             = "uuid"
	RuleIBAN             = "iban"
	RuleISODate          = "iso_date"
)

var builtins = []Constraint{
	{Name: RuleEmail, Message: "Invalid email address", TranslationKey: "validation.email", Check: IsEmail},
	{Name: RuleFrenchPhone, Message: "Invalid French phone number", TranslationKey: "validation.french_phone", Check: IsFrenchPhone},
	{Name: RuleFrenchPostalCode, Message: "Invalid French postal code format", TranslationKey: "validation.french_postal_code", Check: IsFrenchPostalCode},
	{Name: RuleUUID, Message: "Invalid UUID format", TranslationKey: "validation.uuid", Check: IsUUID},
	{Name: RuleIBAN, Message: "Invalid IBAN format", TranslationKey: "validation.iban", Check: IsIBAN},
	{Name: RuleISODate, Message: "Invalid ISO 8601 date format (expected yyyy-MM-dd)", TranslationKey: "validation.iso_date", Check: IsISODate},
}

// Registry maps rule names to constraints. It is safe for concurrent use;
// registration normally happens once at startup.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Constraint
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Constraint)}
}

// NewDefaultRegistry returns a registry holding the built-in constraints.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range builtins {
		r.MustRegister(c)
	}
	return r
}

// Register adds c under c.Name.
func (r *Registry) Register(c Constraint) error {
	if c.Name == "" || c.Check == nil {
		return ErrInvalidConstraint
	}
	if c.Message == "" {
		c.Message = "is invalid"
	}
	if c.TranslationKey == "" {
		c.TranslationKey = "validation." + c.Name
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[c.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, c.Name)
	}
	r.rules[c.Name] = c
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(c Constraint) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the constraint registered under name.
func (r *Registry) Lookup(name string) (Constraint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rules[name]
	return c, ok
}

// Names lists the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Check evaluates the named rule against value.
func (r *Registry) Check(name, value string) (bool, error) {
	c, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return c.Check(value), nil
}

// Field builds one Rule per name for the given field value, ready for Apply.
func (r *Registry) Field(field, value string, names ...string) ([]Rule, error) {
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		c, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		rules = append(rules, c.Rule(field, value))
	}
	return rules, nil
}

// Validate applies the named rules to a single field.
func (r *Registry) Validate(field, value string, names ...string) error {
	rules, err := r.Field(field, value, names...)
	if err != nil {
		return err
	}
	return Apply(rules...)
}

// Rule binds the constraint to a field value.
func (c Constraint) Rule(field, value string) Rule {
	check := c.Check
	return Rule{
		Check: func() bool { return check(value) },
		Error: ValidationError{
			Field:          field,
			Message:        c.Message,
			TranslationKey: c.TranslationKey,
			TranslationValues: map[string]any{
				"field": field,
				"rule":  c.Name,
			},
		},
	}
}

// Default is the process-wide registry used by the package-level helpers.
var Default = NewDefaultRegistry()

// Register adds a constraint to the Default registry.
func Register(c Constraint) error {
	return Default.Register(c)
}

// Check evaluates a named rule from the Default registry.
func Check(name, value string) (bool, error) {
	return Default.Check(name, value)
}

// Validate applies named rules from the Default registry to one field.
func Validate(field, value string, names ...string) error {
	return Default.Validate(field, value, names...)
}

// MustRegister adds a constraint to the Default registry and panics on error.
func MustRegister(c Constraint) {
	Default.MustRegister(c)
}
