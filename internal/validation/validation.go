// Package validation implements the request validation component.
//
// A raw input map is checked against a per-field rule table. Failures
// accumulate as human-readable messages per field; validation never
// short-circuits across fields, so the caller receives every problem at
// once. Successful validation yields a normalized value map (JSON numbers
// are coerced to int where an integer rule applies).
//
//	clean, errs, err := v.Validate(input, validation.Rules{
//		"title":      {validation.Required(), validation.String(), validation.Max(50)},
//		"valoration": {validation.Required(), validation.Integer(), validation.Min(1), validation.Max(5)},
//	})
//
// The unique and exists rules consult the datastore through the Lookup
// interface, keeping referential checks in the validation layer rather
// than relying on database constraint errors. A failing lookup is a store
// fault, reported through Validate's error return rather than as a field
// message.
package validation

import (
	"fmt"
	"math"
)

// Lookup answers existence questions against the backing store.
// *database.Database satisfies it.
type Lookup interface {
	Exists(table, column string, value any) (bool, error)
	ExistsExcept(table, column string, value any, exceptID uint) (bool, error)
}

// Errors maps a field name to the messages of every rule it failed.
type Errors map[string][]string

// Rules maps a field name to the ordered list of rules applied to it.
type Rules map[string][]Rule

// Rule checks one constraint on one field. A zero result message means the
// rule passed; the returned value (possibly coerced) feeds the next rule.
// A non-nil error means the rule could not be evaluated at all.
type Rule struct {
	required bool
	check    func(v *Validator, field string, value any, input map[string]any) (any, string, error)
}

// Validator runs rule tables against raw input maps.
type Validator struct {
	lookup Lookup
}

// New creates a Validator backed by the given store lookup.
func New(lookup Lookup) *Validator {
	return &Validator{lookup: lookup}
}

// Validate checks input against rules. On success it returns the normalized
// map of the fields named by rules and a nil error map. On validation
// failure it returns nil and the accumulated field errors. The final error
// is non-nil only when a store lookup failed, in which case the input's
// validity is unknown.
//
// Absent fields fail only their Required rule; the remaining rules for an
// absent field are skipped.
func (v *Validator) Validate(input map[string]any, rules Rules) (map[string]any, Errors, error) {
	clean := make(map[string]any, len(rules))
	errs := make(Errors)

	for field, fieldRules := range rules {
		value, present := input[field]
		if value == nil {
			present = false
		}

		if !present {
			for _, rule := range fieldRules {
				if rule.required {
					errs[field] = append(errs[field], fmt.Sprintf("The %s field is required.", field))
					break
				}
			}
			continue
		}

		failed := false
		for _, rule := range fieldRules {
			if rule.check == nil {
				continue
			}
			normalized, msg, err := rule.check(v, field, value, input)
			if err != nil {
				return nil, nil, fmt.Errorf("%s lookup failed: %w", field, err)
			}
			if msg != "" {
				errs[field] = append(errs[field], msg)
				failed = true
				continue
			}
			value = normalized
		}
		if !failed {
			clean[field] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return clean, nil, nil
}

// Required marks the field as mandatory. It has no effect on present
// values; absence or an explicit null fails it.
func Required() Rule {
	return Rule{required: true}
}

// String requires the value to be a JSON string.
func String() Rule {
	return Rule{check: func(_ *Validator, field string, value any, _ map[string]any) (any, string, error) {
		if _, ok := value.(string); !ok {
			return value, fmt.Sprintf("The %s must be a string.", field), nil
		}
		return value, "", nil
	}}
}

// Integer requires a whole number and coerces it to int. JSON numbers
// arrive as float64; fractional values are rejected.
func Integer() Rule {
	return Rule{check: func(_ *Validator, field string, value any, _ map[string]any) (any, string, error) {
		switch n := value.(type) {
		case int:
			return n, "", nil
		case int64:
			return int(n), "", nil
		case float64:
			if n == math.Trunc(n) {
				return int(n), "", nil
			}
		}
		return value, fmt.Sprintf("The %s must be an integer.", field), nil
	}}
}

// Boolean requires true/false (or the numeric 0/1 JSON equivalents).
func Boolean() Rule {
	return Rule{check: func(_ *Validator, field string, value any, _ map[string]any) (any, string, error) {
		switch n := value.(type) {
		case bool:
			return n, "", nil
		case float64:
			if n == 0 {
				return false, "", nil
			}
			if n == 1 {
				return true, "", nil
			}
		case int:
			if n == 0 {
				return false, "", nil
			}
			if n == 1 {
				return true, "", nil
			}
		}
		return value, fmt.Sprintf("The %s field must be true or false.", field), nil
	}}
}

// Email requires a syntactically valid email address.
func Email() Rule {
	return Rule{check: func(_ *Validator, field string, value any, _ map[string]any) (any, string, error) {
		s, ok := value.(string)
		if !ok || len(s) > 254 || !emailPattern.MatchString(s) {
			return value, fmt.Sprintf("The %s must be a valid email address.", field), nil
		}
		return value, "", nil
	}}
}

// Max bounds a string's length or an integer's value at n inclusive.
func Max(n int) Rule {
	return Rule{check: func(_ *Validator, field string, value any, _ map[string]any) (any, string, error) {
		switch v := value.(type) {
		case string:
			if len([]rune(v)) > n {
				return value, fmt.Sprintf("The %s must not be greater than %d characters.", field, n), nil
			}
		case int:
			if v > n {
				return value, fmt.Sprintf("The %s must not be greater than %d.", field, n), nil
			}
		case float64:
			if v > float64(n) {
				return value, fmt.Sprintf("The %s must not be greater than %d.", field, n), nil
			}
		}
		return value, "", nil
	}}
}

// Min bounds a string's length or an integer's value at n inclusive.
func Min(n int) Rule {
	return Rule{check: func(_ *Validator, field string, value any, _ map[string]any) (any, string, error) {
		switch v := value.(type) {
		case string:
			if len([]rune(v)) < n {
				return value, fmt.Sprintf("The %s must be at least %d characters.", field, n), nil
			}
		case int:
			if v < n {
				return value, fmt.Sprintf("The %s must be at least %d.", field, n), nil
			}
		case float64:
			if v < float64(n) {
				return value, fmt.Sprintf("The %s must be at least %d.", field, n), nil
			}
		}
		return value, "", nil
	}}
}

// Confirmed requires a matching <field>_confirmation value in the input.
func Confirmed() Rule {
	return Rule{check: func(_ *Validator, field string, value any, input map[string]any) (any, string, error) {
		confirmation, ok := input[field+"_confirmation"]
		if !ok || confirmation != value {
			return value, fmt.Sprintf("The %s confirmation does not match.", field), nil
		}
		return value, "", nil
	}}
}

// Unique fails when a row in table already holds this value in column.
func Unique(table, column string) Rule {
	return Rule{check: func(v *Validator, field string, value any, _ map[string]any) (any, string, error) {
		taken, err := v.lookup.Exists(table, column, value)
		if err != nil {
			return value, "", err
		}
		if taken {
			return value, fmt.Sprintf("The %s has already been taken.", field), nil
		}
		return value, "", nil
	}}
}

// UniqueExcept behaves like Unique but ignores the row with exceptID,
// so updates do not collide with the row being updated.
func UniqueExcept(table, column string, exceptID uint) Rule {
	return Rule{check: func(v *Validator, field string, value any, _ map[string]any) (any, string, error) {
		taken, err := v.lookup.ExistsExcept(table, column, value, exceptID)
		if err != nil {
			return value, "", err
		}
		if taken {
			return value, fmt.Sprintf("The %s has already been taken.", field), nil
		}
		return value, "", nil
	}}
}

// Exists fails unless a row in table holds this value in column. Foreign
// keys are checked here, at write time, rather than via database
// constraints.
func Exists(table, column string) Rule {
	return Rule{check: func(v *Validator, field string, value any, _ map[string]any) (any, string, error) {
		found, err := v.lookup.Exists(table, column, normalizeID(value))
		if err != nil {
			return value, "", err
		}
		if !found {
			return value, fmt.Sprintf("The selected %s is invalid.", field), nil
		}
		return value, "", nil
	}}
}

// normalizeID converts JSON float64 identifiers to int for SQL comparison.
func normalizeID(value any) any {
	if f, ok := value.(float64); ok && f == math.Trunc(f) {
		return int(f)
	}
	return value
}
