// Package form implements the application form state machine: field values,
// synchronous validation rules, dependent recomputation and capped card
// selections. A Form gates submission; the assembler consumes its values.
package form

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Rule validates a single field in the context of the whole form. A nil
// return means the rule passed.
type Rule func(f *Form, field string) *FieldError

// FieldSpec declares one field. Declaration order is significant: validation
// errors are reported in spec order, and for each field only the first
// failing rule is reported.
type FieldSpec struct {
	Name  string
	List  bool
	Rules []Rule
}

// RecomputeFunc runs after every SetField/SetList call with the name of the
// changed field. It implements dependent field behavior such as clearing the
// state when the region moves away from the United States.
type RecomputeFunc func(f *Form, changed string)

// Form holds mutable field state for one in-progress submission.
type Form struct {
	specs     []FieldSpec
	values    map[string]string
	lists     map[string][]string
	defaults  map[string]string
	listInits map[string][]string
	recompute RecomputeFunc
}

// New builds a form from field specs. Defaults are captured for Reset.
func New(specs []FieldSpec, recompute RecomputeFunc) *Form {
	f := &Form{
		specs:     specs,
		values:    make(map[string]string, len(specs)),
		lists:     make(map[string][]string),
		defaults:  make(map[string]string),
		listInits: make(map[string][]string),
		recompute: recompute,
	}
	return f
}

// WithDefault seeds a scalar field value, also used by Reset.
func (f *Form) WithDefault(name, value string) *Form {
	f.defaults[name] = value
	f.values[name] = value
	return f
}

// WithDefaultList seeds a list field value, also used by Reset.
func (f *Form) WithDefaultList(name string, values []string) *Form {
	f.listInits[name] = append([]string(nil), values...)
	f.lists[name] = append([]string(nil), values...)
	return f
}

// SetField updates one scalar field and runs dependent recomputation.
func (f *Form) SetField(name, value string) {
	f.values[name] = value
	if f.recompute != nil {
		f.recompute(f, name)
	}
}

// SetList replaces a list field and runs dependent recomputation.
func (f *Form) SetList(name string, values []string) {
	f.lists[name] = append([]string(nil), values...)
	if f.recompute != nil {
		f.recompute(f, name)
	}
}

// Field returns the current value of a scalar field.
func (f *Form) Field(name string) string { return f.values[name] }

// List returns the current value of a list field.
func (f *Form) List(name string) []string { return f.lists[name] }

// setQuiet updates a field without triggering recomputation. Recompute
// functions use it to avoid re-entrancy.
func (f *Form) setQuiet(name, value string) { f.values[name] = value }

func (f *Form) setListQuiet(name string, values []string) { f.lists[name] = values }

// ValidateAll runs every rule. It returns nil when the form is valid,
// otherwise one FieldError per failing field in declaration order. The first
// entry is the one a caller should surface and focus.
func (f *Form) ValidateAll() []FieldError {
	var errs []FieldError
	for _, spec := range f.specs {
		for _, rule := range spec.Rules {
			if fe := rule(f, spec.Name); fe != nil {
				errs = append(errs, *fe)
				break
			}
		}
	}
	return errs
}

// Valid reports whether the form currently passes every rule.
func (f *Form) Valid() bool { return len(f.ValidateAll()) == 0 }

// Reset restores every field to its default value and clears all lists.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.specs))
	for name, v := range f.defaults {
		f.values[name] = v
	}
	f.lists = make(map[string][]string)
	for name, vs := range f.listInits {
		f.lists[name] = append([]string(nil), vs...)
	}
}
