// internal/enquiry/form.go
package enquiry

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"egs-enquiry/internal/common/validation"
)

// BaseFields hold the applicant-independent contact data, entered once per
// submission.
type BaseFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FormSpec is the static definition of one enquiry form. The ten service
// forms differ only in these parameters; the runtime behavior is shared.
type FormSpec struct {
	Name         string
	DisplayName  string
	EndpointPath string // POST target, relative to the API base
	ReadPath     string // GET "my enquiries" path, relative to the API base

	NameRequired      bool
	RequiredPaxFields []string
	CategoryField     string   // selector that invalidates chosen quantities, "" if none
	DocumentTypes     []string // labels offered by the quantity picker, nil if none
	Strategy          CountStrategy

	// FieldSchema optionally constrains pax domain fields beyond presence
	// (formats, enums). JSON Schema source, validated with gojsonschema.
	FieldSchema string
}

// Form is one live instance of a spec: base fields plus the pax list.
type Form struct {
	Spec  *FormSpec
	Base  BaseFields
	Paxes *PaxList
}

// NewForm creates a form with empty base fields and a single fresh pax.
func NewForm(spec *FormSpec) *Form {
	return &Form{
		Spec:  spec,
		Paxes: NewPaxList(spec.Strategy, spec.CategoryField),
	}
}

// Validate runs the full submit gate: base required fields, per-pax required
// fields, slot completeness, and the optional field schema.
func (f *Form) Validate() *validation.ValidationResult {
	var errs []validation.ValidationError

	if f.Spec.NameRequired && !validation.NotEmpty(f.Base.Name) {
		errs = append(errs, validation.RequiredError("name"))
	}
	if !validation.NotEmpty(f.Base.Email) {
		errs = append(errs, validation.RequiredError("email"))
	} else if !validation.ValidateEmail(strings.TrimSpace(f.Base.Email)) {
		errs = append(errs, validation.ValidationError{
			Field:   "email",
			Message: "invalid email address",
			Code:    "INVALID_EMAIL",
		})
	}
	if !validation.NotEmpty(f.Base.Phone) {
		errs = append(errs, validation.RequiredError("phone"))
	} else if !validation.ValidatePhone(strings.TrimSpace(f.Base.Phone)) {
		errs = append(errs, validation.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
			Code:    "INVALID_PHONE",
		})
	}

	for i, p := range f.Paxes.Paxes() {
		for _, field := range f.Spec.RequiredPaxFields {
			if !validation.NotEmpty(p.Fields[field]) {
				errs = append(errs, validation.RequiredError(fmt.Sprintf("paxes[%d].%s", i, field)))
			}
		}

		n := f.Paxes.DocumentCount(p)
		if n < 1 {
			errs = append(errs, validation.ValidationError{
				Field:   fmt.Sprintf("paxes[%d].documents", i),
				Message: "select at least one document",
				Code:    "NO_DOCUMENTS",
			})
		}
		for slot, file := range p.Files {
			if file == nil {
				errs = append(errs, validation.ValidationError{
					Field:   fmt.Sprintf("paxes[%d].documents[%d]", i, slot),
					Message: "attach the required document",
					Code:    "FILE_MISSING",
				})
			}
		}

		errs = append(errs, f.validateFieldSchema(i, p)...)
	}

	return validation.NewResult(errs)
}

// validateFieldSchema checks one pax's domain fields against the form's JSON
// schema, when the spec declares one.
func (f *Form) validateFieldSchema(paxIndex int, p *Pax) []validation.ValidationError {
	if f.Spec.FieldSchema == "" {
		return nil
	}

	doc := make(map[string]interface{}, len(p.Fields))
	for k, v := range p.Fields {
		if v != "" {
			doc[k] = v
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(f.Spec.FieldSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return []validation.ValidationError{{
			Field:   fmt.Sprintf("paxes[%d]", paxIndex),
			Message: err.Error(),
			Code:    "SCHEMA_ERROR",
		}}
	}

	var errs []validation.ValidationError
	for _, schemaErr := range result.Errors() {
		errs = append(errs, validation.ValidationError{
			Field:   fmt.Sprintf("paxes[%d].%s", paxIndex, schemaErr.Field()),
			Message: schemaErr.Description(),
			Code:    "SCHEMA_VIOLATION",
		})
	}
	return errs
}

// Valid is the pure submit gate recomputed on every state change.
func (f *Form) Valid() bool {
	return f.Validate().Valid
}

// Reset restores the initial shape: empty base fields and one fresh pax.
func (f *Form) Reset() {
	f.Base = BaseFields{}
	f.Paxes.Reset()
}
