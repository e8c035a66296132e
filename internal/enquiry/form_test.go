// internal/enquiry/form_test.go
package enquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Base Field Validation
// ==========================

func TestForm_RequiresBaseFields(t *testing.T) {
	form := NewForm(testSpec())
	p := form.Paxes.Paxes()[0]
	form.Paxes.UpdateField(p.ID, "country", "India")
	require.NoError(t, form.Paxes.SetFile(p.ID, 0, testFile("a.pdf", 10)))

	vr := form.Validate()
	require.False(t, vr.Valid)
	assert.NotEmpty(t, vr.GetErrorsForField("name"))
	assert.NotEmpty(t, vr.GetErrorsForField("email"))
	assert.NotEmpty(t, vr.GetErrorsForField("phone"))

	form.Base = BaseFields{Name: "Asha Nair", Email: "asha@example.com", Phone: "+971501234567"}
	assert.True(t, form.Valid())
}

func TestForm_NameOptionalWhenSpecSaysSo(t *testing.T) {
	spec := testSpec()
	spec.NameRequired = false
	form := NewForm(spec)
	form.Base = BaseFields{Email: "asha@example.com", Phone: "+971501234567"}
	p := form.Paxes.Paxes()[0]
	form.Paxes.UpdateField(p.ID, "country", "India")
	require.NoError(t, form.Paxes.SetFile(p.ID, 0, testFile("a.pdf", 10)))

	assert.True(t, form.Valid())
}

func TestForm_RejectsMalformedContact(t *testing.T) {
	form := validForm(t, 1, 1)

	form.Base.Email = "not-an-email"
	vr := form.Validate()
	require.False(t, vr.Valid)
	require.Len(t, vr.GetErrorsForField("email"), 1)
	assert.Equal(t, "INVALID_EMAIL", vr.GetErrorsForField("email")[0].Code)

	form.Base.Email = "asha@example.com"
	form.Base.Phone = "abc"
	vr = form.Validate()
	require.False(t, vr.Valid)
	assert.Equal(t, "INVALID_PHONE", vr.GetErrorsForField("phone")[0].Code)
}

// ==========================
// Per-Pax Validation
// ==========================

func TestForm_EveryPaxMustBeComplete(t *testing.T) {
	form := validForm(t, 1, 1)
	second := form.Paxes.AddPax()

	vr := form.Validate()
	require.False(t, vr.Valid)
	assert.NotEmpty(t, vr.GetErrorsForField("paxes[1].country"))
	assert.NotEmpty(t, vr.GetErrorsForField("paxes[1].documents[0]"))

	form.Paxes.UpdateField(second.ID, "country", "Nepal")
	require.NoError(t, form.Paxes.SetFile(second.ID, 0, testFile("b.pdf", 10)))
	assert.True(t, form.Valid())
}

func TestForm_ZeroDocumentsBlocksSubmit(t *testing.T) {
	spec := testSpec()
	spec.Strategy = QuantitySummed{}
	spec.CategoryField = "documentCategory"
	spec.RequiredPaxFields = nil

	form := NewForm(spec)
	form.Base = BaseFields{Name: "Asha Nair", Email: "asha@example.com", Phone: "+971501234567"}
	p := form.Paxes.Paxes()[0]

	// No quantities picked: count is zero and the gate stays closed.
	vr := form.Validate()
	require.False(t, vr.Valid)
	require.Len(t, vr.GetErrorsForField("paxes[0].documents"), 1)
	assert.Equal(t, "NO_DOCUMENTS", vr.GetErrorsForField("paxes[0].documents")[0].Code)

	form.Paxes.IncrementDocType(p.ID, "Degree Certificate")
	require.NoError(t, form.Paxes.SetFile(p.ID, 0, testFile("degree.pdf", 10)))
	assert.True(t, form.Valid())
}

// ==========================
// Field Schema
// ==========================

func TestForm_FieldSchemaViolations(t *testing.T) {
	spec := testSpec()
	spec.FieldSchema = `{
		"type": "object",
		"properties": {
			"country": {"type": "string", "enum": ["India", "Nepal", "Philippines"]},
			"travelDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
		}
	}`

	form := NewForm(spec)
	form.Base = BaseFields{Name: "Asha Nair", Email: "asha@example.com", Phone: "+971501234567"}
	p := form.Paxes.Paxes()[0]
	require.NoError(t, form.Paxes.SetFile(p.ID, 0, testFile("a.pdf", 10)))

	form.Paxes.UpdateField(p.ID, "country", "Atlantis")
	form.Paxes.UpdateField(p.ID, "travelDate", "12/05/2026")

	vr := form.Validate()
	require.False(t, vr.Valid)
	assert.Equal(t, "SCHEMA_VIOLATION", vr.GetErrorsForField("paxes[0].country")[0].Code)
	assert.Equal(t, "SCHEMA_VIOLATION", vr.GetErrorsForField("paxes[0].travelDate")[0].Code)

	form.Paxes.UpdateField(p.ID, "country", "India")
	form.Paxes.UpdateField(p.ID, "travelDate", "2026-05-12")
	assert.True(t, form.Valid())
}

// ==========================
// Reset
// ==========================

func TestForm_Reset(t *testing.T) {
	form := validForm(t, 2, 2)

	form.Reset()

	assert.Equal(t, BaseFields{}, form.Base)
	require.Equal(t, 1, form.Paxes.Len())
	p := form.Paxes.Paxes()[0]
	assert.Empty(t, p.Fields)
	require.Len(t, p.Files, 1)
	assert.Nil(t, p.Files[0])
}
