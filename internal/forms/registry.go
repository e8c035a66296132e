// Package forms declares the static definitions of every enquiry form. The
// runtime behavior is shared; forms differ only in endpoint, required fields,
// and how the per-pax document count is derived.
package forms

import (
	"egs-enquiry/internal/enquiry"
)

// Canonical form names.
const (
	MEAAttestation  = "mea-attestation"
	PCCLegalization = "pcc-legalization"
	HRDAttestation  = "hrd-attestation"
	Translation     = "translation"
	EVisa           = "e-visa"
	StickerVisa     = "sticker-visa"
	Insurance       = "insurance"
	DummyTicket     = "dummy-ticket"
	MeetGreet       = "meet-greet"
	Appointment     = "appointment"
)

var specs = []*enquiry.FormSpec{
	{
		Name:              MEAAttestation,
		DisplayName:       "MEA Attestation",
		EndpointPath:      "mea/mea-attestation/enquiry",
		ReadPath:          "mea/mea-attestation/enquiry/my",
		RequiredPaxFields: []string{"country", "documentCategory"},
		CategoryField:     "documentCategory",
		DocumentTypes: []string{
			"Degree Certificate",
			"Birth Certificate",
			"Marriage Certificate",
			"Commercial Document",
		},
		Strategy: enquiry.QuantitySummed{},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"country": {"type": "string", "minLength": 2},
				"documentCategory": {"type": "string", "enum": ["Educational", "Personal", "Commercial"]}
			}
		}`,
	},
	{
		Name:              PCCLegalization,
		DisplayName:       "PCC Legalization",
		EndpointPath:      "pcc/pcc-legalization/enquiry",
		ReadPath:          "pcc/pcc-legalization/enquiry/my",
		RequiredPaxFields: []string{"country"},
		Strategy:          enquiry.UserEnteredCount{},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"country": {"type": "string", "minLength": 2}
			}
		}`,
	},
	{
		Name:              HRDAttestation,
		DisplayName:       "HRD Attestation",
		EndpointPath:      "hrd/hrd-attestation/enquiry",
		ReadPath:          "hrd/hrd-attestation/enquiry/my",
		RequiredPaxFields: []string{"state", "documentCategory"},
		CategoryField:     "documentCategory",
		DocumentTypes: []string{
			"Degree Certificate",
			"Diploma Certificate",
			"Transcript",
		},
		Strategy: enquiry.QuantitySummed{},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"state": {"type": "string", "minLength": 2},
				"documentCategory": {"type": "string", "enum": ["Educational"]}
			}
		}`,
	},
	{
		Name:              Translation,
		DisplayName:       "Certified Translation",
		EndpointPath:      "translation/translation/enquiry",
		ReadPath:          "translation/translation/enquiry/my",
		RequiredPaxFields: []string{"sourceLanguage", "targetLanguage"},
		Strategy:          enquiry.UserEnteredCount{},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"sourceLanguage": {"type": "string", "minLength": 2},
				"targetLanguage": {"type": "string", "minLength": 2}
			}
		}`,
	},
	{
		Name:              EVisa,
		DisplayName:       "E-Visa",
		EndpointPath:      "evisa/e-visa/enquiry",
		ReadPath:          "evisa/e-visa/enquiry/my",
		NameRequired:      true,
		RequiredPaxFields: []string{"country", "visaType", "travelDate"},
		Strategy:          enquiry.FixedCount{N: 1},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"country": {"type": "string", "minLength": 2},
				"visaType": {"type": "string", "enum": ["Tourist", "Business", "Transit"]},
				"travelDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
			}
		}`,
	},
	{
		Name:              StickerVisa,
		DisplayName:       "Sticker Visa",
		EndpointPath:      "visa/sticker-visa/enquiry",
		ReadPath:          "visa/sticker-visa/enquiry/my",
		NameRequired:      true,
		RequiredPaxFields: []string{"country", "visaType", "travelDate"},
		// passport scan plus photograph
		Strategy: enquiry.FixedCount{N: 2},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"country": {"type": "string", "minLength": 2},
				"visaType": {"type": "string", "enum": ["Tourist", "Business", "Work", "Student"]},
				"travelDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
			}
		}`,
	},
	{
		Name:              Insurance,
		DisplayName:       "Travel Insurance",
		EndpointPath:      "insurance/enquiry",
		ReadPath:          "insurance/enquiry/my",
		NameRequired:      true,
		RequiredPaxFields: []string{"insuranceType", "startDate", "endDate"},
		Strategy:          enquiry.FixedCount{N: 1},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"insuranceType": {"type": "string", "enum": ["Single Trip", "Multi Trip", "Student", "Family"]},
				"startDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
				"endDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
			}
		}`,
	},
	{
		Name:              DummyTicket,
		DisplayName:       "Dummy Ticket",
		EndpointPath:      "dummy-ticket/create",
		ReadPath:          "dummy-ticket/my",
		NameRequired:      true,
		RequiredPaxFields: []string{"fromCity", "toCity", "travelDate", "ticketType"},
		Strategy:          enquiry.FixedCount{N: 1},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"fromCity": {"type": "string", "minLength": 2},
				"toCity": {"type": "string", "minLength": 2},
				"travelDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
				"ticketType": {"type": "string", "enum": ["One Way", "Round Trip"]}
			}
		}`,
	},
	{
		Name:              MeetGreet,
		DisplayName:       "Meet & Greet",
		EndpointPath:      "meet-greet/meet-greet/enquiry",
		ReadPath:          "meet-greet/meet-greet/enquiry/my",
		NameRequired:      true,
		RequiredPaxFields: []string{"airport", "serviceType", "serviceDate"},
		Strategy:          enquiry.FixedCount{N: 1},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"airport": {"type": "string", "minLength": 3},
				"serviceType": {"type": "string", "enum": ["Arrival", "Departure", "Transit"]},
				"serviceDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
			}
		}`,
	},
	{
		Name:              Appointment,
		DisplayName:       "Appointment Submission",
		EndpointPath:      "appointment/appointment-submission/enquiry",
		ReadPath:          "appointment/appointment-submission/enquiry/my",
		RequiredPaxFields: []string{"country", "visaCategory", "preferredDate"},
		Strategy:          enquiry.FixedCount{N: 1},
		FieldSchema: `{
			"type": "object",
			"properties": {
				"country": {"type": "string", "minLength": 2},
				"visaCategory": {"type": "string", "minLength": 2},
				"preferredDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
			}
		}`,
	},
}

var byName = func() map[string]*enquiry.FormSpec {
	m := make(map[string]*enquiry.FormSpec, len(specs))
	for _, s := range specs {
		m[s.Name] = s
	}
	return m
}()

// All returns every registered form definition in declaration order.
func All() []*enquiry.FormSpec {
	return specs
}

// Get looks up a form definition by its canonical name.
func Get(name string) (*enquiry.FormSpec, bool) {
	s, ok := byName[name]
	return s, ok
}
