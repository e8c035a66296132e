// internal/enquiry/payload.go
package enquiry

import "time"

// UploadedDoc is the asset-host record for one resolved file slot. Created
// only during a submission attempt, never persisted client-side.
type UploadedDoc struct {
	Index        int    `json:"index"` // 1-based position within the pax
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// Tracking is the lightweight client metadata attached to every submission.
type Tracking struct {
	PageURL   string `json:"pageUrl"`
	UserAgent string `json:"userAgent"`
}

// SubmissionPayload is the JSON body POSTed to the form's enquiry endpoint.
// Constructed fresh per attempt and never mutated afterwards.
type SubmissionPayload struct {
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	Paxes       []map[string]interface{} `json:"paxes"`
	SubmittedAt string                   `json:"submittedAt"`
	Tracking    Tracking                 `json:"tracking"`
}

// assemblePayload merges base fields with per-pax domain fields and their
// uploaded documents. docs is indexed by pax position.
func assemblePayload(form *Form, docs [][]UploadedDoc, tracking Tracking, now time.Time) *SubmissionPayload {
	paxes := make([]map[string]interface{}, 0, form.Paxes.Len())
	for i, p := range form.Paxes.Paxes() {
		entry := map[string]interface{}{
			"paxNo":         i + 1,
			"noOfDocuments": form.Paxes.DocumentCount(p),
			"documents":     docs[i],
		}
		for k, v := range p.Fields {
			entry[k] = v
		}
		if len(p.Quantities) > 0 {
			entry["documentQuantities"] = p.Quantities
		}
		paxes = append(paxes, entry)
	}

	return &SubmissionPayload{
		Name:        form.Base.Name,
		Email:       form.Base.Email,
		Phone:       form.Base.Phone,
		Paxes:       paxes,
		SubmittedAt: now.UTC().Format(time.RFC3339),
		Tracking:    tracking,
	}
}
