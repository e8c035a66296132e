// internal/enquiry/pax.go
package enquiry

import (
	"github.com/google/uuid"

	"egs-enquiry/internal/common/errors"
)

const (
	// MaxFileBytes is the per-file upload ceiling (5 MiB).
	MaxFileBytes = 5 * 1024 * 1024

	// MinDocuments / MaxDocuments bound the user-entered document count.
	MinDocuments = 1
	MaxDocuments = 20

	// MaxTypeQuantity bounds a single document type's quantity.
	MaxTypeQuantity = 20
)

// File is an in-memory file selected into a pax slot. Each File belongs to
// exactly one slot of exactly one pax; it is never shared between records.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// Pax is one applicant (or one independent document-processing request).
// The ID is generated locally and never sent to the backend.
type Pax struct {
	ID         string
	Fields     map[string]string
	Quantities map[string]int
	Files      []*File

	enteredCount int // backing value for the user-entered count strategy
}

func newPax(strategy CountStrategy) *Pax {
	p := &Pax{
		ID:           uuid.New().String(),
		Fields:       make(map[string]string),
		Quantities:   make(map[string]int),
		enteredCount: MinDocuments,
	}
	p.Files = make([]*File, strategy.Count(p))
	return p
}

// EnteredCount returns the numeric "number of documents" value.
func (p *Pax) EnteredCount() int { return p.enteredCount }

// PaxList owns the ordered list of pax records and enforces the size
// invariants: the list never drops below one entry, and every pax's file-slot
// array length always equals its computed document count.
type PaxList struct {
	strategy      CountStrategy
	categoryField string
	maxFileBytes  int64
	paxes         []*Pax
}

// NewPaxList creates a list holding a single fresh pax.
func NewPaxList(strategy CountStrategy, categoryField string) *PaxList {
	l := &PaxList{
		strategy:      strategy,
		categoryField: categoryField,
		maxFileBytes:  MaxFileBytes,
	}
	l.paxes = []*Pax{newPax(strategy)}
	return l
}

// SetMaxFileBytes overrides the upload ceiling (config-driven).
func (l *PaxList) SetMaxFileBytes(n int64) {
	if n > 0 {
		l.maxFileBytes = n
	}
}

// Paxes returns the records in order. Callers must not resize the slice.
func (l *PaxList) Paxes() []*Pax { return l.paxes }

// Len returns the number of pax records.
func (l *PaxList) Len() int { return len(l.paxes) }

// AddPax appends a new pax with fresh identity and default slots.
func (l *PaxList) AddPax() *Pax {
	p := newPax(l.strategy)
	l.paxes = append(l.paxes, p)
	return p
}

// RemovePax removes the identified pax. Removing the last remaining entry is
// a deliberate no-op, not a failure.
func (l *PaxList) RemovePax(id string) {
	if len(l.paxes) <= 1 {
		return
	}
	for i, p := range l.paxes {
		if p.ID == id {
			l.paxes = append(l.paxes[:i], l.paxes[i+1:]...)
			return
		}
	}
}

func (l *PaxList) find(id string) *Pax {
	for _, p := range l.paxes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// UpdateField sets a domain field. When the field is the form's document
// category selector, previously chosen type quantities no longer apply, so
// they are cleared and the slot array is resized to the new count.
func (l *PaxList) UpdateField(id, field, value string) {
	p := l.find(id)
	if p == nil {
		return
	}
	p.Fields[field] = value
	if l.categoryField != "" && field == l.categoryField {
		p.Quantities = make(map[string]int)
		l.syncSlots(p)
	}
}

// SetDocumentCount sets the numeric document count, clamped to
// [MinDocuments, MaxDocuments], and resizes the slot array. Selections at
// indices below the new count are preserved.
func (l *PaxList) SetDocumentCount(id string, n int) {
	p := l.find(id)
	if p == nil {
		return
	}
	if n < MinDocuments {
		n = MinDocuments
	}
	if n > MaxDocuments {
		n = MaxDocuments
	}
	p.enteredCount = n
	l.syncSlots(p)
}

// IncrementDocType raises the quantity for one document type, bounded by
// MaxTypeQuantity, and resizes the slot array to the new total.
func (l *PaxList) IncrementDocType(id, docLabel string) {
	p := l.find(id)
	if p == nil {
		return
	}
	if p.Quantities[docLabel] >= MaxTypeQuantity {
		return
	}
	p.Quantities[docLabel]++
	l.syncSlots(p)
}

// DecrementDocType lowers the quantity for one document type, floored at zero.
func (l *PaxList) DecrementDocType(id, docLabel string) {
	p := l.find(id)
	if p == nil {
		return
	}
	if p.Quantities[docLabel] <= 0 {
		return
	}
	p.Quantities[docLabel]--
	if p.Quantities[docLabel] == 0 {
		delete(p.Quantities, docLabel)
	}
	l.syncSlots(p)
}

// SetFile stores a file at the given slot after checking the size ceiling.
// Oversized files are rejected and the slot stays nil. A nil file clears the
// slot.
func (l *PaxList) SetFile(id string, slotIndex int, file *File) error {
	p := l.find(id)
	if p == nil || slotIndex < 0 || slotIndex >= len(p.Files) {
		return nil
	}
	if file != nil && file.Size > l.maxFileBytes {
		return errors.NewFileTooLargeError(file.Name, file.Size, l.maxFileBytes)
	}
	p.Files[slotIndex] = file
	return nil
}

// DocumentCount returns the computed count for one pax.
func (l *PaxList) DocumentCount(p *Pax) int {
	return l.strategy.Count(p)
}

// syncSlots resizes the slot array to the computed count, preserving
// selections at surviving indices.
func (l *PaxList) syncSlots(p *Pax) {
	n := l.strategy.Count(p)
	if n == len(p.Files) {
		return
	}
	next := make([]*File, n)
	copy(next, p.Files)
	p.Files = next
}

// Complete reports whether every pax has all required fields set, at least
// one document slot, and every slot filled.
func (l *PaxList) Complete(requiredFields []string) bool {
	for _, p := range l.paxes {
		for _, f := range requiredFields {
			if p.Fields[f] == "" {
				return false
			}
		}
		n := l.strategy.Count(p)
		if n < 1 || len(p.Files) != n {
			return false
		}
		for _, file := range p.Files {
			if file == nil {
				return false
			}
		}
	}
	return true
}

// Reset replaces all records with a single fresh pax.
func (l *PaxList) Reset() {
	l.paxes = []*Pax{newPax(l.strategy)}
}
