// internal/enquiry/strategy.go
package enquiry

// CountStrategy derives a pax's document count. The three variants cover all
// observed forms: a fixed slot count, a numeric "number of documents" field,
// and per-document-type quantity pickers.
type CountStrategy interface {
	Name() string
	Count(p *Pax) int
}

// FixedCount always yields N slots (visa and ticket forms).
type FixedCount struct {
	N int
}

func (s FixedCount) Name() string { return "fixed" }

func (s FixedCount) Count(p *Pax) int {
	if s.N < 1 {
		return 1
	}
	return s.N
}

// UserEnteredCount reads the pax's numeric document count field.
type UserEnteredCount struct{}

func (s UserEnteredCount) Name() string { return "user-entered" }

func (s UserEnteredCount) Count(p *Pax) int {
	if p.enteredCount < MinDocuments {
		return MinDocuments
	}
	return p.enteredCount
}

// QuantitySummed totals the per-type quantities. Zero until the user picks a
// type, which keeps the submit gate closed.
type QuantitySummed struct{}

func (s QuantitySummed) Name() string { return "quantity-summed" }

func (s QuantitySummed) Count(p *Pax) int {
	total := 0
	for _, q := range p.Quantities {
		total += q
	}
	return total
}
