// cmd/tools/registry-exporter/main.go
//
// Exports the in-code form definitions as a registry JSON document so the
// frontend and docs stay in sync with the Go source of truth.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"egs-enquiry/internal/enquiry"
	"egs-enquiry/internal/forms"
	"egs-enquiry/pkg/registry"
)

func main() {
	out := flag.String("out", "form-registry.json", "output path")
	flag.Parse()

	reg := registry.FormRegistry{
		Version:     "1.0.0",
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}

	for _, spec := range forms.All() {
		form := registry.Form{
			Name:              spec.Name,
			DisplayName:       spec.DisplayName,
			EndpointPath:      spec.EndpointPath,
			ReadPath:          spec.ReadPath,
			NameRequired:      spec.NameRequired,
			RequiredPaxFields: spec.RequiredPaxFields,
			CategoryField:     spec.CategoryField,
			DocumentTypes:     spec.DocumentTypes,
			CountStrategy:     spec.Strategy.Name(),
		}
		if fixed, ok := spec.Strategy.(enquiry.FixedCount); ok {
			form.FixedCount = fixed.N
		}
		if spec.FieldSchema != "" {
			var schema map[string]interface{}
			if err := json.Unmarshal([]byte(spec.FieldSchema), &schema); err != nil {
				fmt.Fprintf(os.Stderr, "invalid field schema for %s: %v\n", spec.Name, err)
				os.Exit(1)
			}
			form.FieldSchema = schema
		}
		reg.Forms = append(reg.Forms, form)
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d forms to %s\n", len(reg.Forms), *out)
}
