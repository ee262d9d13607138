package prototype

import (
	"context"
	"fmt"
	"io"
)

// Demo clones the same quote template for two customers and shows
// that their customizations stay isolated from the template.
func Demo(ctx context.Context, w io.Writer) error {
	var registry Registry
	registry.Register("quote", Document{
		Title:  "Price Quote",
		Author: "sales",
		Sections: []Section{
			{Heading: "Scope", Paragraphs: []string{"To be filled per customer."}},
			{Heading: "Terms", Paragraphs: []string{"Valid for 30 days."}},
		},
		Metadata: map[string]string{"customer": "unset"},
	})

	forACME, err := registry.Make("quote")
	if err != nil {
		return err
	}
	forACME.Metadata["customer"] = "ACME Ltd"
	forACME.Sections[0].Paragraphs[0] = "Supply of 40 oak tables."

	forGlobex, err := registry.Make("quote")
	if err != nil {
		return err
	}
	forGlobex.Metadata["customer"] = "Globex Corp"
	forGlobex.Sections[0].Paragraphs[0] = "Consulting, 12 days on site."

	fmt.Fprintf(w, "ACME's copy:   %s -> %s\n", forACME.Metadata["customer"], forACME.Sections[0].Paragraphs[0])
	fmt.Fprintf(w, "Globex's copy: %s -> %s\n", forGlobex.Metadata["customer"], forGlobex.Sections[0].Paragraphs[0])

	pristine, err := registry.Make("quote")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "the template still reads: %s -> %s\n",
		pristine.Metadata["customer"], pristine.Sections[0].Paragraphs[0])

	if _, err := registry.Make("contract"); err != nil {
		fmt.Fprintf(w, "asking for a template nobody registered: %v\n", err)
	}
	return nil
}
