package contextmap

import (
	"strings"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// The types below ground the anticorruption layer relation of the demo map.
// Sales and billing each keep their own model of the same person, and the
// translator is the only place that knows both shapes.

// SalesCustomer is how the sales context models a customer.
type SalesCustomer struct {
	FullName     string
	Email        string
	DiscountTier string
}

// BillingPayer is how the billing context models the same party.
// Billing does not care about discount tiers, it cares about dunning.
type BillingPayer struct {
	LegalName    string
	InvoiceEmail string
	Delinquent   bool
}

const ErrUntranslatable errorkit.Error = "sales customer cannot be translated to a billing payer"

// TranslateCustomerToPayer is the anticorruption layer between sales and
// billing. Billing calls it instead of importing the sales model, so sales
// side renames and quirks stop here.
func TranslateCustomerToPayer(c SalesCustomer) (BillingPayer, error) {
	name := strings.TrimSpace(c.FullName)
	if name == "" {
		return BillingPayer{}, ErrUntranslatable.F("full name is empty")
	}
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if !strings.Contains(email, "@") {
		return BillingPayer{}, ErrUntranslatable.F("email %q is not deliverable", c.Email)
	}
	return BillingPayer{
		LegalName:    name,
		InvoiceEmail: email,
		// sales flags bad payers through a sentinel tier value
		Delinquent: strings.EqualFold(c.DiscountTier, "blocked"),
	}, nil
}
