package aivis

import "context"

// Profile is the structured description of a business derived from its
// website. It is produced once per analysis run and is immutable afterward.
type Profile struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	IdealCustomerProfile string   `json:"idealCustomerProfile"`
	KeyFeatures          []string `json:"keyFeatures"`
	PricingInfo          *string  `json:"pricingInfo"`
	Industry             *string  `json:"industry"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	return nil
}

// Extractor derives a business profile from cleaned website text.
type Extractor interface {
	// Extract issues a single LLM call and parses the result into a Profile.
	// Missing fields are defaulted rather than failing the call; a response
	// that is not JSON at all returns an EEXTRACT error.
	Extract(ctx context.Context, text string) (*Profile, error)
}
