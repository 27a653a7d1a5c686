package models

// ContactInfo is what the visitor submits before seeing the results.
type ContactInfo struct {
	FirstName     string `json:"first_name" validate:"nonblank,max=100"`
	LastName      string `json:"last_name" validate:"nonblank,max=100"`
	Email         string `json:"email" validate:"simpleemail,max=254"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,e164"`
	TermsAccepted bool   `json:"terms_accepted" validate:"eq=true"`
	GDPRAccepted  bool   `json:"gdpr_accepted" validate:"eq=true"`
}
