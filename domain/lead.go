package domain

// Lead is a contact form submission. It is handed to the mail transport once
// and never stored.
type Lead struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
}

// Receipt acknowledges a submission. Reference is only used to correlate logs;
// RedirectURL is set when the lead was handed to the hosted form.
type Receipt struct {
	Reference   string `json:"reference,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

func (l Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}
