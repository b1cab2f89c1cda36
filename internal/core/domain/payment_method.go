package domain

// PaymentMethodType enumerates the channels donors can pay through.
type PaymentMethodType string

const (
	PaymentTypeBank          PaymentMethodType = "Bank"
	PaymentTypeMobileBanking PaymentMethodType = "Mobile Banking"
	PaymentTypeOther         PaymentMethodType = "Other"
)

// IsValid reports whether the type is one of the known payment channels.
func (t PaymentMethodType) IsValid() bool {
	switch t {
	case PaymentTypeBank, PaymentTypeMobileBanking, PaymentTypeOther:
		return true
	}
	return false
}

// PaymentMethod is a manual payment channel shown on the public landing page
// when active. Deleting one leaves existing donations with a dangling reference;
// there is no referential check on delete.
type PaymentMethod struct {
	PaymentMethodID string            `json:"paymentMethodID"`
	Name            string            `json:"name"`
	AccountNumber   string            `json:"accountNumber"`
	Type            PaymentMethodType `json:"type"`
	IsActive        bool              `json:"isActive"`
	AuditFields
}
