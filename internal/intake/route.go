package intake

// Inquiry categories that go to the info mailbox. Anything else is sales.
const (
	InquiryGeneral     = "general"
	InquiryPartnership = "partnership"
)

// Router picks the destination mailbox for an inquiry category.
type Router struct {
	InfoAddress  string
	SalesAddress string
}

// Route is case-sensitive; unknown categories fall through to sales.
func (r Router) Route(inquiryType string) string {
	switch inquiryType {
	case InquiryGeneral, InquiryPartnership:
		return r.InfoAddress
	default:
		return r.SalesAddress
	}
}
