package payouts

type SettingsRequest struct {
	PaypalEmail   string `json:"paypal_email" validate:"omitempty,email"`
	LegalName     string `json:"legal_name"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCSwift     string `json:"ifsc_swift"`
	Country       string `json:"country"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
}
