package essentials

// TranslateRequest is the translator payload.
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

// Translation is the translator result.
type Translation struct {
	Original       string `json:"original"`
	Translated     string `json:"translated"`
	TargetLanguage string `json:"target_language"`
}

// TaxRefundRequest carries a purchase amount in yuan.
type TaxRefundRequest struct {
	Amount float64 `json:"amount"`
}

// TaxRefund describes the VAT refund for a purchase.
type TaxRefund struct {
	PurchaseAmount float64 `json:"purchase_amount"`
	TaxRate        string  `json:"tax_rate"`
	RefundAmount   float64 `json:"refund_amount"`
	Eligible       bool    `json:"eligible"`
	Requirements   string  `json:"requirements"`
}
