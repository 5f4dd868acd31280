package dto

type CheckoutRequest struct {
	PackageType   string  `json:"packageType"`
	Price         float64 `json:"price"`
	DiscountCode  string  `json:"discountCode"`
	CustomerEmail string  `json:"customerEmail"`
}

type AppliedDiscount struct {
	Code        string  `json:"code"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type CheckoutResponse struct {
	SessionID       string           `json:"sessionId"`
	URL             string           `json:"url"`
	AppliedDiscount *AppliedDiscount `json:"appliedDiscount"`
}

type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OrderResponse struct {
	CustomerEmail string  `json:"customerEmail"`
	AmountTotal   float64 `json:"amountTotal"`
	PackageType   string  `json:"packageType"`
	PaymentStatus string  `json:"paymentStatus"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}
