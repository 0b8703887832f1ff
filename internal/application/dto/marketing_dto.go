package dto

// MarketingCopyRequest entrada para generar texto de marketing con IA.
type MarketingCopyRequest struct {
	BusinessName string `json:"business_name"`
	ProgramName  string `json:"program_name"`
	Goal         string `json:"goal" validate:"required,min=1,max=300"`
	Tone         string `json:"tone" validate:"omitempty,max=50"`
}

// MarketingCopyResponse texto generado para la campaña.
type MarketingCopyResponse struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	PushMessage string `json:"push_message"`
}
