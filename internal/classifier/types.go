package classifier

import "holyland_phone/platform/phone"

// ClassifyQuery is the query string of GET /phones/classify and /phones/international.
type ClassifyQuery struct {
	Number string `form:"number" binding:"required,max=32"`
	Clean  bool   `form:"clean"`
}

// BatchRequest is the body of POST /phones/classify.
type BatchRequest struct {
	Numbers []string `json:"numbers" binding:"required,min=1,dive,max=32"`
	Clean   bool     `json:"clean"`
}

// ValidateRequest is the body of POST /phones/validate.
type ValidateRequest struct {
	Phone string `json:"phone" validate:"required,holyland"`
	Clean bool   `json:"clean"`
}

// Result is a classification report enriched with libphonenumber's view of
// the number. E164 and LibType are empty when libphonenumber rejects it.
type Result struct {
	phone.Report `yaml:",inline"`
	E164    string `json:"e164,omitempty" yaml:"e164,omitempty"`
	LibType string `json:"libType,omitempty" yaml:"lib_type,omitempty"`
}

// BatchResponse wraps the results of a batch classification.
type BatchResponse struct {
	Results []Result `json:"results"`
	Count   int      `json:"count"`
	Valid   int      `json:"valid"`
}

// Conversion pairs the local and international forms of a number.
type Conversion struct {
	Input         string `json:"input" yaml:"input"`
	Local         string `json:"local" yaml:"local"`
	International string `json:"international" yaml:"international"`
}

// ValidateResponse is returned when a number passes validation.
type ValidateResponse struct {
	Valid    bool           `json:"valid"`
	Local    string         `json:"local"`
	Category phone.Category `json:"category"`
}
