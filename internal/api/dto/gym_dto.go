package dto

// BMIResponse is the calculator result. The key is upper-case on the wire.
type BMIResponse struct {
	BMI float64 `json:"BMI"`
}

// ErrorResponse is the body of every application error.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}
