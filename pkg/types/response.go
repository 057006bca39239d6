package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the uniform error shape both the UI and the voice agent consume.
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
