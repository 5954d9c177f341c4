package dto

// OKEnvelope variante {ok, result, error} usada por préstamos, cuotas, prestatarios, solicitudes y reportes.
type OKEnvelope struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SuccessEnvelope variante {success, data, message} usada por autenticación.
type SuccessEnvelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
}
