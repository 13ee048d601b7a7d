package dto

// Envelope cuerpo de todas las respuestas JSON de la API.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Code    string      `json:"code,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK envelope de éxito con datos.
func OK(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// List envelope de éxito con datos y count (listados).
func List(data interface{}, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

// Fail envelope de error.
func Fail(code, message string) Envelope {
	return Envelope{Success: false, Code: code, Message: message}
}

// HealthResponse respuesta de GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// BannerResponse respuesta de GET /.
type BannerResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
