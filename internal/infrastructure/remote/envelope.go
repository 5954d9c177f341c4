package remote

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errUnknownEnvelope = errors.New("formato de respuesta no reconocido")

// envelope forma normalizada de las dos variantes de respuesta:
// {ok, result, error} y {success, data, message}.
type envelope struct {
	ok      bool
	payload json.RawMessage
	message string
	errText string
	detail  string
}

// parseEnvelope lee cualquiera de las dos variantes. Aunque falle el reconocimiento
// devuelve los campos message/error/detail que haya podido leer.
func parseEnvelope(raw []byte) (envelope, error) {
	var env envelope
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return env, errUnknownEnvelope
	}

	env.message = textField(fields["message"])
	env.errText = textField(fields["error"])
	env.detail = textField(fields["detail"])

	switch {
	case fields["ok"] != nil:
		env.ok = boolField(fields["ok"])
		env.payload = nullToEmpty(fields["result"])
	case fields["success"] != nil:
		env.ok = boolField(fields["success"])
		env.payload = nullToEmpty(fields["data"])
	default:
		return env, errUnknownEnvelope
	}
	return env, nil
}

func boolField(v json.RawMessage) bool {
	var b bool
	_ = json.Unmarshal(v, &b)
	return b
}

// textField acepta string o un objeto con "message" (algunos errores vienen anidados).
func textField(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(v, &obj); err == nil {
		return obj.Message
	}
	return ""
}

func nullToEmpty(v json.RawMessage) json.RawMessage {
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil
	}
	return v
}
