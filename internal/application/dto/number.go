package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumberText valor numérico que llega como número JSON o como texto ("5", 5, "1.50", 1.5).
// Conserva el texto tal cual: el caso de uso lo interpreta y reporta los valores no numéricos
// como error de validación en lugar de fallar el decodificado del cuerpo.
type NumberText string

// UnmarshalJSON acepta número, string o null.
func (n *NumberText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("se esperaba número o texto: %w", err)
	}
	*n = NumberText(num.String())
	return nil
}

func (n NumberText) String() string { return string(n) }
