package service

import (
	"errors"
	"fmt"
	"strings"

	"critiquelab/internal/domain"
)

// Limites de entrada: muy corto no da para critica, muy largo es abuso.
const (
	MinTextLength = 10
	MaxTextLength = 50000
)

var (
	ErrTextTooShort = fmt.Errorf("text must be at least %d characters", MinTextLength)
	ErrTextTooLong  = fmt.Errorf("text exceeds maximum length of %d characters", MaxTextLength)
	ErrTextEmpty    = errors.New("text cannot be empty")
)

// SanitizeText normaliza finales de linea y elimina bytes nulos y caracteres
// de control (conserva \n y \t).
func SanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x20 && r != '\n' && r != '\t' {
			continue
		}
		if r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ValidateText sanea y valida el texto de entrada. Los errores aqui son de
// validacion: recuperables por el usuario, nunca llegan al oraculo.
func ValidateText(text string) (string, error) {
	sanitized := SanitizeText(text)
	switch {
	case sanitized == "":
		return "", ErrTextEmpty
	case len(sanitized) < MinTextLength:
		return "", ErrTextTooShort
	case len(sanitized) > MaxTextLength:
		return "", ErrTextTooLong
	}
	return sanitized, nil
}

// NormalizePersona aplica la lista blanca de personas; cualquier valor
// invalido cae a free sin exponer el error (evita enumeracion).
func NormalizePersona(persona string) string {
	normalized := strings.ToLower(strings.TrimSpace(persona))
	if domain.ValidPersona(normalized) {
		return normalized
	}
	return domain.PersonaFree
}

// NormalizeSource aplica la lista blanca de fuentes, con critique por defecto.
func NormalizeSource(source string) string {
	normalized := strings.ToLower(strings.TrimSpace(source))
	if domain.ValidSource(normalized) {
		return normalized
	}
	return domain.SourceCritique
}
