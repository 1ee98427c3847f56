package nif

import (
	"fmt"
	"strings"
	"unicode"
)

// tabla de letras de control DNI/NIE (módulo 23, Ministerio del Interior).
const controlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// prefijos NIE: X=0, Y=1, Z=2 sustituyen al primer dígito.
var niePrefixes = map[rune]byte{'X': '0', 'Y': '1', 'Z': '2'}

// Normalize elimina espacios en los extremos y pasa a mayúsculas.
// Es la forma en que se almacena y compara el NIF.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateControlLetter valida que el NIF (DNI "12345678Z" o NIE "X1234567L")
// tenga la letra de control correcta según el algoritmo módulo 23.
func ValidateControlLetter(s string) error {
	s = Normalize(s)
	if len(s) != 9 {
		return fmt.Errorf("nif: debe tener 9 caracteres, se encontraron %d", len([]rune(s)))
	}
	expected, err := ComputeControlLetter(s[:8])
	if err != nil {
		return err
	}
	if got := rune(s[8]); got != expected {
		return fmt.Errorf("nif: letra de control inválida: esperado %c, recibido %c", expected, got)
	}
	return nil
}

// ComputeControlLetter calcula la letra para los 8 primeros caracteres de un DNI o NIE.
func ComputeControlLetter(base string) (rune, error) {
	base = Normalize(base)
	if len(base) != 8 {
		return 0, fmt.Errorf("nif: se requieren 8 caracteres para calcular la letra, se encontraron %d", len([]rune(base)))
	}
	digits := []byte(base)
	if d, ok := niePrefixes[rune(digits[0])]; ok {
		digits[0] = d
	}
	var n int
	for _, d := range digits {
		if !unicode.IsDigit(rune(d)) {
			return 0, fmt.Errorf("nif: formato no reconocido (solo DNI/NIE)")
		}
		n = n*10 + int(d-'0')
	}
	return rune(controlLetters[n%23]), nil
}
