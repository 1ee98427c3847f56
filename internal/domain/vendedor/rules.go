// Package vendedor define el conjunto único de reglas de validación de Vendedor.
// El servidor valida con Validate, el cliente Go reutiliza Check para la
// prevalidación local y los clientes externos reciben Rules() serializado en
// GET /api/vendedores/reglas.
package vendedor

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/pkg/nif"
)

// Nombres de campo tal como viajan en JSON y formularios.
const (
	FieldName       = "nombre"
	FieldNIF        = "nif"
	FieldBirthDate  = "fecha_nac"
	FieldSex        = "sexo"
	FieldBaseSalary = "sueldo_base"
)

// Límites de longitud (en caracteres, no bytes).
const (
	MaxNameLength = 100
	MaxNIFLength  = 9
)

// MaxBaseSalary cabe en NUMERIC(12,2).
const MaxBaseSalary = "9999999999.99"

// Cotas de sueldo_base antes de operar con el decimal: dígitos y exponente
// desmesurados ("1e2000000") se rechazan como no numéricos.
const (
	maxAmountLength   = 32
	maxAmountExponent = 16
)

// DateLayout formato canónico de fecha_nac en entrada y salida.
// DateFormat es el mismo formato expresado para clientes externos.
const (
	DateLayout = "2006-01-02"
	DateFormat = "YYYY-MM-DD"
)

// Identificadores de regla.
const (
	RuleRequired = "required"
	RuleMax      = "max"
	RuleUnique   = "unique"
	RuleDate     = "date"
	RuleIn       = "in"
	RuleNumeric  = "numeric"
	RuleMin      = "min"
)

// Fields orden estable de los campos editables.
var Fields = []string{FieldName, FieldNIF, FieldBirthDate, FieldSex, FieldBaseSalary}

// Sexes valores admitidos para sexo.
var Sexes = []string{entity.SexMale, entity.SexFemale, entity.SexOther}

// layouts aceptados para fecha_nac; solo se conserva la parte de fecha.
var dateLayouts = []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// Rule regla declarativa sobre un campo.
// ServerOnly marca reglas que requieren consultar el almacén (unicidad).
type Rule struct {
	Field      string `json:"campo"`
	Name       string `json:"regla"`
	Param      string `json:"parametro,omitempty"`
	Message    string `json:"mensaje"`
	ServerOnly bool   `json:"solo_servidor,omitempty"`

	check func(v string) bool
}

var rules = []Rule{
	required(FieldName),
	maxLength(FieldName, MaxNameLength),
	required(FieldNIF),
	maxLength(FieldNIF, MaxNIFLength),
	unique(FieldNIF),
	required(FieldBirthDate),
	date(FieldBirthDate),
	required(FieldSex),
	oneOf(FieldSex, Sexes...),
	required(FieldBaseSalary),
	numeric(FieldBaseSalary),
	minValue(FieldBaseSalary, decimal.Zero),
	maxValue(FieldBaseSalary, decimal.RequireFromString(MaxBaseSalary)),
}

// Rules devuelve una copia del conjunto de reglas.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Input candidato tal como llega del cliente (sin tipar).
type Input struct {
	Name       string
	NIF        string
	BirthDate  string
	Sex        string
	BaseSalary string
}

// Normalize recorta espacios, normaliza el nombre a NFC y el NIF a mayúsculas.
func (in Input) Normalize() Input {
	return Input{
		Name:       norm.NFC.String(strings.TrimSpace(in.Name)),
		NIF:        nif.Normalize(in.NIF),
		BirthDate:  strings.TrimSpace(in.BirthDate),
		Sex:        strings.TrimSpace(in.Sex),
		BaseSalary: strings.TrimSpace(in.BaseSalary),
	}
}

func (in Input) value(field string) string {
	switch field {
	case FieldName:
		return in.Name
	case FieldNIF:
		return in.NIF
	case FieldBirthDate:
		return in.BirthDate
	case FieldSex:
		return in.Sex
	case FieldBaseSalary:
		return in.BaseSalary
	}
	return ""
}

// Data valores ya validados y tipados.
type Data struct {
	Name       string
	NIF        string
	BirthDate  time.Time
	Sex        string
	BaseSalary decimal.Decimal
}

// Apply reemplaza los cinco campos editables del vendedor.
func (d Data) Apply(v *entity.Vendedor) {
	v.Name = d.Name
	v.NIF = d.NIF
	v.BirthDate = d.BirthDate
	v.Sex = d.Sex
	v.BaseSalary = d.BaseSalary
}

// Check evalúa todas las reglas locales y devuelve los mensajes por campo.
// Un campo vacío solo reporta la regla required. Mapa vacío = sin errores.
func Check(in Input) map[string][]string {
	in = in.Normalize()
	out := make(map[string][]string)
	for _, r := range rules {
		if r.check == nil {
			continue
		}
		v := in.value(r.Field)
		if v == "" && r.Name != RuleRequired {
			continue
		}
		if !r.check(v) {
			out[r.Field] = append(out[r.Field], r.Message)
		}
	}
	return out
}

// Validate aplica Check y, si todo es correcto, devuelve los datos tipados.
// El error es *domain.ValidationError.
func Validate(in Input) (Data, error) {
	if fields := Check(in); len(fields) > 0 {
		return Data{}, domain.NewValidationError(fields)
	}
	in = in.Normalize()
	birth, _ := parseDate(in.BirthDate)
	salary, _ := parseAmount(in.BaseSalary)
	return Data{
		Name:       in.Name,
		NIF:        in.NIF,
		BirthDate:  birth,
		Sex:        in.Sex,
		BaseSalary: salary.Round(2),
	}, nil
}

// UniqueMessage mensaje de la regla unique para el campo.
func UniqueMessage(field string) string {
	for _, r := range rules {
		if r.Field == field && r.Name == RuleUnique {
			return r.Message
		}
	}
	return fmt.Sprintf("El valor del campo %s ya está en uso.", label(field))
}

// InputFrom convierte un vendedor existente en Input (p. ej. para editar).
func InputFrom(v *entity.Vendedor) Input {
	return Input{
		Name:       v.Name,
		NIF:        v.NIF,
		BirthDate:  v.BirthDate.Format(DateLayout),
		Sex:        v.Sex,
		BaseSalary: v.BaseSalary.StringFixed(2),
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// label "fecha_nac" → "fecha nac", como en los mensajes de Laravel.
func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func required(field string) Rule {
	return Rule{
		Field:   field,
		Name:    RuleRequired,
		Message: fmt.Sprintf("El campo %s es obligatorio.", label(field)),
		check:   func(v string) bool { return v != "" },
	}
}

func maxLength(field string, n int) Rule {
	return Rule{
		Field:   field,
		Name:    RuleMax,
		Param:   fmt.Sprint(n),
		Message: fmt.Sprintf("El campo %s no debe ser mayor que %d caracteres.", label(field), n),
		check:   func(v string) bool { return utf8.RuneCountInString(v) <= n },
	}
}

func unique(field string) Rule {
	return Rule{
		Field:      field,
		Name:       RuleUnique,
		Message:    fmt.Sprintf("El valor del campo %s ya está en uso.", label(field)),
		ServerOnly: true,
	}
}

func date(field string) Rule {
	return Rule{
		Field:   field,
		Name:    RuleDate,
		Param:   DateFormat,
		Message: fmt.Sprintf("El campo %s no corresponde con una fecha válida.", label(field)),
		check: func(v string) bool {
			_, ok := parseDate(v)
			return ok
		},
	}
}

func oneOf(field string, values ...string) Rule {
	return Rule{
		Field:   field,
		Name:    RuleIn,
		Param:   strings.Join(values, ","),
		Message: fmt.Sprintf("El campo %s seleccionado es inválido.", label(field)),
		check: func(v string) bool {
			for _, allowed := range values {
				if v == allowed {
					return true
				}
			}
			return false
		},
	}
}

func numeric(field string) Rule {
	return Rule{
		Field:   field,
		Name:    RuleNumeric,
		Message: fmt.Sprintf("El campo %s debe ser un número.", label(field)),
		check: func(v string) bool {
			_, ok := parseAmount(v)
			return ok
		},
	}
}

// minValue ignora valores no numéricos; esos ya los reporta numeric.
func minValue(field string, min decimal.Decimal) Rule {
	return Rule{
		Field:   field,
		Name:    RuleMin,
		Param:   min.String(),
		Message: fmt.Sprintf("El campo %s debe ser al menos %s.", label(field), min.String()),
		check: func(v string) bool {
			d, ok := parseAmount(v)
			return !ok || d.GreaterThanOrEqual(min)
		},
	}
}

// maxValue ignora valores no numéricos, igual que minValue.
func maxValue(field string, max decimal.Decimal) Rule {
	return Rule{
		Field:   field,
		Name:    RuleMax,
		Param:   max.String(),
		Message: fmt.Sprintf("El campo %s no debe ser mayor que %s.", label(field), max.String()),
		check: func(v string) bool {
			d, ok := parseAmount(v)
			return !ok || d.LessThanOrEqual(max)
		},
	}
}

func parseAmount(v string) (decimal.Decimal, bool) {
	if len(v) > maxAmountLength {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if e := d.Exponent(); e > maxAmountExponent || e < -maxAmountExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}
