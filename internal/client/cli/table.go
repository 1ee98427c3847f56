package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
)

var sexLabels = map[string]string{
	entity.SexMale:   "Masculino",
	entity.SexFemale: "Femenino",
	entity.SexOther:  "Otro",
}

func sexLabel(s string) string {
	if l, ok := sexLabels[s]; ok {
		return l
	}
	return s
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	return t
}

func renderVendedores(w io.Writer, list []dto.VendedorResponse) {
	t := newTable(w, "ID", "Nombre", "NIF", "Fecha nac.", "Sexo", "Sueldo base")
	t.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})
	for _, v := range list {
		t.Append([]string{
			strconv.FormatInt(v.ID, 10), v.Name, v.NIF, v.BirthDate, sexLabel(v.Sex), v.BaseSalary,
		})
	}
	t.Render()
}

func renderDetail(w io.Writer, v *dto.VendedorResponse) {
	t := newTable(w, "Campo", "Valor")
	t.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	t.AppendBulk([][]string{
		{"ID", strconv.FormatInt(v.ID, 10)},
		{"Nombre", v.Name},
		{"NIF", v.NIF},
		{"Fecha de nacimiento", v.BirthDate},
		{"Sexo", sexLabel(v.Sex)},
		{"Sueldo base", v.BaseSalary},
		{"Creado", v.CreatedAt.Format("02/01/2006 15:04")},
		{"Actualizado", v.UpdatedAt.Format("02/01/2006 15:04")},
	})
	t.Render()
}

func renderRules(w io.Writer, rules []vendedor.Rule) {
	t := newTable(w, "Campo", "Regla", "Parámetro", "Mensaje")
	for _, r := range rules {
		name := r.Name
		if r.ServerOnly {
			name += " (servidor)"
		}
		t.Append([]string{r.Field, name, r.Param, r.Message})
	}
	t.Render()
	fmt.Fprintln(w)
}
