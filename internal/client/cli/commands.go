package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/vendedores-api/internal/client"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
)

func newListCmd(st *rootState) *cobra.Command {
	var (
		page, perPage int
		all           bool
	)
	cmd := &cobra.Command{
		Use:     "listar",
		Aliases: []string{"list", "ls"},
		Short:   "Lista vendedores ordenados por nombre",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if all {
				s := client.NewListState(st.api, perPage)
				if err := s.LoadFirst(ctx); err != nil {
					return loadError(err)
				}
				for s.HasMore() {
					if err := s.LoadMore(ctx); err != nil {
						return loadError(err)
					}
				}
				if s.Empty() {
					fmt.Fprintln(out, "No hay vendedores")
					return nil
				}
				renderVendedores(out, s.Items())
				fmt.Fprintf(out, "Total: %d\n", s.Total())
				return nil
			}

			p, err := st.api.List(ctx, page, perPage)
			if err != nil {
				return loadError(err)
			}
			if p.Total == 0 {
				fmt.Fprintln(out, "No hay vendedores")
				return nil
			}
			renderVendedores(out, p.Data)
			fmt.Fprintf(out, "Página %d de %d (total %d)\n", p.CurrentPage, p.LastPage, p.Total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "página a mostrar")
	cmd.Flags().IntVar(&perPage, "per-page", client.DefaultPerPage, "vendedores por página")
	cmd.Flags().BoolVar(&all, "all", false, "recorre todas las páginas")
	return cmd
}

func newGetCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "ver <id>",
		Aliases: []string{"get", "show"},
		Short:   "Muestra el detalle de un vendedor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := client.NewDetailState(st.api, id)
			if err := d.Load(cmd.Context()); err != nil {
				return detailError(d)
			}
			renderDetail(cmd.OutOrStdout(), d.Vendedor)
			return nil
		},
	}
}

// vendedorFlags flags comunes de alta y edición.
type vendedorFlags struct {
	in vendedor.Input
}

func (f *vendedorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.in.Name, "nombre", "", "nombre completo")
	cmd.Flags().StringVar(&f.in.NIF, "nif", "", "NIF (9 caracteres)")
	cmd.Flags().StringVar(&f.in.BirthDate, "fecha-nac", "", "fecha de nacimiento (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.in.Sex, "sexo", "", "sexo (M, F u O)")
	cmd.Flags().StringVar(&f.in.BaseSalary, "sueldo-base", "", "sueldo base")
}

// apply sobrescribe en in solo los flags indicados explícitamente.
func (f *vendedorFlags) apply(cmd *cobra.Command, in *vendedor.Input) {
	set := func(flag string, dst *string, v string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	set("nombre", &in.Name, f.in.Name)
	set("nif", &in.NIF, f.in.NIF)
	set("fecha-nac", &in.BirthDate, f.in.BirthDate)
	set("sexo", &in.Sex, f.in.Sex)
	set("sueldo-base", &in.BaseSalary, f.in.BaseSalary)
}

func newCreateCmd(st *rootState) *cobra.Command {
	var flags vendedorFlags
	cmd := &cobra.Command{
		Use:     "crear",
		Aliases: []string{"create"},
		Short:   "Crea un vendedor",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := client.NewCreateForm()
			flags.apply(cmd, &form.Input)
			if err := submit(cmd, st, form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Vendedor creado correctamente")
			renderDetail(cmd.OutOrStdout(), form.Result)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUpdateCmd(st *rootState) *cobra.Command {
	var flags vendedorFlags
	cmd := &cobra.Command{
		Use:     "editar <id>",
		Aliases: []string{"update", "edit"},
		Short:   "Actualiza un vendedor (solo los campos indicados)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := client.NewDetailState(st.api, id)
			if err := d.Load(cmd.Context()); err != nil {
				return detailError(d)
			}
			form := client.NewEditForm(d.Vendedor)
			flags.apply(cmd, &form.Input)
			if err := submit(cmd, st, form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Vendedor actualizado correctamente")
			renderDetail(cmd.OutOrStdout(), form.Result)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDeleteCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "eliminar <id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Elimina un vendedor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := client.NewDetailState(st.api, id)
			if err := d.Delete(cmd.Context()); err != nil {
				return detailError(d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Vendedor eliminado correctamente")
			return nil
		},
	}
}

func newRulesCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "reglas",
		Aliases: []string{"rules"},
		Short:   "Muestra las reglas de validación",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := st.api.Rules(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderRules(out, r.Rules)
			fmt.Fprintf(out, "Formato de fecha: %s\n", r.DateLayout)
			return nil
		},
	}
}

func newReportCmd(st *rootState) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "informe",
		Aliases: []string{"report"},
		Short:   "Descarga el listado de vendedores en PDF",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := st.api.ReportPDF(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				output = "vendedores_" + st.opts.Now().Format("20060102") + ".pdf"
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(output, doc, 0o644); err != nil {
				return fmt.Errorf("guardar informe: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Informe guardado en %s (%d bytes)\n", output, len(doc))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo destino (\"-\" para stdout)")
	return cmd
}

// submit envía el formulario mostrando avisos y errores por campo en stderr.
func submit(cmd *cobra.Command, st *rootState, form *client.Form) error {
	err := form.Submit(cmd.Context(), st.api)
	errOut := cmd.ErrOrStderr()
	printFieldMessages(errOut, "aviso", form.Warnings)
	if errors.Is(err, client.ErrInvalid) {
		printFieldMessages(errOut, "error", form.Errors)
		return errors.New("errores de validación")
	}
	if client.IsNotFound(err) {
		return errors.New(client.MsgNotFound)
	}
	return err
}

func printFieldMessages(w io.Writer, kind string, msgs map[string][]string) {
	for _, field := range vendedor.Fields {
		for _, m := range msgs[field] {
			fmt.Fprintf(w, "%s: %s: %s\n", kind, field, m)
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", s)
	}
	return id, nil
}

func loadError(err error) error {
	if client.Retryable(err) {
		return fmt.Errorf("%s (reintente): %w", client.MsgLoadFailed, err)
	}
	return fmt.Errorf("%s: %w", client.MsgLoadFailed, err)
}

func detailError(d *client.DetailState) error {
	if d.NotFound {
		return errors.New(client.MsgNotFound)
	}
	return d.Err
}
