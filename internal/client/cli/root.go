// Package cli línea de comandos sobre la API REST de vendedores.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/client"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
	"github.com/jhoicas/vendedores-api/pkg/config"
)

// API operaciones remotas usadas por los comandos.
type API interface {
	client.API
	Rules(ctx context.Context) (*dto.RulesResponse, error)
	ReportPDF(ctx context.Context) ([]byte, error)
}

// Options dependencias inyectables del comando raíz.
type Options struct {
	// NewAPI construye el cliente para la URL base. nil usa apiclient.New.
	NewAPI func(baseURL string, timeout time.Duration) API
	// Now reloj para nombres de archivo. nil usa time.Now.
	Now func() time.Time
}

type rootState struct {
	opts    Options
	apiURL  string
	timeout time.Duration
	api     API
}

// NewRootCmd construye el árbol de comandos.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.NewAPI == nil {
		opts.NewAPI = func(baseURL string, timeout time.Duration) API {
			return apiclient.New(baseURL, apiclient.WithTimeout(timeout))
		}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	st := &rootState{opts: opts}

	root := &cobra.Command{
		Use:           "vendedores",
		Short:         "Cliente de línea de comandos de la API de vendedores",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&st.apiURL, "api-url", "", "URL base de la API (por defecto VENDEDORES_API_URL)")
	root.PersistentFlags().DurationVar(&st.timeout, "timeout", 0, "timeout HTTP (por defecto VENDEDORES_API_TIMEOUT_SECONDS)")

	root.AddCommand(
		newListCmd(st),
		newGetCmd(st),
		newCreateCmd(st),
		newUpdateCmd(st),
		newDeleteCmd(st),
		newRulesCmd(st),
		newReportCmd(st),
	)
	return root
}

// init completa URL y timeout desde la configuración cuando no vienen por flag.
func (st *rootState) init(cmd *cobra.Command) error {
	if st.apiURL == "" || st.timeout <= 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if st.apiURL == "" {
			st.apiURL = cfg.Client.APIURL
		}
		if st.timeout <= 0 {
			st.timeout = cfg.Client.Timeout()
		}
	}
	st.api = st.opts.NewAPI(st.apiURL, st.timeout)
	return nil
}
