// seed puebla la API con vendedores ficticios generados con faker.
//
// Uso: go run ./cmd/seed [-n 50] [-api http://localhost:8080/api] [-seed 42]
// Por defecto usa VENDEDORES_API_URL. Los NIF generados llevan letra de control válida.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jaswdr/faker"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
	"github.com/jhoicas/vendedores-api/pkg/config"
	"github.com/jhoicas/vendedores-api/pkg/nif"
)

// maxAttempts reintentos por vendedor cuando el NIF generado ya existe.
const maxAttempts = 5

type creator interface {
	Create(ctx context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error)
}

func main() {
	n := flag.Int("n", 50, "número de vendedores a crear")
	apiURL := flag.String("api", "", "URL base de la API (por defecto VENDEDORES_API_URL)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "semilla del generador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if *apiURL == "" {
		*apiURL = cfg.Client.APIURL
	}

	api := apiclient.New(*apiURL, apiclient.WithTimeout(cfg.Client.Timeout()))
	gen := newGenerator(*seed)

	created, err := seedVendedores(context.Background(), api, gen, *n)
	fmt.Printf("Vendedores creados: %d/%d en %s\n", created, *n, *apiURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
}

// seedVendedores crea n vendedores. Un NIF repetido (422) se regenera.
func seedVendedores(ctx context.Context, api creator, gen *generator, n int) (int, error) {
	created := 0
	for i := 0; i < n; i++ {
		var err error
		for attempt := 0; attempt < maxAttempts; attempt++ {
			_, err = api.Create(ctx, gen.request())
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) && apiErr.IsValidation() && len(apiErr.Errors[vendedor.FieldNIF]) > 0 {
				continue
			}
			break
		}
		if err != nil {
			return created, fmt.Errorf("vendedor %d: %w", i+1, err)
		}
		created++
	}
	return created, nil
}

type generator struct {
	f faker.Faker
}

func newGenerator(seed int64) *generator {
	return &generator{f: faker.NewWithSeed(rand.NewSource(seed))}
}

func (g *generator) request() dto.VendedorRequest {
	p := g.f.Person()
	var name, sex string
	switch g.f.IntBetween(0, 9) {
	case 0:
		name, sex = p.FirstName(), entity.SexOther
	case 1, 2, 3, 4:
		name, sex = p.FirstNameFemale(), entity.SexFemale
	default:
		name, sex = p.FirstNameMale(), entity.SexMale
	}
	name += " " + p.LastName() + " " + p.LastName()

	birth := time.Date(g.f.IntBetween(1960, 2004), time.Month(g.f.IntBetween(1, 12)), g.f.IntBetween(1, 28), 0, 0, 0, 0, time.UTC)
	salary := fmt.Sprintf("%d.%02d", g.f.IntBetween(1000, 4500), g.f.IntBetween(0, 99))

	return dto.VendedorRequest{
		Name:       dto.Value(name),
		NIF:        dto.Value(g.nif()),
		BirthDate:  dto.Value(birth.Format(vendedor.DateLayout)),
		Sex:        dto.Value(sex),
		BaseSalary: dto.Value(salary),
	}
}

// nif genera un DNI (o NIE, uno de cada cinco) con letra de control correcta.
func (g *generator) nif() string {
	var base string
	if g.f.IntBetween(0, 4) == 0 {
		base = fmt.Sprintf("%c%07d", "XYZ"[g.f.IntBetween(0, 2)], g.f.IntBetween(0, 9999999))
	} else {
		base = fmt.Sprintf("%08d", g.f.IntBetween(0, 99999999))
	}
	letter, err := nif.ComputeControlLetter(base)
	if err != nil {
		panic(err)
	}
	return base + string(letter)
}
