// Package customers holds the legacy customer-code registry that salon
// owners quote when they claim a listing. It is loaded once at start from
// the registry's CSV export.
package customers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Customer is one row of the registry export.
type Customer struct {
	Codigo     string `json:"codigo"`
	Nome       string `json:"nome"`
	Pais       string `json:"pais"`
	NIF        string `json:"nif"`
	Estado     string `json:"estado"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"`
	Website    string `json:"website"`
	PaisMorada string `json:"pais_morada"`
	Regiao     string `json:"regiao"`
	Cidade     string `json:"cidade"`
	Rua        string `json:"rua"`
	Porta      string `json:"porta"`
	CodPostal  string `json:"cod_postal"`
}

// Directory answers whether a customer code exists. Implementations must be
// safe for concurrent use.
type Directory interface {
	// Load replaces the directory's contents.
	Load(ctx context.Context, customers []Customer) error
	Contains(ctx context.Context, code string) (bool, error)
	// Lookup returns nil without error for an unknown code.
	Lookup(ctx context.Context, code string) (*Customer, error)
	Len(ctx context.Context) (int64, error)
}

const codeColumn = "Código"

var ErrNoCodeColumn = errors.New("customers: csv has no Código column")

// ValidCode reports whether code is a non-empty run of ASCII digits.
func ValidCode(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ReadCSV parses the registry export. The header may start with a UTF-8
// BOM; rows whose code is not purely numeric are skipped.
func ReadCSV(r io.Reader) ([]Customer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCodeColumn
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}
	if _, ok := idx[codeColumn]; !ok {
		return nil, ErrNoCodeColumn
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []Customer
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		code := field(rec, codeColumn)
		if !ValidCode(code) {
			continue
		}

		out = append(out, Customer{
			Codigo:     code,
			Nome:       field(rec, "Nome"),
			Pais:       field(rec, "País"),
			NIF:        field(rec, "NIF"),
			Estado:     field(rec, "Estado"),
			Telefone:   field(rec, "Telefone"),
			Email:      field(rec, "Email"),
			Website:    field(rec, "Website"),
			PaisMorada: field(rec, "País Morada"),
			Regiao:     field(rec, "Região"),
			Cidade:     field(rec, "Cidade"),
			Rua:        field(rec, "Rua"),
			Porta:      field(rec, "Porta"),
			CodPostal:  field(rec, "Cod-Postal"),
		})
	}

	return out, nil
}

// LoadFile reads path and loads it into dir. It returns the number of codes
// loaded.
func LoadFile(ctx context.Context, dir Directory, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open customer codes: %w", err)
	}
	defer f.Close()

	list, err := ReadCSV(f)
	if err != nil {
		return 0, err
	}

	if err := dir.Load(ctx, list); err != nil {
		return 0, err
	}
	return len(list), nil
}
