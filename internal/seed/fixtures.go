package seed

import (
	"embed"
	"fmt"

	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFiles embed.FS

// Fixtures is the data Apply loads.
type Fixtures struct {
	Customers []model.Customer
	Shippers  []model.Shipper
	Products  []model.Product
}

// customerFixture spells the nullable columns as optional strings; an
// absent key means NULL.
type customerFixture struct {
	model.Customer `yaml:",inline"`
	Region         *string `yaml:"region"`
	Fax            *string `yaml:"fax"`
}

func (f customerFixture) customer() model.Customer {
	c := f.Customer
	c.Region = nullable(f.Region)
	c.Fax = nullable(f.Fax)
	return c
}

func nullable(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// LoadFixtures parses the embedded fixture files.
func LoadFixtures() (Fixtures, error) {
	var fx Fixtures

	var customers []customerFixture
	if err := decode("fixtures/customers.yaml", &customers); err != nil {
		return fx, err
	}
	for _, c := range customers {
		fx.Customers = append(fx.Customers, c.customer())
	}

	if err := decode("fixtures/shippers.yaml", &fx.Shippers); err != nil {
		return fx, err
	}
	if err := decode("fixtures/products.yaml", &fx.Products); err != nil {
		return fx, err
	}
	return fx, nil
}

func decode(name string, out any) error {
	data, err := fixtureFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
