package testdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jordanlanch/leadreach/ent"
)

// GeneratorConfig configures fake lead generation
type GeneratorConfig struct {
	Count            int
	Tag              string
	CompanyChance    float64 // 0.0-1.0 probability a lead gets a company
	CustomFieldNames []string
}

// DefaultConfig returns a sensible generation config
func DefaultConfig(count int) GeneratorConfig {
	return GeneratorConfig{
		Count:            count,
		CompanyChance:    0.7,
		CustomFieldNames: []string{"city", "source"},
	}
}

// Generator creates fake companies and leads for seeding and demos
type Generator struct {
	db *ent.Client
}

// NewGenerator creates a new test data generator
func NewGenerator(db *ent.Client) *Generator {
	return &Generator{db: db}
}

// GenerateCompany creates one fake company with a unique domain
func (g *Generator) GenerateCompany(ctx context.Context) (*ent.Company, error) {
	name := gofakeit.Company()
	domain := companyDomain(name)

	return g.db.Company.Create().
		SetName(name).
		SetDomain(domain).
		Save(ctx)
}

// GenerateLeads creates cfg.Count fake leads for the user, attaching a
// share of them to freshly generated companies
func (g *Generator) GenerateLeads(ctx context.Context, userID int, cfg GeneratorConfig) ([]*ent.Lead, error) {
	leads := make([]*ent.Lead, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		person := gofakeit.Person()

		create := g.db.Lead.Create().
			SetUserID(userID).
			SetEmail(fmt.Sprintf("%s.%s.%d@%s", strings.ToLower(person.FirstName), strings.ToLower(person.LastName), i, gofakeit.DomainName())).
			SetName(person.FirstName + " " + person.LastName).
			SetRole(gofakeit.JobTitle())
		if cfg.Tag != "" {
			create.SetTag(cfg.Tag)
		}

		if gofakeit.Float64Range(0, 1) < cfg.CompanyChance {
			comp, err := g.GenerateCompany(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to generate company: %w", err)
			}
			create.SetCompanyID(comp.ID)
		}

		if len(cfg.CustomFieldNames) > 0 {
			fields := make(map[string]string, len(cfg.CustomFieldNames))
			for _, name := range cfg.CustomFieldNames {
				switch name {
				case "city":
					fields[name] = gofakeit.City()
				case "source":
					fields[name] = gofakeit.RandomString([]string{"linkedin", "conference", "referral", "cold list"})
				default:
					fields[name] = gofakeit.Word()
				}
			}
			create.SetCustomFields(fields)
		}

		l, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate lead: %w", err)
		}
		leads = append(leads, l)
	}

	return leads, nil
}

func companyDomain(name string) string {
	slug := strings.ToLower(name)
	for _, r := range []string{" ", ",", ".", "'", "-", "&"} {
		slug = strings.ReplaceAll(slug, r, "")
	}
	// gofakeit company names can collide; a random suffix keeps domains unique
	return fmt.Sprintf("%s%d.com", slug, gofakeit.Number(10, 9999))
}
