package enrichment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/enttest"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/workflow"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

type fakeGenerator struct {
	template *Template
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateCompanyTemplate(ctx context.Context, name, domain string) (*Template, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.template, nil
}

type fakeValidator struct {
	err   error
	calls int
}

func (f *fakeValidator) ValidateTemplate(ctx context.Context, tpl *Template) error {
	f.calls++
	return f.err
}

func createCompany(t *testing.T, client *ent.Client, domain string) *ent.Company {
	c, err := client.Company.Create().
		SetDomain(domain).
		SetName("Acme").
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func newTestService(client *ent.Client, gen Generator, val Validator) *Service {
	runner := workflow.NewRunner(client, logger.Nop())
	return NewService(client, runner, gen, val, logger.Nop(), 3)
}

func TestIsStale(t *testing.T) {
	now := time.Now()
	started := now.Add(-10 * time.Minute)
	recent := now.Add(-time.Minute)

	tests := []struct {
		name    string
		company *ent.Company
		want    bool
	}{
		{
			name:    "completed is never stale",
			company: &ent.Company{EnrichmentStatus: company.EnrichmentStatusCompleted, EnrichmentStartedAt: &started},
			want:    false,
		},
		{
			name:    "pending is never stale",
			company: &ent.Company{EnrichmentStatus: company.EnrichmentStatusPending},
			want:    false,
		},
		{
			name:    "processing without a start time is stale",
			company: &ent.Company{EnrichmentStatus: company.EnrichmentStatusProcessing},
			want:    true,
		},
		{
			name:    "processing within the window is not stale",
			company: &ent.Company{EnrichmentStatus: company.EnrichmentStatusProcessing, EnrichmentStartedAt: &recent},
			want:    false,
		},
		{
			name:    "processing beyond the window is stale",
			company: &ent.Company{EnrichmentStatus: company.EnrichmentStatusProcessing, EnrichmentStartedAt: &started},
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStale(tt.company, now))
		})
	}
}

func TestEnrichCompany_Success(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	c := createCompany(t, client, "acme.com")

	gen := &fakeGenerator{template: &Template{
		Subject: "Quick question about Acme",
		Body:    "<p>Hi {{name}}</p>",
	}}
	val := &fakeValidator{}
	service := newTestService(client, gen, val)

	require.NoError(t, service.EnrichCompany(ctx, c.ID))

	loaded, err := client.Company.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, company.EnrichmentStatusCompleted, loaded.EnrichmentStatus)
	assert.Equal(t, "Quick question about Acme", loaded.EmailSubject)
	assert.Equal(t, "<p>Hi {{name}}</p>", loaded.EmailTemplate)
	assert.Empty(t, loaded.EnrichmentError)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, val.calls)
}

func TestEnrichCompany_ValidatorFailureIsAdvisory(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	c := createCompany(t, client, "acme.com")

	gen := &fakeGenerator{template: &Template{Subject: "s", Body: "b"}}
	val := &fakeValidator{err: errors.New("content flagged")}
	service := newTestService(client, gen, val)

	// A flagged template is logged, not rejected.
	require.NoError(t, service.EnrichCompany(ctx, c.ID))

	loaded, err := client.Company.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, company.EnrichmentStatusCompleted, loaded.EnrichmentStatus)
}

func TestEnrichCompany_GeneratorFailure(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	c := createCompany(t, client, "acme.com")

	gen := &fakeGenerator{err: workflow.Fatal(errors.New("content policy rejection"))}
	service := newTestService(client, gen, nil)

	err := service.EnrichCompany(ctx, c.ID)
	require.Error(t, err)

	loaded, gerr := client.Company.Get(ctx, c.ID)
	require.NoError(t, gerr)
	assert.Equal(t, company.EnrichmentStatusFailed, loaded.EnrichmentStatus)
	assert.Contains(t, loaded.EnrichmentError, "content policy rejection")
}

func TestEnrichCompany_MissingCompanyIsFatal(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &fakeGenerator{}, nil)

	err := service.EnrichCompany(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, workflow.IsFatal(err))
}

func TestFindStale(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()

	stuck, err := client.Company.Create().
		SetDomain("stuck.com").
		SetName("Stuck").
		SetEnrichmentStatus(company.EnrichmentStatusProcessing).
		SetEnrichmentStartedAt(now.Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Company.Create().
		SetDomain("fresh.com").
		SetName("Fresh").
		SetEnrichmentStatus(company.EnrichmentStatusProcessing).
		SetEnrichmentStartedAt(now.Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Company.Create().
		SetDomain("done.com").
		SetName("Done").
		SetEnrichmentStatus(company.EnrichmentStatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	service := newTestService(client, &fakeGenerator{}, nil)

	stale, err := service.FindStale(ctx, now)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, stuck.ID, stale[0].ID)
}
