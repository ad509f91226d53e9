package pipeline_test

import (
	"testing"

	"prospector/internal/pipeline"
	"prospector/pkg/domain"
	"prospector/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// companyItem builds a well-formed company item with the given enrichment
// values in the canonical email-then-financials order.
func companyItem(email, financials []string) domain.Item {
	employees := 12

	return domain.Item{
		Properties: domain.ItemProperties{
			Type:        domain.PropertyTypeCompany,
			URL:         "https://acme.example",
			Description: "payments for everyone",
			Company: &domain.CompanyProperties{
				Name:      "Acme",
				Location:  "USA",
				Industry:  "fintech",
				Employees: &employees,
			},
		},
		Enrichments: []domain.EnrichmentResult{
			{Result: email, Reasoning: "email reasoning"},
			{Result: financials, Reasoning: "financials reasoning"},
		},
	}
}

func TestFlattenMapsAllFields(t *testing.T) {
	rec, err := pipeline.Flatten(companyItem([]string{"ceo@acme.com"}, []string{"$5M"}), "Fintech")
	require.NoError(t, err)

	require.Equal(t, domain.Record{
		CompanyName:         "Acme",
		Vertical:            "Fintech",
		MoneyRaised:         "$5M",
		CEOEmail:            "ceo@acme.com",
		Location:            "USA",
		Employees:           "12",
		Industry:            "fintech",
		URL:                 "https://acme.example",
		Description:         "payments for everyone",
		EmailReasoning:      "email reasoning",
		FinancialsReasoning: "financials reasoning",
	}, rec)
}

func TestFlattenInvalidEmailBecomesAbsent(t *testing.T) {
	rec, err := pipeline.Flatten(companyItem([]string{"bad-email"}, []string{"$5M"}), "Fintech")
	require.NoError(t, err)

	require.Empty(t, rec.CEOEmail)
	require.Equal(t, "$5M", rec.MoneyRaised)
	require.Equal(t, "email reasoning", rec.EmailReasoning, "reasoning is kept even when the value is dropped")
}

func TestFlattenEmptyEnrichmentResults(t *testing.T) {
	rec, err := pipeline.Flatten(companyItem(nil, nil), "Fintech")
	require.NoError(t, err)

	require.Empty(t, rec.CEOEmail)
	require.Empty(t, rec.MoneyRaised)
	require.Equal(t, "email reasoning", rec.EmailReasoning)
	require.Equal(t, "financials reasoning", rec.FinancialsReasoning)
}

func TestFlattenEnrichmentCountMustBeTwo(t *testing.T) {
	for _, count := range []int{0, 1, 3} {
		item := companyItem([]string{"ceo@acme.com"}, []string{"$5M"})
		enrichments := make([]domain.EnrichmentResult, count)
		for i := range enrichments {
			enrichments[i] = domain.EnrichmentResult{Reasoning: "r"}
		}
		item.Enrichments = enrichments

		_, err := pipeline.Flatten(item, "Fintech")
		require.Error(t, err, "enrichment count %d must be rejected", count)
		require.ErrorIs(t, err, serrors.ErrSchemaViolation)
	}
}

func TestFlattenRejectsNonCompanyProperties(t *testing.T) {
	item := companyItem([]string{"ceo@acme.com"}, []string{"$5M"})
	item.Properties.Type = "person"
	item.Properties.Company = nil

	_, err := pipeline.Flatten(item, "Fintech")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrSchemaViolation)
}

func TestFlattenMissingEmployeesIsAbsent(t *testing.T) {
	item := companyItem(nil, nil)
	item.Properties.Company.Employees = nil

	rec, err := pipeline.Flatten(item, "Fintech")
	require.NoError(t, err)
	require.Empty(t, rec.Employees)
}
