package pipeline

import (
	"strconv"

	"prospector/pkg/domain"
	"prospector/pkg/serrors"
)

// Enrichment positions fixed by the webset creation order: the email
// enrichment is requested first, the financial one second.
const (
	emailEnrichment      = 0
	financialsEnrichment = 1
	wantEnrichments      = 2
)

// Flatten converts one webset item into a flat record labeled with the given
// vertical. It fails with a schema violation when the item's properties are
// not of the company shape or when the enrichment count is not exactly two.
func Flatten(item domain.Item, vertical string) (domain.Record, error) {
	props := item.Properties
	if props.Type != domain.PropertyTypeCompany || props.Company == nil {
		return domain.Record{}, serrors.With(serrors.ErrSchemaViolation,
			"item properties have type %q, expected %q", props.Type, domain.PropertyTypeCompany)
	}
	if len(item.Enrichments) != wantEnrichments {
		return domain.Record{}, serrors.With(serrors.ErrSchemaViolation,
			"expected %d enrichments, got %d", wantEnrichments, len(item.Enrichments))
	}

	company := props.Company

	var employees string
	if company.Employees != nil {
		employees = strconv.Itoa(*company.Employees)
	}

	return domain.Record{
		CompanyName:         company.Name,
		Vertical:            vertical,
		MoneyRaised:         firstResult(item.Enrichments[financialsEnrichment]),
		CEOEmail:            ValidateEmail(firstResult(item.Enrichments[emailEnrichment])),
		Location:            company.Location,
		Employees:           employees,
		Industry:            company.Industry,
		URL:                 props.URL,
		Description:         props.Description,
		EmailReasoning:      item.Enrichments[emailEnrichment].Reasoning,
		FinancialsReasoning: item.Enrichments[financialsEnrichment].Reasoning,
	}, nil
}

// firstResult returns the scalar value of an enrichment: the first result
// element when present, the empty string when the provider found nothing.
func firstResult(e domain.EnrichmentResult) string {
	if len(e.Result) > 0 {
		return e.Result[0]
	}

	return ""
}
