package pipeline

import (
	"fmt"

	"prospector/pkg/websets"
)

// NewVerticalSearch builds the creation parameters for a vertical prospecting
// webset: the canonical query, the two verification criteria and the standard
// enrichment pair whose order the flattener relies on.
func NewVerticalSearch(vertical string, count int) websets.CreateParams {
	query := fmt.Sprintf("Find US-based companies that work in the vertical of %s"+
		" with the number of money they raised"+
		" and the contact information for their CEO.", vertical)

	return websets.CreateParams{
		Search: websets.Search{
			Query: query,
			Criteria: []websets.Criterion{
				{Description: "company is headquartered in the united states"},
				{Description: fmt.Sprintf("company operates in the %s industry", vertical)},
			},
			Count: count,
		},
		Enrichments: []websets.Enrichment{
			{Description: "CEO Email", Format: websets.FormatText},
			{Description: "Money Raised", Format: websets.FormatNumber},
		},
	}
}
