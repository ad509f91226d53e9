package domain

// PropertyTypeCompany is the item property shape this application knows how to
// flatten. Websets can also carry people or article items; those are rejected.
const PropertyTypeCompany = "company"

// WebsetSummary is the shallow representation of a webset returned by list
// calls: enough to identify the set and label its vertical, without items.
type WebsetSummary struct {
	// ID is the provider-assigned opaque identifier of the webset.
	ID string `json:"id"`
	// Title is the human-readable search title, used as the vertical label.
	Title string `json:"title"`
}

// Webset is a saved search result set fetched from the remote provider.
type Webset struct {
	// ID is the provider-assigned opaque identifier of the webset.
	ID string `json:"id"`
	// Title is the search title; every record flattened from this webset
	// carries it as the Vertical field.
	Title string `json:"title"`
	// Items holds the member items when the webset was fetched with
	// expand=items. A nil pointer means items were not requested; an empty
	// slice means the webset genuinely has no items.
	Items *[]Item `json:"items,omitempty"`
}

// Item is one candidate company inside a webset.
type Item struct {
	// Properties describe the found entity and its source page.
	Properties ItemProperties `json:"properties"`
	// Enrichments are the derived fields computed by the provider for this
	// item, in the order the enrichments were requested at creation time.
	Enrichments []EnrichmentResult `json:"enrichments"`
}

// ItemProperties describe what an item points at. Only the company shape is
// supported by the flattener; Type distinguishes the variants on the wire.
type ItemProperties struct {
	// Type is the property shape discriminator (e.g. "company").
	Type string `json:"type"`
	// URL is the source page the item was found on.
	URL string `json:"url"`
	// Description is the provider's summary of the item.
	Description string `json:"description"`
	// Company carries the structured company fields; nil for non-company items.
	Company *CompanyProperties `json:"company,omitempty"`
}

// CompanyProperties are the structured fields of a company item.
type CompanyProperties struct {
	// Name is the company name, also the deduplication key across tables.
	Name string `json:"name"`
	// Location is the company headquarters location.
	Location string `json:"location"`
	// Industry is the provider-detected industry label.
	Industry string `json:"industry"`
	// Employees is the reported employee count; nil when unknown.
	Employees *int `json:"employees,omitempty"`
}

// EnrichmentResult is one derived field computed by the provider for an item.
type EnrichmentResult struct {
	// Result holds the derived values; the first element is the scalar value
	// used by the flattener. Empty or nil means the provider found nothing.
	Result []string `json:"result,omitempty"`
	// Reasoning explains how the value was derived, or why it is absent.
	Reasoning string `json:"reasoning"`
}
