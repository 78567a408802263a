package model

// LineItem is one production line from a "Production Lines INTERNAL" export.
// BriefRef is unique across the combined input (first occurrence wins on
// dedupe). Rows are never deleted on status grounds, only annotated via
// StatusNote.
type LineItem struct {
	ProjectRef         string `json:"projectRef"`
	EventName          string `json:"eventName"`
	ProjectDescription string `json:"projectDescription"`
	ProjectOwner       string `json:"projectOwner"`
	BriefRef           string `json:"briefRef"`
	POSCode            string `json:"posCode"`
	BriefDescription   string `json:"briefDescription"`
	PartURN            string `json:"partUrn"`
	Part               string `json:"part"`

	Height float64 `json:"height"`
	Width  float64 `json:"width"`

	ColoursFront             string  `json:"coloursFront"`
	ColoursBack              string  `json:"coloursBack"`
	Material                 string  `json:"material"`
	NoOfPages                float64 `json:"noOfPages"`
	ProductionFinishingNotes string  `json:"productionFinishingNotes"`
	SupplierComments         string  `json:"supplierComments"`
	AllocatedQty             float64 `json:"allocatedQty"`
	Spares                   float64 `json:"spares"`
	TotalIncludingSpares     float64 `json:"totalIncludingSpares"`
	NoOfStores               float64 `json:"noOfStores"`
	InStoreDeadline          string  `json:"inStoreDeadline"`

	ContentBriefStatus  string  `json:"contentBriefStatus"`
	SupplierBriefStatus string  `json:"supplierBriefStatus"`
	ProductionSellPrice float64 `json:"productionSellPrice"`
	Comments            string  `json:"comments"`

	// StatusNote is set by the production annotation step when the supplier
	// brief status indicates the line is not in production yet.
	StatusNote string `json:"statusNote"`
}
