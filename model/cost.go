package model

// StudioJobCost is a StudioJob with its rate and cost resolved at
// cost-computation time. Derived, never persisted.
type StudioJobCost struct {
	StudioJob
	Rate float64 `json:"rate"`
	Cost float64 `json:"cost"`
}

// LineItemCost is a print line with its cost and resolved billing category.
type LineItemCost struct {
	LineItem
	CoreOAB string  `json:"coreOab"`
	Cost    float64 `json:"cost"`
}

// ProjectCost is the per-project breakdown row of the cost preview.
type ProjectCost struct {
	ProjectRef         string  `json:"projectRef"`
	ProjectDescription string  `json:"projectDescription"`
	Lines              int     `json:"lines"`
	StudioHours        float64 `json:"studioHours"`
	StudioCost         float64 `json:"studioCost"`
	ProductionCost     float64 `json:"productionCost"`
	TotalCost          float64 `json:"totalCost"`
	CoreOAB            string  `json:"coreOab"`
}

// CostReport is the full cost preview: layered totals plus breakdowns.
type CostReport struct {
	Studio []StudioJobCost `json:"studio"`
	Print  []LineItemCost  `json:"print"`

	StudioCore float64 `json:"studioCore"`
	StudioOAB  float64 `json:"studioOab"`
	PrintCore  float64 `json:"printCore"`
	PrintOAB   float64 `json:"printOab"`

	CoreTotal  float64 `json:"coreTotal"`
	OABTotal   float64 `json:"oabTotal"`
	GrandTotal float64 `json:"grandTotal"`

	Projects []ProjectCost `json:"projects"`
}
