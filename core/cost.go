package core

import "itg.uk/invoicegen/model"

// Studio rates per job type, in pounds per hour.
const (
	RateArtwork         = 49.5
	RateCreativeArtwork = 57.0
	RateDigital         = 49.5
	RateDefault         = 49.5
)

// StudioRate resolves the hourly rate for a job type. Unknown or missing
// types take the default rate.
func StudioRate(jobType string) float64 {
	switch jobType {
	case model.TypeArtwork:
		return RateArtwork
	case model.TypeCreativeArtwork:
		return RateCreativeArtwork
	case model.TypeDigital:
		return RateDigital
	default:
		return RateDefault
	}
}

// ComputeCosts produces the cost preview: per-row studio and print costs,
// Core/OAB and grand totals, and the per-project breakdown. Dirty data never
// fails here; missing hours and prices are treated as zero, and print lines
// whose project is absent from the studio table bill as CORE.
func ComputeCosts(jobs []model.StudioJob, items []model.LineItem) model.CostReport {
	report := model.CostReport{}

	categoryByRef := make(map[string]string, len(jobs))
	for i := range jobs {
		categoryByRef[jobs[i].ProjectRef] = jobs[i].EffectiveCoreOAB()
	}

	studioCostByRef := make(map[string]float64, len(jobs))
	for _, job := range jobs {
		rate := StudioRate(job.EffectiveType())
		cost := job.HoursOrZero() * rate

		studioCostByRef[job.ProjectRef] = cost
		if job.EffectiveCoreOAB() == model.CategoryOAB {
			report.StudioOAB += cost
		} else {
			report.StudioCore += cost
		}
		report.Studio = append(report.Studio, model.StudioJobCost{
			StudioJob: job,
			Rate:      rate,
			Cost:      cost,
		})
	}

	printCostByRef := make(map[string]float64)
	for _, item := range items {
		cost := item.ProductionSellPrice * item.TotalIncludingSpares

		category, ok := categoryByRef[item.ProjectRef]
		if !ok {
			category = model.CategoryCore
		}
		if category == model.CategoryOAB {
			report.PrintOAB += cost
		} else {
			report.PrintCore += cost
		}

		printCostByRef[item.ProjectRef] += cost
		report.Print = append(report.Print, model.LineItemCost{
			LineItem: item,
			CoreOAB:  category,
			Cost:     cost,
		})
	}

	report.CoreTotal = report.StudioCore + report.PrintCore
	report.OABTotal = report.StudioOAB + report.PrintOAB
	report.GrandTotal = report.CoreTotal + report.OABTotal

	for _, job := range jobs {
		studioCost := studioCostByRef[job.ProjectRef]
		productionCost := printCostByRef[job.ProjectRef]
		report.Projects = append(report.Projects, model.ProjectCost{
			ProjectRef:         job.ProjectRef,
			ProjectDescription: job.ProjectDescription,
			Lines:              job.Lines,
			StudioHours:        job.HoursOrZero(),
			StudioCost:         studioCost,
			ProductionCost:     productionCost,
			TotalCost:          studioCost + productionCost,
			CoreOAB:            job.EffectiveCoreOAB(),
		})
	}

	return report
}
