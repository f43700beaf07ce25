package metrics

import "strings"

// maxSimilarKPIs caps the number of library matches surfaced on a
// custom metric definition.
const maxSimilarKPIs = 5

// KPIRef is a short pointer into the KPI library.
type KPIRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DataRequirements names the schema surface a custom metric needs.
type DataRequirements struct {
	PrimaryEntity   string   `json:"primary_entity"`
	RequiredColumns []string `json:"required_columns"`
	RelatedEntities []string `json:"related_entities"`
	FiltersNeeded   []string `json:"filters_needed"`
}

// CustomDefinition is the generated specification for a custom metric.
type CustomDefinition struct {
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	SuggestedFormula     string           `json:"suggested_formula"`
	DataRequirements     DataRequirements `json:"data_requirements"`
	CalculationFrequency string           `json:"calculation_frequency"`
	VisualizationType    string           `json:"visualization_type"`
}

// DefineResult is the output of Define.
type DefineResult struct {
	Success             bool             `json:"success"`
	MetricRequest       string           `json:"metric_request"`
	BusinessContext     string           `json:"business_context"`
	SimilarExistingKPIs []KPIRef         `json:"similar_existing_kpis"`
	CustomDefinition    CustomDefinition `json:"custom_definition"`
	ImplementationSteps []string         `json:"implementation_steps"`
}

// Define drafts a custom metric specification from a name and business
// context. Formula, frequency, and visualization are suggested by
// keyword rules; similar library KPIs are listed for reuse.
func Define(metricName, businessContext, targetEntity string) DefineResult {
	metricLower := strings.ToLower(metricName)

	var similar []KPIRef
	for _, category := range Library {
		for _, metric := range category.Metrics {
			if strings.Contains(strings.ToLower(metric.Name), metricLower) ||
				strings.Contains(strings.ToLower(metric.Description), metricLower) {
				similar = append(similar, KPIRef{
					ID:          metric.ID,
					Name:        metric.Name,
					Description: metric.Description,
				})
			}
		}
	}
	if len(similar) > maxSimilarKPIs {
		similar = similar[:maxSimilarKPIs]
	}
	if similar == nil {
		similar = []KPIRef{}
	}

	return DefineResult{
		Success:             true,
		MetricRequest:       metricName,
		BusinessContext:     businessContext,
		SimilarExistingKPIs: similar,
		CustomDefinition: CustomDefinition{
			Name:                 metricName,
			Description:          "Custom metric for: " + businessContext,
			SuggestedFormula:     suggestFormula(metricLower),
			DataRequirements:     identifyDataRequirements(metricLower, targetEntity),
			CalculationFrequency: suggestFrequency(metricLower),
			VisualizationType:    suggestVisualization(metricLower),
		},
		ImplementationSteps: []string{
			"1. Validate data availability in CRM schema",
			"2. Create SQL query for data extraction",
			"3. Set up calculation schedule (if recurring)",
			"4. Add to dashboard or reporting system",
			"5. Define thresholds and alerts if needed",
		},
	}
}

func suggestFormula(nameLower string) string {
	switch {
	case strings.Contains(nameLower, "rate") || strings.Contains(nameLower, "percentage"):
		return "(COUNT(matching_records) / COUNT(total_records)) * 100"
	case strings.Contains(nameLower, "average") || strings.Contains(nameLower, "avg"):
		return "AVG(column_name)"
	case strings.Contains(nameLower, "total") || strings.Contains(nameLower, "sum"):
		return "SUM(column_name)"
	case strings.Contains(nameLower, "count") || strings.Contains(nameLower, "number"):
		return "COUNT(records)"
	case strings.Contains(nameLower, "time") || strings.Contains(nameLower, "duration"):
		return "AVG(DATEDIFF(unit, start_date, end_date))"
	}
	return "Define based on specific requirements"
}

func identifyDataRequirements(nameLower, targetEntity string) DataRequirements {
	req := DataRequirements{
		PrimaryEntity:   targetEntity,
		RequiredColumns: []string{},
		RelatedEntities: []string{},
		FiltersNeeded:   []string{},
	}
	if req.PrimaryEntity == "" {
		req.PrimaryEntity = "To be determined"
	}

	switch {
	case strings.Contains(nameLower, "opportunity") || strings.Contains(nameLower, "deal") ||
		strings.Contains(nameLower, "pipeline"):
		req.PrimaryEntity = "Opportunity"
		req.RequiredColumns = []string{"Amount", "StageId", "CloseDate", "OwnerId"}
		req.RelatedEntities = []string{"OpportunityStage", "Account"}
	case strings.Contains(nameLower, "lead"):
		req.PrimaryEntity = "Lead"
		req.RequiredColumns = []string{"QualifyStatusId", "LeadSourceId", "CreatedOn"}
		req.RelatedEntities = []string{"QualifyStatus", "LeadSource"}
	case strings.Contains(nameLower, "case") || strings.Contains(nameLower, "ticket") ||
		strings.Contains(nameLower, "support"):
		req.PrimaryEntity = "Case"
		req.RequiredColumns = []string{"StatusId", "RegisteredOn", "SolutionDate"}
		req.RelatedEntities = []string{"CaseStatus", "SatisfactionLevel"}
	case strings.Contains(nameLower, "activity") || strings.Contains(nameLower, "call") ||
		strings.Contains(nameLower, "meeting"):
		req.PrimaryEntity = "Activity"
		req.RequiredColumns = []string{"TypeId", "StatusId", "StartDate", "OwnerId"}
		req.RelatedEntities = []string{"ActivityType", "ActivityStatus"}
	}
	return req
}

func suggestFrequency(nameLower string) string {
	switch {
	case strings.Contains(nameLower, "daily") || strings.Contains(nameLower, "today"):
		return "daily"
	case strings.Contains(nameLower, "weekly"):
		return "weekly"
	case strings.Contains(nameLower, "monthly"):
		return "monthly"
	case strings.Contains(nameLower, "quarterly"):
		return "quarterly"
	case strings.Contains(nameLower, "year") || strings.Contains(nameLower, "annual"):
		return "yearly"
	case strings.Contains(nameLower, "rate") || strings.Contains(nameLower, "percentage"):
		return "monthly"
	}
	return "weekly"
}

func suggestVisualization(nameLower string) string {
	switch {
	case strings.Contains(nameLower, "trend") || strings.Contains(nameLower, "over time"):
		return "line_chart"
	case strings.Contains(nameLower, "by ") || strings.Contains(nameLower, "breakdown"):
		return "bar_chart"
	case strings.Contains(nameLower, "distribution"):
		return "pie_chart"
	case strings.Contains(nameLower, "rate") || strings.Contains(nameLower, "percentage"):
		return "gauge"
	case strings.Contains(nameLower, "comparison"):
		return "bar_chart"
	}
	return "single_value_card"
}
