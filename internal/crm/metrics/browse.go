package metrics

import "strings"

// BrowseFilter echoes the filter applied to a library listing.
type BrowseFilter struct {
	Category   string `json:"category,omitempty"`
	SearchTerm string `json:"search_term,omitempty"`
}

// BrowseEntry is one KPI in a library listing.
type BrowseEntry struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Frequency   string `json:"frequency"`
}

// BrowseSummary counts a library listing.
type BrowseSummary struct {
	TotalKPIsFound      int      `json:"total_kpis_found"`
	CategoriesSearched  []string `json:"categories_searched"`
	AvailableCategories []string `json:"available_categories"`
}

// BrowseResult is the output of Browse.
type BrowseResult struct {
	Success bool          `json:"success"`
	Filter  BrowseFilter  `json:"filter"`
	KPIs    []BrowseEntry `json:"kpis"`
	Summary BrowseSummary `json:"summary"`
}

// Browse lists the KPI library, optionally restricted to one category
// and filtered by a case-insensitive search term over names and
// descriptions.
func Browse(category, searchTerm string) BrowseResult {
	result := BrowseResult{
		Success: true,
		Filter:  BrowseFilter{Category: category, SearchTerm: searchTerm},
		KPIs:    []BrowseEntry{},
	}

	var searched []string
	termLower := strings.ToLower(searchTerm)

	for _, cat := range Library {
		if category != "" && !strings.EqualFold(cat.Name, category) {
			continue
		}
		searched = append(searched, cat.Name)
		for _, metric := range cat.Metrics {
			if termLower != "" &&
				!strings.Contains(strings.ToLower(metric.Name), termLower) &&
				!strings.Contains(strings.ToLower(metric.Description), termLower) {
				continue
			}
			result.KPIs = append(result.KPIs, BrowseEntry{
				ID:          metric.ID,
				Category:    cat.Name,
				Name:        metric.Name,
				Description: metric.Description,
				Unit:        metric.Unit,
				Frequency:   metric.Frequency,
			})
		}
	}
	if searched == nil {
		searched = []string{}
	}

	result.Summary = BrowseSummary{
		TotalKPIsFound:      len(result.KPIs),
		CategoriesSearched:  searched,
		AvailableCategories: Categories(),
	}
	return result
}
