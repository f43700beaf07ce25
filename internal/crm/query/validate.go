package query

import "strings"

// knownEntities are the lowercase entity names recognized by the
// validator when scanning for table references.
var knownEntities = []string{
	"contact", "account", "opportunity", "lead", "activity",
	"case", "product", "order", "sysadminunit", "syslookup",
}

var commonTypos = []struct{ typo, correct string }{
	{"slect", "SELECT"},
	{"frmo", "FROM"},
	{"wehre", "WHERE"},
	{"gruop", "GROUP"},
	{"ordre", "ORDER"},
}

// ValidationSummary counts what the validator found.
type ValidationSummary struct {
	IsValid       bool `json:"is_valid"`
	ErrorCount    int  `json:"error_count"`
	WarningCount  int  `json:"warning_count"`
	EntitiesFound int  `json:"entities_found"`
}

// ValidateResult is the output of Validate.
type ValidateResult struct {
	Success            bool              `json:"success"`
	Query              string            `json:"query"`
	QueryType          string            `json:"query_type"`
	IsValid            bool              `json:"is_valid"`
	Errors             []string          `json:"errors"`
	Warnings           []string          `json:"warnings"`
	EntitiesReferenced []string          `json:"entities_referenced"`
	Summary            ValidationSummary `json:"validation_summary"`
}

// Validate performs lightweight syntax and schema-compatibility checks
// on a SQL or OData query. It never returns an error; problems surface
// as Errors (validity) and Warnings (caution).
func Validate(queryText, queryType string) ValidateResult {
	if queryType == "" {
		queryType = TypeSQL
	}
	result := ValidateResult{
		Success:            true,
		Query:              queryText,
		QueryType:          queryType,
		IsValid:            true,
		Errors:             []string{},
		Warnings:           []string{},
		EntitiesReferenced: []string{},
	}

	queryLower := strings.ToLower(queryText)

	for _, entity := range knownEntities {
		if strings.Contains(queryLower, entity) {
			result.EntitiesReferenced = append(result.EntitiesReferenced, capitalize(entity))
		}
	}

	switch queryType {
	case TypeSQL:
		if !strings.Contains(queryLower, "select") {
			result.IsValid = false
			result.Errors = append(result.Errors, "Missing required keyword: SELECT")
		}
		if strings.Count(queryText, "[") != strings.Count(queryText, "]") {
			result.IsValid = false
			result.Errors = append(result.Errors, "Unbalanced square brackets")
		}
		if strings.Count(queryText, "(") != strings.Count(queryText, ")") {
			result.IsValid = false
			result.Errors = append(result.Errors, "Unbalanced parentheses")
		}
		for _, t := range commonTypos {
			if strings.Contains(queryLower, t.typo) {
				result.IsValid = false
				result.Errors = append(result.Errors, "Possible typo: '"+t.typo+"' should be '"+t.correct+"'")
			}
		}
		if strings.Contains(queryLower, "delete") || strings.Contains(queryLower, "drop") ||
			strings.Contains(queryLower, "truncate") {
			result.Warnings = append(result.Warnings, "Query contains destructive operation - use with caution!")
		}
		if strings.Contains(queryLower, "update") && !strings.Contains(queryLower, "where") {
			result.Warnings = append(result.Warnings, "UPDATE without WHERE will affect all rows!")
		}

	case TypeOData:
		if !strings.Contains(queryText, "/odata/") && !strings.Contains(queryText, "Collection") {
			result.Warnings = append(result.Warnings, "OData URL should include /odata/ path and Collection suffix")
		}
		for _, param := range []string{"$select", "$filter", "$expand", "$orderby", "$top", "$skip"} {
			if strings.Contains(queryLower, param) &&
				!strings.Contains(queryLower, param+"=") && !strings.Contains(queryLower, param+" =") {
				result.Warnings = append(result.Warnings, param+" should be followed by = and value")
			}
		}
	}

	result.Summary = ValidationSummary{
		IsValid:       result.IsValid,
		ErrorCount:    len(result.Errors),
		WarningCount:  len(result.Warnings),
		EntitiesFound: len(result.EntitiesReferenced),
	}
	return result
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
