package query

import (
	"fmt"
	"strings"
)

// DefaultODataTop is the record cap applied when no $top is requested.
const DefaultODataTop = 100

// ODataRequest captures what the OData builder needs.
type ODataRequest struct {
	// Entity is the primary entity to query.
	Entity string `json:"entity"`
	// SelectFields is a comma-separated list of fields to return.
	SelectFields string `json:"select_fields,omitempty"`
	// FilterExpression is a filter in natural language.
	FilterExpression string `json:"filter_expression,omitempty"`
	// ExpandRelations lists related entities to expand.
	ExpandRelations string `json:"expand_relations,omitempty"`
	// Top caps the number of records; 0 means DefaultODataTop.
	Top int `json:"top,omitempty"`
}

// ODataQueryParts breaks the assembled URL into its components.
type ODataQueryParts struct {
	Base   string `json:"base"`
	Select string `json:"select,omitempty"`
	Filter string `json:"filter,omitempty"`
	Expand string `json:"expand,omitempty"`
	Top    int    `json:"top"`
}

// ODataResult is the output of BuildOData.
type ODataResult struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	Entity      string          `json:"entity,omitempty"`
	ODataURL    string          `json:"odata_url,omitempty"`
	QueryParts  ODataQueryParts `json:"query_parts"`
	CurlExample string          `json:"curl_example,omitempty"`
	UsageNotes  []string        `json:"usage_notes,omitempty"`
}

// BuildOData assembles an OData URL for the Creatio-style REST endpoint
// `/0/odata/{Entity}Collection`.
func BuildOData(req ODataRequest) ODataResult {
	if strings.TrimSpace(req.Entity) == "" {
		return ODataResult{Error: "entity is required"}
	}
	top := req.Top
	if top <= 0 {
		top = DefaultODataTop
	}

	baseURL := "/0/odata/" + req.Entity + "Collection"
	var params []string

	if req.SelectFields != "" {
		params = append(params, "$select="+strings.Join(splitList(req.SelectFields), ","))
	}
	if req.FilterExpression != "" {
		params = append(params, "$filter="+convertToODataFilter(req.FilterExpression, req.Entity))
	}
	if req.ExpandRelations != "" {
		params = append(params, "$expand="+strings.Join(splitList(req.ExpandRelations), ","))
	}
	params = append(params, fmt.Sprintf("$top=%d", top))

	fullURL := baseURL + "?" + strings.Join(params, "&")

	return ODataResult{
		Success:  true,
		Entity:   req.Entity,
		ODataURL: fullURL,
		QueryParts: ODataQueryParts{
			Base:   baseURL,
			Select: req.SelectFields,
			Filter: req.FilterExpression,
			Expand: req.ExpandRelations,
			Top:    top,
		},
		CurlExample: generateCurl(fullURL),
		UsageNotes: []string{
			"Add authentication headers (BPMCSRF token)",
			"Use $skip for pagination",
			"Add $count=true to get total count",
		},
	}
}

func convertToODataFilter(naturalFilter, entity string) string {
	filterLower := strings.ToLower(naturalFilter)
	var conditions []string

	if strings.Contains(filterLower, "today") {
		conditions = append(conditions, "CreatedOn ge cast(now(), Edm.DateTimeOffset)")
	}
	if strings.Contains(filterLower, "this month") {
		conditions = append(conditions, "month(CreatedOn) eq month(now()) and year(CreatedOn) eq year(now())")
	}
	if strings.Contains(filterLower, "active") {
		conditions = append(conditions, "IsActive eq true")
	}
	if strings.Contains(filterLower, "open") {
		switch strings.ToLower(entity) {
		case "opportunity":
			conditions = append(conditions, "Stage/IsFinal eq false")
		case "case":
			conditions = append(conditions, "Status/IsFinal eq false")
		}
	}

	if len(conditions) > 0 {
		return strings.Join(conditions, " and ")
	}
	return "/* Add filter for: " + naturalFilter + " */"
}

func generateCurl(url string) string {
	return `curl -X GET "{CREATIO_URL}` + url + `" \
  -H "Accept: application/json" \
  -H "Content-Type: application/json" \
  -H "BPMCSRF: {csrf_token}" \
  --cookie "BPMCSRF={csrf_token};.ASPXAUTH={auth_cookie}"`
}
