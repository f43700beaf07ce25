// Package metrics holds the built-in CRM KPI library and the
// deterministic metric tools: definition, calculation templates,
// library browsing, and dashboard design.
package metrics

import "strings"

// KPI is one record of the KPI library.
type KPI struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Formula     string   `json:"formula"`
	Unit        string   `json:"unit"`
	Frequency   string   `json:"frequency"`
	Entities    []string `json:"entities"`
}

// Metric pairs a KPI with its library identifier.
type Metric struct {
	ID string `json:"id"`
	KPI
}

// Category groups the KPIs of one business area. Metric IDs are
// "<category>.<key>".
type Category struct {
	Name    string
	Metrics []Metric
}

func m(category, key string, kpi KPI) Metric {
	return Metric{ID: category + "." + key, KPI: kpi}
}

// Library is the built-in KPI catalog, ordered for presentation.
var Library = []Category{
	{
		Name: "sales",
		Metrics: []Metric{
			m("sales", "pipeline_value", KPI{
				Name:        "Pipeline Value",
				Description: "Total value of open opportunities in the sales pipeline",
				Formula:     "SUM(Opportunity.Amount) WHERE Opportunity.Stage.IsFinal = 0",
				Unit:        "currency",
				Frequency:   "daily",
				Entities:    []string{"Opportunity", "OpportunityStage"},
			}),
			m("sales", "win_rate", KPI{
				Name:        "Win Rate",
				Description: "Percentage of opportunities closed as won",
				Formula:     "(COUNT(Won Opportunities) / COUNT(All Closed Opportunities)) * 100",
				Unit:        "percentage",
				Frequency:   "monthly",
				Entities:    []string{"Opportunity", "OpportunityStage"},
			}),
			m("sales", "average_deal_size", KPI{
				Name:        "Average Deal Size",
				Description: "Average value of closed-won opportunities",
				Formula:     "AVG(Opportunity.Amount) WHERE Stage.Name = 'Closed won'",
				Unit:        "currency",
				Frequency:   "monthly",
				Entities:    []string{"Opportunity"},
			}),
			m("sales", "sales_cycle_length", KPI{
				Name:        "Sales Cycle Length",
				Description: "Average days from opportunity creation to close",
				Formula:     "AVG(DATEDIFF(day, Opportunity.CreatedOn, Opportunity.CloseDate))",
				Unit:        "days",
				Frequency:   "monthly",
				Entities:    []string{"Opportunity"},
			}),
			m("sales", "lead_conversion_rate", KPI{
				Name:        "Lead Conversion Rate",
				Description: "Percentage of leads converted to opportunities",
				Formula:     "(COUNT(Converted Leads) / COUNT(All Leads)) * 100",
				Unit:        "percentage",
				Frequency:   "monthly",
				Entities:    []string{"Lead"},
			}),
			m("sales", "revenue_by_rep", KPI{
				Name:        "Revenue by Sales Rep",
				Description: "Total closed revenue per sales representative",
				Formula:     "SUM(Opportunity.Amount) GROUP BY OwnerId WHERE Stage = 'Closed won'",
				Unit:        "currency",
				Frequency:   "monthly",
				Entities:    []string{"Opportunity", "Contact"},
			}),
			m("sales", "quota_attainment", KPI{
				Name:        "Quota Attainment",
				Description: "Percentage of sales quota achieved",
				Formula:     "(Actual Revenue / Target Quota) * 100",
				Unit:        "percentage",
				Frequency:   "monthly",
				Entities:    []string{"Opportunity", "SalesTarget"},
			}),
			m("sales", "opportunity_velocity", KPI{
				Name:        "Opportunity Velocity",
				Description: "Rate at which opportunities move through pipeline",
				Formula:     "(# Opportunities * Win Rate * Avg Deal) / Sales Cycle",
				Unit:        "currency/day",
				Frequency:   "monthly",
				Entities:    []string{"Opportunity"},
			}),
		},
	},
	{
		Name: "marketing",
		Metrics: []Metric{
			m("marketing", "lead_volume", KPI{
				Name:        "Lead Volume",
				Description: "Number of new leads created in period",
				Formula:     "COUNT(Lead) WHERE CreatedOn IN period",
				Unit:        "count",
				Frequency:   "weekly",
				Entities:    []string{"Lead"},
			}),
			m("marketing", "lead_source_effectiveness", KPI{
				Name:        "Lead Source Effectiveness",
				Description: "Leads and conversions by source",
				Formula:     "COUNT(Lead) GROUP BY LeadSourceId",
				Unit:        "count",
				Frequency:   "monthly",
				Entities:    []string{"Lead", "LeadSource"},
			}),
			m("marketing", "marketing_qualified_leads", KPI{
				Name:        "Marketing Qualified Leads (MQL)",
				Description: "Leads meeting marketing qualification criteria",
				Formula:     "COUNT(Lead) WHERE QualifyStatus = 'Marketing Qualified'",
				Unit:        "count",
				Frequency:   "weekly",
				Entities:    []string{"Lead", "QualifyStatus"},
			}),
			m("marketing", "cost_per_lead", KPI{
				Name:        "Cost Per Lead",
				Description: "Marketing spend divided by leads generated",
				Formula:     "Marketing Spend / COUNT(Leads)",
				Unit:        "currency",
				Frequency:   "monthly",
				Entities:    []string{"Lead", "Campaign"},
			}),
			m("marketing", "campaign_roi", KPI{
				Name:        "Campaign ROI",
				Description: "Return on investment for marketing campaigns",
				Formula:     "((Revenue - Cost) / Cost) * 100",
				Unit:        "percentage",
				Frequency:   "per_campaign",
				Entities:    []string{"Campaign", "Opportunity"},
			}),
		},
	},
	{
		Name: "customer_service",
		Metrics: []Metric{
			m("customer_service", "case_volume", KPI{
				Name:        "Case Volume",
				Description: "Total number of support cases",
				Formula:     "COUNT(Case)",
				Unit:        "count",
				Frequency:   "daily",
				Entities:    []string{"Case"},
			}),
			m("customer_service", "average_resolution_time", KPI{
				Name:        "Average Resolution Time",
				Description: "Average time to resolve cases",
				Formula:     "AVG(DATEDIFF(hour, Case.RegisteredOn, Case.SolutionDate))",
				Unit:        "hours",
				Frequency:   "weekly",
				Entities:    []string{"Case"},
			}),
			m("customer_service", "first_response_time", KPI{
				Name:        "First Response Time",
				Description: "Average time to first response on cases",
				Formula:     "AVG(DATEDIFF(minute, Case.RegisteredOn, FirstActivity.StartDate))",
				Unit:        "minutes",
				Frequency:   "daily",
				Entities:    []string{"Case", "Activity"},
			}),
			m("customer_service", "customer_satisfaction", KPI{
				Name:        "Customer Satisfaction (CSAT)",
				Description: "Average satisfaction score from case surveys",
				Formula:     "AVG(Case.SatisfactionLevel.Score)",
				Unit:        "score",
				Frequency:   "weekly",
				Entities:    []string{"Case", "SatisfactionLevel"},
			}),
			m("customer_service", "sla_compliance", KPI{
				Name:        "SLA Compliance Rate",
				Description: "Percentage of cases resolved within SLA",
				Formula:     "(COUNT(Cases within SLA) / COUNT(All Cases)) * 100",
				Unit:        "percentage",
				Frequency:   "weekly",
				Entities:    []string{"Case", "ServicePact"},
			}),
			m("customer_service", "case_backlog", KPI{
				Name:        "Case Backlog",
				Description: "Number of open unresolved cases",
				Formula:     "COUNT(Case) WHERE Status.IsFinal = 0",
				Unit:        "count",
				Frequency:   "daily",
				Entities:    []string{"Case", "CaseStatus"},
			}),
			m("customer_service", "escalation_rate", KPI{
				Name:        "Escalation Rate",
				Description: "Percentage of cases that required escalation",
				Formula:     "(COUNT(Escalated Cases) / COUNT(All Cases)) * 100",
				Unit:        "percentage",
				Frequency:   "weekly",
				Entities:    []string{"Case"},
			}),
		},
	},
	{
		Name: "customer_health",
		Metrics: []Metric{
			m("customer_health", "customer_lifetime_value", KPI{
				Name:        "Customer Lifetime Value (CLV)",
				Description: "Total revenue expected from a customer relationship",
				Formula:     "AVG Revenue per Period * Customer Lifespan",
				Unit:        "currency",
				Frequency:   "quarterly",
				Entities:    []string{"Account", "Order", "Opportunity"},
			}),
			m("customer_health", "churn_rate", KPI{
				Name:        "Churn Rate",
				Description: "Percentage of customers lost in period",
				Formula:     "(Lost Customers / Total Customers at Start) * 100",
				Unit:        "percentage",
				Frequency:   "monthly",
				Entities:    []string{"Account"},
			}),
			m("customer_health", "net_promoter_score", KPI{
				Name:        "Net Promoter Score (NPS)",
				Description: "Customer loyalty and satisfaction metric",
				Formula:     "% Promoters - % Detractors",
				Unit:        "score",
				Frequency:   "quarterly",
				Entities:    []string{"Contact", "Survey"},
			}),
			m("customer_health", "customer_engagement_score", KPI{
				Name:        "Customer Engagement Score",
				Description: "Composite score of customer interaction levels",
				Formula:     "Weighted sum of activities, responses, purchases",
				Unit:        "score",
				Frequency:   "monthly",
				Entities:    []string{"Account", "Activity", "Opportunity"},
			}),
			m("customer_health", "revenue_retention", KPI{
				Name:        "Revenue Retention Rate",
				Description: "Percentage of revenue retained from existing customers",
				Formula:     "((End Revenue - New Revenue) / Start Revenue) * 100",
				Unit:        "percentage",
				Frequency:   "monthly",
				Entities:    []string{"Account", "Order"},
			}),
		},
	},
	{
		Name: "activity_metrics",
		Metrics: []Metric{
			m("activity_metrics", "activities_per_rep", KPI{
				Name:        "Activities per Rep",
				Description: "Number of activities logged per sales rep",
				Formula:     "COUNT(Activity) GROUP BY OwnerId",
				Unit:        "count",
				Frequency:   "weekly",
				Entities:    []string{"Activity", "Contact"},
			}),
			m("activity_metrics", "calls_made", KPI{
				Name:        "Calls Made",
				Description: "Number of call activities completed",
				Formula:     "COUNT(Activity) WHERE Type = 'Call'",
				Unit:        "count",
				Frequency:   "daily",
				Entities:    []string{"Activity", "ActivityType"},
			}),
			m("activity_metrics", "emails_sent", KPI{
				Name:        "Emails Sent",
				Description: "Number of email activities",
				Formula:     "COUNT(Activity) WHERE Type = 'Email'",
				Unit:        "count",
				Frequency:   "daily",
				Entities:    []string{"Activity", "ActivityType"},
			}),
			m("activity_metrics", "meetings_held", KPI{
				Name:        "Meetings Held",
				Description: "Number of meeting activities completed",
				Formula:     "COUNT(Activity) WHERE Type = 'Meeting' AND Status = 'Completed'",
				Unit:        "count",
				Frequency:   "weekly",
				Entities:    []string{"Activity", "ActivityType", "ActivityStatus"},
			}),
		},
	},
}

// Categories returns the category names in library order.
func Categories() []string {
	names := make([]string, len(Library))
	for i, c := range Library {
		names[i] = c.Name
	}
	return names
}

// CategoryByName resolves a category case-insensitively.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Library {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// LookupMetric resolves a "category.metric" identifier.
func LookupMetric(metricID string) (Metric, bool) {
	parts := strings.SplitN(metricID, ".", 2)
	if len(parts) != 2 {
		return Metric{}, false
	}
	cat, ok := CategoryByName(parts[0])
	if !ok {
		return Metric{}, false
	}
	for _, metric := range cat.Metrics {
		if strings.EqualFold(metricKey(metric.ID), parts[1]) {
			return metric, true
		}
	}
	return Metric{}, false
}

// MetricKeys lists the metric keys of a category (identifier without the
// category prefix).
func MetricKeys(c Category) []string {
	keys := make([]string, len(c.Metrics))
	for i, metric := range c.Metrics {
		keys[i] = metricKey(metric.ID)
	}
	return keys
}

func metricKey(id string) string {
	if i := strings.IndexByte(id, '.'); i >= 0 {
		return id[i+1:]
	}
	return id
}
