package lifecycle

import (
	"fmt"
	"strings"
	"time"

	version "github.com/hashicorp/go-version"
)

const (
	// Sprint plans commit 85% of capacity and keep the rest as buffer.
	utilizationPct = 85
	maxSprintItems = 5
)

// SprintPlanResult is the output of PlanSprint.
type SprintPlanResult struct {
	Success          bool     `json:"success"`
	Sprint           string   `json:"sprint"`
	Capacity         int      `json:"capacity"`
	PlannedPoints    int      `json:"planned_points"`
	BufferPoints     int      `json:"buffer_points"`
	ItemsConsidered  int      `json:"items_considered"`
	RecommendedItems []string `json:"recommended_items"`
	DeferredItems    []string `json:"deferred_items"`
	SprintGoal       string   `json:"sprint_goal"`
	Risks            []string `json:"risks"`
	Recommendations  []string `json:"recommendations"`
}

// PlanSprint proposes a sprint composition for the given capacity.
// Items is a comma-separated list of backlog item IDs; the first five
// are recommended and the rest deferred.
func PlanSprint(sprintName string, capacity int, items string) SprintPlanResult {
	itemList := []string{}
	for _, item := range strings.Split(items, ",") {
		if item = strings.TrimSpace(item); item != "" {
			itemList = append(itemList, item)
		}
	}

	recommended := itemList
	deferred := []string{}
	if len(itemList) > maxSprintItems {
		recommended = itemList[:maxSprintItems]
		deferred = itemList[maxSprintItems:]
	}

	planned := capacity * utilizationPct / 100
	return SprintPlanResult{
		Success:          true,
		Sprint:           sprintName,
		Capacity:         capacity,
		PlannedPoints:    planned,
		BufferPoints:     capacity * (100 - utilizationPct) / 100,
		ItemsConsidered:  len(itemList),
		RecommendedItems: recommended,
		DeferredItems:    deferred,
		SprintGoal:       "Complete core functionality for " + sprintName,
		Risks: []string{
			"External dependency on API team",
			"New team member ramping up",
		},
		Recommendations: []string{
			"Start with highest-priority items",
			"Reserve time for code review",
			"Plan mid-sprint check-in",
		},
	}
}

// SprintStatus is the current sprint breakdown.
type SprintStatus struct {
	Name             string `json:"name"`
	Progress         int    `json:"progress"`
	DaysRemaining    int    `json:"days_remaining"`
	CommittedPoints  int    `json:"committed_points"`
	CompletedPoints  int    `json:"completed_points"`
	InProgressPoints int    `json:"in_progress_points"`
	BlockedPoints    int    `json:"blocked_points"`
}

// Velocity summarizes team velocity.
type Velocity struct {
	Average    int    `json:"average"`
	LastSprint int    `json:"last_sprint"`
	Trend      string `json:"trend"`
}

// ReleaseProgress tracks feature completion toward a release.
type ReleaseProgress struct {
	Name               string `json:"name"`
	FeaturesTotal      int    `json:"features_total"`
	FeaturesDone       int    `json:"features_done"`
	FeaturesInProgress int    `json:"features_in_progress"`
	TargetDate         string `json:"target_date"`
	Confidence         string `json:"confidence"`
}

// Blocker is one active impediment.
type Blocker struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AgeDays     int    `json:"age_days"`
	Owner       string `json:"owner"`
}

// StatusResult is the output of Status. With details disabled only the
// health, sprint progress, and blocker count are populated.
type StatusResult struct {
	Success           bool             `json:"success"`
	ProjectID         string           `json:"project_id"`
	OverallHealth     string           `json:"overall_health"`
	CurrentSprint     *SprintStatus    `json:"current_sprint,omitempty"`
	Velocity          *Velocity        `json:"velocity,omitempty"`
	ReleaseProgress   *ReleaseProgress `json:"release_progress,omitempty"`
	Blockers          []Blocker        `json:"blockers,omitempty"`
	RecentCompletions []string         `json:"recent_completions,omitempty"`
	SprintProgress    int              `json:"sprint_progress,omitempty"`
	BlockersCount     int              `json:"blockers_count,omitempty"`
}

// Status reports the current sprint, velocity, and release health for a
// project.
func Status(projectID string, includeDetails bool) StatusResult {
	if projectID == "" {
		projectID = "default"
	}

	blockers := []Blocker{
		{
			ID:          "BLOCK-001",
			Description: "Waiting for API documentation",
			AgeDays:     3,
			Owner:       "External Team",
		},
	}
	sprint := SprintStatus{
		Name:             "Sprint 5",
		Progress:         65,
		DaysRemaining:    5,
		CommittedPoints:  34,
		CompletedPoints:  22,
		InProgressPoints: 8,
		BlockedPoints:    4,
	}

	if !includeDetails {
		return StatusResult{
			Success:        true,
			ProjectID:      projectID,
			OverallHealth:  "on_track",
			SprintProgress: sprint.Progress,
			BlockersCount:  len(blockers),
		}
	}

	return StatusResult{
		Success:       true,
		ProjectID:     projectID,
		OverallHealth: "on_track",
		CurrentSprint: &sprint,
		Velocity: &Velocity{
			Average:    32,
			LastSprint: 34,
			Trend:      "stable",
		},
		ReleaseProgress: &ReleaseProgress{
			Name:               "Release 2.0",
			FeaturesTotal:      12,
			FeaturesDone:       7,
			FeaturesInProgress: 3,
			TargetDate:         "2026-02-15",
			Confidence:         "medium",
		},
		Blockers: blockers,
		RecentCompletions: []string{
			"US-042: User authentication",
			"US-043: Dashboard redesign",
		},
	}
}

// Risk is one assessed project risk.
type Risk struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
	RiskScore   int    `json:"risk_score"`
	Mitigation  string `json:"mitigation"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
}

// RiskSummary counts risks by level.
type RiskSummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// RiskResult is the output of AssessRisk.
type RiskResult struct {
	Success          bool        `json:"success"`
	Scope            string      `json:"scope"`
	AssessmentDate   string      `json:"assessment_date"`
	OverallRiskLevel string      `json:"overall_risk_level"`
	Risks            []Risk      `json:"risks"`
	RiskSummary      RiskSummary `json:"risk_summary"`
	Recommendations  []string    `json:"recommendations"`
	ContextAnalysis  string      `json:"context_analysis"`
}

// AssessRisk evaluates risks for a project, sprint, release, or
// feature scope. The reference time stamps the assessment.
func AssessRisk(scope, context string, now time.Time) RiskResult {
	return RiskResult{
		Success:          true,
		Scope:            scope,
		AssessmentDate:   now.Format("2006-01-02"),
		OverallRiskLevel: "medium",
		Risks: []Risk{
			{
				ID:          "RISK-001",
				Category:    "technical",
				Description: "Integration complexity with legacy system",
				Probability: "medium",
				Impact:      "high",
				RiskScore:   6,
				Mitigation:  "Early POC and incremental integration",
				Owner:       "Tech Lead",
				Status:      "monitoring",
			},
			{
				ID:          "RISK-002",
				Category:    "resource",
				Description: "Key team member availability",
				Probability: "low",
				Impact:      "high",
				RiskScore:   4,
				Mitigation:  "Cross-training and documentation",
				Owner:       "Project Manager",
				Status:      "mitigating",
			},
			{
				ID:          "RISK-003",
				Category:    "schedule",
				Description: "External dependency delays",
				Probability: "medium",
				Impact:      "medium",
				RiskScore:   5,
				Mitigation:  "Build mock interfaces for parallel development",
				Owner:       "Tech Lead",
				Status:      "mitigating",
			},
		},
		RiskSummary: RiskSummary{High: 2, Medium: 1},
		Recommendations: []string{
			"Schedule weekly risk review",
			"Escalate integration risk to steering committee",
			"Accelerate cross-training initiative",
		},
		ContextAnalysis: "Assessment based on: " + context,
	}
}

// ReleasePhase is one phase of a release plan.
type ReleasePhase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ReleasePlanResult is the output of PlanRelease.
type ReleasePlanResult struct {
	Success         bool           `json:"success"`
	Error           string         `json:"error,omitempty"`
	CurrentVersion  string         `json:"current_version,omitempty"`
	TargetVersion   string         `json:"target_version,omitempty"`
	ReleaseType     string         `json:"release_type,omitempty"`
	Features        []string       `json:"features,omitempty"`
	Phases          []ReleasePhase `json:"phases,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

// PlanRelease validates the version jump and lays out the release
// phases. An empty target bumps the minor version. Features is a
// comma-separated list scoped into the release.
func PlanRelease(currentVersion, targetVersion, features string) ReleasePlanResult {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return ReleasePlanResult{
			Error: "Invalid current version '" + currentVersion + "': " + err.Error(),
		}
	}

	var target *version.Version
	if targetVersion == "" {
		target = nextMinor(current)
	} else {
		target, err = version.NewVersion(targetVersion)
		if err != nil {
			return ReleasePlanResult{
				Error: "Invalid target version '" + targetVersion + "': " + err.Error(),
			}
		}
		if !target.GreaterThan(current) {
			return ReleasePlanResult{
				Error: "Target version " + target.String() + " must be greater than current version " + current.String(),
			}
		}
	}

	featureList := []string{}
	for _, f := range strings.Split(features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			featureList = append(featureList, f)
		}
	}

	return ReleasePlanResult{
		Success:        true,
		CurrentVersion: current.String(),
		TargetVersion:  target.String(),
		ReleaseType:    releaseType(current, target),
		Features:       featureList,
		Phases: []ReleasePhase{
			{Name: "Feature freeze", Description: "All scoped features merged to the release branch"},
			{Name: "Code freeze", Description: "Only release-blocking fixes accepted"},
			{Name: "Regression testing", Description: "Full regression suite against the release candidate"},
			{Name: "Release candidate", Description: "RC build published for stakeholder validation"},
			{Name: "General availability", Description: "Tagged release published and announced"},
		},
		Recommendations: []string{
			"Lock the feature list before the freeze date",
			"Run the quality gate on every release candidate",
			"Prepare rollback notes before general availability",
		},
	}
}

func nextMinor(v *version.Version) *version.Version {
	segments := v.Segments()
	next, _ := version.NewVersion(fmt.Sprintf("%d.%d.0", segments[0], segments[1]+1))
	return next
}

func releaseType(current, target *version.Version) string {
	cur, tgt := current.Segments(), target.Segments()
	switch {
	case tgt[0] != cur[0]:
		return "major"
	case tgt[1] != cur[1]:
		return "minor"
	}
	return "patch"
}
