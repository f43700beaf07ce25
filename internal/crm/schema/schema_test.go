package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"Contact", "contact", "CONTACT", "  contact  "} {
		entity, ok := Lookup(name)
		require.True(t, ok, "lookup failed for %q", name)
		assert.Equal(t, "Contact", entity.Name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("Invoice")
	assert.False(t, ok)
}

func TestExplore_KnownEntity(t *testing.T) {
	result := Explore("opportunity", true)

	require.True(t, result.Success)
	assert.Equal(t, "Opportunity", result.Entity)
	assert.Equal(t, "Opportunity", result.TableName)
	assert.Len(t, result.Columns, result.ColumnCount)
	assert.Equal(t, len(result.Relationships), result.RelationshipCount)
	assert.NotEmpty(t, result.Relationships)
}

func TestExplore_WithoutRelationships(t *testing.T) {
	result := Explore("Account", false)

	require.True(t, result.Success)
	assert.Nil(t, result.Relationships)
	assert.Zero(t, result.RelationshipCount)
}

func TestExplore_UnknownEntityListsValidKeys(t *testing.T) {
	result := Explore("Invoice", true)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Invoice")
	assert.Equal(t, Names(), result.AvailableEntities)
	assert.Contains(t, result.Suggestion, "Contact")
}

func TestExplore_Deterministic(t *testing.T) {
	first := Explore("Case", true)
	second := Explore("Case", true)
	assert.Equal(t, first, second)
}

func TestRelationships_Direct(t *testing.T) {
	result := Relationships("contact", "", 1)

	require.True(t, result.Success)
	assert.Equal(t, "Contact", result.SourceEntity)
	assert.Len(t, result.DirectRelationships, 4)
	assert.Empty(t, result.RelationshipPaths)
}

func TestRelationships_TargetFilter(t *testing.T) {
	result := Relationships("Contact", "account", 1)

	require.True(t, result.Success)
	require.Len(t, result.DirectRelationships, 1)
	assert.Equal(t, "Account", result.DirectRelationships[0].Entity)
	assert.Equal(t, "many-to-one", result.DirectRelationships[0].Type)
}

func TestRelationships_TwoHopPaths(t *testing.T) {
	result := Relationships("Contact", "Account", 2)

	require.True(t, result.Success)
	require.NotEmpty(t, result.RelationshipPaths)
	for _, path := range result.RelationshipPaths {
		assert.True(t, strings.HasPrefix(path.Path, "Contact -> Account -> "), "unexpected path %q", path.Path)
		// Paths never loop straight back to the source.
		assert.NotEqual(t, "Contact -> Account -> Contact", path.Path)
	}
}

func TestRelationships_SecondaryLimit(t *testing.T) {
	// Opportunity has 5 relationships; through Account only the first 3 expand.
	result := Relationships("Case", "Account", 2)

	require.True(t, result.Success)
	assert.LessOrEqual(t, len(result.RelationshipPaths), maxSecondaryRelationships)
}

func TestRelationships_UnknownSource(t *testing.T) {
	result := Relationships("Widget", "", 2)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Widget")
	assert.Equal(t, Names(), result.AvailableEntities)
}

func TestAnalyzeColumns_Categorization(t *testing.T) {
	result := AnalyzeColumns("Opportunity", "", false)

	require.True(t, result.Success)
	require.Len(t, result.Categorized.PrimaryKey, 1)
	assert.Equal(t, "Id", result.Categorized.PrimaryKey[0].Name)
	assert.True(t, result.Analysis.HasPrimaryKey)
	assert.Equal(t, len(result.Categorized.ForeignKeys), result.Analysis.ForeignKeyCount)
	assert.Equal(t, result.Analysis.ForeignKeyCount > 3, result.Analysis.IsHighlyRelational)

	for _, c := range result.Columns {
		assert.False(t, isSystemColumn(c.Name), "system column %s leaked into analysis", c.Name)
	}
}

func TestAnalyzeColumns_IncludeSystem(t *testing.T) {
	without := AnalyzeColumns("Contact", "", false)
	with := AnalyzeColumns("Contact", "", true)

	assert.Greater(t, with.TotalColumns, without.TotalColumns)
}

func TestAnalyzeColumns_Filter(t *testing.T) {
	result := AnalyzeColumns("Contact", "phone", false)

	require.True(t, result.Success)
	require.Len(t, result.Columns, 2)
	for _, c := range result.Columns {
		assert.Contains(t, strings.ToLower(c.Name), "phone")
	}
}

func TestAnalyzeColumns_Unknown(t *testing.T) {
	result := AnalyzeColumns("Widget", "", false)

	require.False(t, result.Success)
	assert.NotEmpty(t, result.AvailableEntities)
}

func TestSearch_AllScopes(t *testing.T) {
	result := Search("account", ScopeAll)

	require.True(t, result.Success)
	assert.NotEmpty(t, result.Matches.Entities)
	assert.NotEmpty(t, result.Matches.Columns)
	assert.NotEmpty(t, result.Matches.Relationships)
	assert.Equal(t,
		result.Summary.EntitiesFound+result.Summary.ColumnsFound+result.Summary.RelationshipsFound,
		result.Summary.TotalMatches)
}

func TestSearch_ScopedToColumns(t *testing.T) {
	result := Search("email", ScopeColumns)

	require.True(t, result.Success)
	assert.Empty(t, result.Matches.Entities)
	assert.Empty(t, result.Matches.Relationships)
	assert.NotEmpty(t, result.Matches.Columns)
	for _, m := range result.Matches.Columns {
		hit := strings.Contains(strings.ToLower(m.Column), "email") ||
			strings.Contains(strings.ToLower(m.Description), "email")
		assert.True(t, hit, "match %+v does not contain term", m)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	result := Search("zzzznotfound", ScopeAll)

	require.True(t, result.Success)
	assert.Zero(t, result.Summary.TotalMatches)
}

func TestNames_StableOrder(t *testing.T) {
	names := Names()
	require.Len(t, names, len(Entities))
	assert.Equal(t, "Contact", names[0])
	assert.Equal(t, "SysAdminUnit", names[len(names)-1])
}
