package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMarkdown(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{
		Entities:             "Contact",
		Format:               "markdown",
		IncludeRelationships: true,
		IncludeExamples:      true,
	})

	require.True(t, result.Success)
	assert.Equal(t, []string{"Contact"}, result.EntitiesDocumented)
	assert.Equal(t, FormatMarkdown, result.Format)

	doc := result.Documentation
	assert.Contains(t, doc, "## Contact")
	assert.Contains(t, doc, "| AccountId | uniqueidentifier |")
	assert.Contains(t, doc, "- **Account** (many-to-one) via `AccountId`")
	assert.Contains(t, doc, "via `OpportunityContact`")
	assert.Contains(t, doc, "SELECT TOP 100 * FROM [Contact]")
	assert.Contains(t, doc, "SELECT Id, Name, AccountId, Email, Phone FROM [Contact]")
}

func TestGenerateMarkdownWithoutRelationships(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{Entities: "Contact", Format: "markdown"})

	require.True(t, result.Success)
	assert.NotContains(t, result.Documentation, "### Relationships")
	assert.NotContains(t, result.Documentation, "### Example Queries")
}

func TestGenerateAllEntities(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{Entities: "all", Format: "markdown"})

	require.True(t, result.Success)
	assert.Len(t, result.EntitiesDocumented, 9)
	assert.Equal(t, 9, result.Metadata.EntityCount)
	assert.Equal(t, 104, result.Metadata.TotalColumns)
	assert.Equal(t, 31, result.Metadata.TotalRelationships)
}

func TestGenerateJSON(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{
		Entities:             "Contact, Account",
		Format:               "json",
		IncludeRelationships: true,
	})

	require.True(t, result.Success)
	var doc map[string][]entityDoc
	require.NoError(t, json.Unmarshal([]byte(result.Documentation), &doc))
	require.Len(t, doc["entities"], 2)
	assert.Equal(t, "Contact", doc["entities"][0].Name)
	assert.NotEmpty(t, doc["entities"][0].Relationships)
}

func TestGenerateYAML(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{Entities: "Contact", Format: "yaml"})

	require.True(t, result.Success)
	assert.Equal(t, FormatYAML, result.Format)
	assert.Contains(t, result.Documentation, "table_name: Contact")
}

func TestGenerateUnknownEntities(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{Entities: "Widget, Gadget"})

	assert.False(t, result.Success)
	assert.Equal(t, "No valid entities found", result.Error)
	assert.Len(t, result.AvailableEntities, 9)
}

func TestGenerateSkipsUnknownEntities(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(DocsRequest{Entities: "Widget, contact"})

	require.True(t, result.Success)
	assert.Equal(t, []string{"Contact"}, result.EntitiesDocumented)
}

func TestGenerateCachedResultsAreStable(t *testing.T) {
	g := NewGenerator()
	req := DocsRequest{Entities: "all", Format: "markdown", IncludeRelationships: true}

	first := g.Generate(req)
	second := g.Generate(req)
	assert.Equal(t, first, second)
}

func TestDataDictionary(t *testing.T) {
	result := DataDictionary("opportunity", false)

	require.True(t, result.Success)
	assert.Equal(t, "Opportunity", result.Entity)
	assert.Equal(t, 13, result.DataDictionary.ColumnCount)
	assert.Equal(t, 4, result.DataDictionary.ForeignKeyCount)
	assert.Equal(t, "Id", result.DataDictionary.PrimaryKey)
	assert.Len(t, result.DataDictionary.IndexesRecommended, 6)
	assert.Contains(t, result.DataDictionary.IndexesRecommended, "IX_StageId")
	assert.Len(t, result.AuditColumns, 4)

	byName := make(map[string]ColumnSpec)
	for _, col := range result.DataDictionary.Columns {
		byName[col.ColumnName] = col
	}

	id := byName["Id"]
	assert.True(t, id.IsPrimaryKey)
	assert.False(t, id.Nullable)
	assert.False(t, id.IsForeignKey)
	assert.Equal(t, []string{"Auto-generated GUID primary key"}, id.BusinessRules)
	assert.Empty(t, id.SampleValues)

	stage := byName["StageId"]
	require.NotNil(t, stage.References)
	assert.Equal(t, "OpportunityStage", stage.References.Table)

	leadType := byName["LeadTypeId"]
	require.NotNil(t, leadType.References)
	assert.Equal(t, "LeadType", leadType.References.Table)

	closeDate := byName["CloseDate"]
	assert.Equal(t, []string{"Date validation applies to future-dated fields"}, closeDate.BusinessRules)
}

func TestDataDictionarySampleValues(t *testing.T) {
	result := DataDictionary("Opportunity", true)

	require.True(t, result.Success)
	byName := make(map[string]ColumnSpec)
	for _, col := range result.DataDictionary.Columns {
		byName[col.ColumnName] = col
	}
	assert.Equal(t, []string{"10000.00", "25000.50"}, byName["Amount"].SampleValues)
	assert.Equal(t, []string{"00000000-0000-0000-0000-000000000001"}, byName["Id"].SampleValues)
	assert.Equal(t, []string{"1 (true)", "0 (false)"}, byName["IsPrimary"].SampleValues)
}

func TestDataDictionaryContactRules(t *testing.T) {
	result := DataDictionary("Contact", false)

	require.True(t, result.Success)
	byName := make(map[string]ColumnSpec)
	for _, col := range result.DataDictionary.Columns {
		byName[col.ColumnName] = col
	}
	assert.Len(t, byName["Email"].BusinessRules, 2)
	assert.Equal(t, []string{"Phone number format validation recommended"}, byName["MobilePhone"].BusinessRules)
	assert.Equal(t, "Contact", byName["OwnerId"].References.Table)
}

func TestDataDictionaryUnknownEntity(t *testing.T) {
	result := DataDictionary("Invoice", false)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Invoice")
	assert.Len(t, result.AvailableEntities, 9)
}

func TestGenerateERDMermaid(t *testing.T) {
	result := GenerateERD("Contact, Account", "mermaid", false)

	require.True(t, result.Success)
	assert.Equal(t, []string{"Contact", "Account"}, result.EntitiesIncluded)
	assert.Contains(t, result.Diagram, "erDiagram")
	assert.Contains(t, result.Diagram, "    Contact\n")
	assert.Contains(t, result.Diagram, "Contact }o--|| Account : belongs_to")
	// Each entity pair is drawn once even when both ends declare it.
	assert.Equal(t, 1, strings.Count(result.Diagram, "--"))
}

func TestGenerateERDMermaidColumns(t *testing.T) {
	result := GenerateERD("Contact", "mermaid", true)

	require.True(t, result.Success)
	assert.Contains(t, result.Diagram, "uniqueidentifier Id PK")
	assert.Contains(t, result.Diagram, "nvarchar_250 Name")
	assert.Contains(t, result.Diagram, "uniqueidentifier AccountId FK")
	// Column list is capped at 8 per entity.
	assert.NotContains(t, result.Diagram, "OwnerId")
}

func TestGenerateERDPlantUML(t *testing.T) {
	result := GenerateERD("Contact, Account", "plantuml", true)

	require.True(t, result.Success)
	assert.Contains(t, result.Diagram, "@startuml")
	assert.Contains(t, result.Diagram, "skinparam linetype ortho")
	assert.Contains(t, result.Diagram, "entity Contact {")
	assert.Contains(t, result.Diagram, "* Id : uniqueidentifier <<PK>>")
	assert.Contains(t, result.Diagram, "AccountId : uniqueidentifier <<FK>>")
	assert.Contains(t, result.Diagram, "@enduml")
}

func TestGenerateERDDBML(t *testing.T) {
	result := GenerateERD("Order", "dbml", false)

	require.True(t, result.Success)
	assert.Contains(t, result.Diagram, "Table Order {")
	assert.Contains(t, result.Diagram, "    Id uniqueidentifier [pk]")
	assert.Contains(t, result.Diagram, "    AccountId uniqueidentifier [ref: > Account.Id]")
	assert.Contains(t, result.Diagram, "    OwnerId uniqueidentifier [ref: > Contact.Id]")
	assert.Contains(t, result.Diagram, "    StatusId uniqueidentifier [ref: > Status.Id]")
}

func TestGenerateERDUnknownFormatFallsBack(t *testing.T) {
	result := GenerateERD("Contact", "svg", false)

	require.True(t, result.Success)
	assert.Equal(t, ERDFormatMermaid, result.Format)
	assert.Contains(t, result.Diagram, "erDiagram")
}

func TestGenerateERDUnknownEntities(t *testing.T) {
	result := GenerateERD("Invoice", "mermaid", false)

	assert.False(t, result.Success)
	assert.Equal(t, "No valid entities found", result.Error)
	assert.Len(t, result.AvailableEntities, 9)
}
