package schema

import "strings"

// maxSecondaryRelationships caps how many second-hop relationships are
// expanded per related entity.
const maxSecondaryRelationships = 3

// RelationshipPath is a two-hop path discovered through a direct
// relationship, rendered as "A -> B -> C".
type RelationshipPath struct {
	Path                  string `json:"path"`
	ViaRelationship       string `json:"via_relationship"`
	SecondaryRelationship string `json:"secondary_relationship"`
}

// RelationshipsResult is the output of Relationships.
type RelationshipsResult struct {
	Success             bool               `json:"success"`
	Error               string             `json:"error,omitempty"`
	AvailableEntities   []string           `json:"available_entities,omitempty"`
	SourceEntity        string             `json:"source_entity,omitempty"`
	DirectRelationships []Relationship     `json:"direct_relationships,omitempty"`
	RelationshipPaths   []RelationshipPath `json:"relationship_paths"`
}

// Relationships lists an entity's direct relationships, optionally
// filtered to a target entity, and expands two-hop paths when depth > 1.
func Relationships(sourceEntity, targetEntity string, depth int) RelationshipsResult {
	source, ok := Lookup(sourceEntity)
	if !ok {
		return RelationshipsResult{
			Error:             "Source entity '" + sourceEntity + "' not found",
			AvailableEntities: Names(),
			RelationshipPaths: []RelationshipPath{},
		}
	}

	rels := source.Relationships
	if targetEntity != "" {
		if target, ok := Lookup(targetEntity); ok {
			filtered := make([]Relationship, 0, len(rels))
			for _, r := range rels {
				if strings.EqualFold(r.Entity, target.Name) {
					filtered = append(filtered, r)
				}
			}
			rels = filtered
		}
	}

	result := RelationshipsResult{
		Success:             true,
		SourceEntity:        source.Name,
		DirectRelationships: rels,
		RelationshipPaths:   []RelationshipPath{},
	}

	if depth > 1 {
		for _, rel := range rels {
			related, ok := Lookup(rel.Entity)
			if !ok {
				continue
			}
			secondary := related.Relationships
			if len(secondary) > maxSecondaryRelationships {
				secondary = secondary[:maxSecondaryRelationships]
			}
			for _, sec := range secondary {
				if sec.Entity == source.Name {
					continue
				}
				result.RelationshipPaths = append(result.RelationshipPaths, RelationshipPath{
					Path:                  source.Name + " -> " + related.Name + " -> " + sec.Entity,
					ViaRelationship:       rel.Type,
					SecondaryRelationship: sec.Type,
				})
			}
		}
	}

	return result
}
