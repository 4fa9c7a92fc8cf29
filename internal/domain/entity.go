package domain

import "time"

// Entity is one record of the entities table.
type Entity struct {
	EntityID       int64      `json:"entity_id"`
	EntityName     string     `json:"entity_name"`
	Description    string     `json:"description,omitempty"`
	ValidityResult *bool      `json:"validity_result,omitempty"`
	ValidityMethod string     `json:"validity_method,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// EntitySource describes one data source an entity was collected from.
type EntitySource struct {
	SourceID   int64      `json:"source_id"`
	SourceType string     `json:"source_type"`
	SourceRef  string     `json:"source_ref,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
