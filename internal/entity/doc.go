// Package entity defines the named-entity type shared by both NER engines
// and the partition step that splits extraction results into person names
// and organization affiliations.
package entity
