package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is the root aggregate. The six embedded collections live inside
// the project row as JSON document columns and are always read and written
// as a whole; sub-entities have no identity outside their parent project.
//
// Cross-entity links (LinkedWorldID, LinkedCharacterIDs, ...) are weak,
// id-only references: nothing checks that a referenced id exists, and
// deleting an entity does not clean up references pointing at it.
type Project struct {
	ID         uuid.UUID                           `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID    uuid.UUID                           `gorm:"type:uuid;index;not null;column:owner_id" json:"owner_id"`
	Name       string                              `gorm:"not null;column:name" json:"name"`
	Characters datatypes.JSONSlice[Character]      `gorm:"column:characters" json:"characters"`
	Worlds     datatypes.JSONSlice[World]          `gorm:"column:worlds" json:"worlds"`
	Writings   datatypes.JSONSlice[WritingEntry]   `gorm:"column:writings" json:"writings"`
	Eras       datatypes.JSONSlice[Era]            `gorm:"column:eras" json:"eras"`
	Timeline   datatypes.JSONSlice[TimelineEvent]  `gorm:"column:timeline" json:"timeline"`
	Catalogue  datatypes.JSONSlice[CatalogueItem]  `gorm:"column:catalogue" json:"catalogue"`
	CreatedAt  time.Time                           `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time                           `gorm:"not null" json:"updated_at"`
}

func (Project) TableName() string {
	return "project"
}

type CharacterTrait struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	IsCustom   bool   `json:"is_custom"`
	IsTextarea bool   `json:"is_textarea"`
}

type Character struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Species          string           `json:"species"`
	Traits           []CharacterTrait `json:"traits"`
	LinkedWorldID    *string          `json:"linked_world_id"`
	LinkedEventIDs   []string         `json:"linked_event_ids"`
	LinkedWritingIDs []string         `json:"linked_writing_ids"`
}

type World struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Theme              string   `json:"theme"`
	Setting            string   `json:"setting"`
	Description        string   `json:"description"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWritingIDs   []string `json:"linked_writing_ids"`
	LinkedEventIDs     []string `json:"linked_event_ids"`
}

type WritingEntry struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	Tags               []string  `json:"tags"`
	LinkedCharacterIDs []string  `json:"linked_character_ids"`
	LinkedWorldID      *string   `json:"linked_world_id"`
	LinkedEventIDs     []string  `json:"linked_event_ids"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Era order is zero-based and dense within a project; the stored slice is
// kept sorted by Order so iteration order always matches positional order.
type Era struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// TimelineEvent order is scoped within its era. DisplayDate is display-only
// free text and never used for sorting.
type TimelineEvent struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	DisplayDate        string   `json:"display_date"`
	Description        string   `json:"description"`
	Tags               []string `json:"tags"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWritingIDs   []string `json:"linked_writing_ids"`
	EraID              string   `json:"era_id"`
	Order              int      `json:"order"`
}

type CatalogueItem struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	Description        string   `json:"description"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWorldID      *string  `json:"linked_world_id"`
	LinkedEventIDs     []string `json:"linked_event_ids"`
	LinkedWritingIDs   []string `json:"linked_writing_ids"`
}
