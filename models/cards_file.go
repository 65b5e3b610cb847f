package models

import "time"

// CardsFileVersion is the only supported version of the card exchange file.
const CardsFileVersion = "1.0"

// CardsFile is the JSON exchange format for importing and exporting cards:
//
//	{ "version": "1.0", "exported": "2026-01-02T15:04:05Z", "cards": [...] }
type CardsFile struct {
	Version  string    `json:"version"`
	Exported time.Time `json:"exported"`
	Cards    []Card    `json:"cards" validate:"dive"`
}

// ImportResult summarises a card import.
type ImportResult struct {
	Total          int      `json:"total"`
	Imported       int      `json:"imported"`
	Duplicates     int      `json:"duplicates"`
	Errors         int      `json:"errors"`
	DuplicateWords []string `json:"duplicateWords,omitempty"`
}
