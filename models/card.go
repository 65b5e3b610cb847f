// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CardType defines the grammatical kind of a vocabulary card. The value
// decides which of the type-specific fields of [Card] are meaningful.
type CardType string

const (
	// CardTypeNoun is a noun card; Gender and Plural apply.
	CardTypeNoun CardType = "noun"

	// CardTypeVerb is a verb card; VerbType, Auxiliary and Examples apply.
	CardTypeVerb CardType = "verb"

	// CardTypePhrase is a phrase card; Context applies.
	CardTypePhrase CardType = "phrase"
)

// CardTypes lists every supported card type in display order.
var CardTypes = []CardType{CardTypeNoun, CardTypeVerb, CardTypePhrase}

// LevelSpecialized marks vocabulary outside the CEFR scale
// (business or IT terminology).
const LevelSpecialized = "specialized"

// Card is a single vocabulary entry together with its learning metadata.
//
// Word is the natural key: it is unique within a replica and is the only
// attribute used to match local cards against remote ones. ID is a local
// surrogate key that is replaced by the remote-assigned id after a cache
// refresh.
//
// CardScore and ViewCount are adjusted through progress deltas only; the
// single exception is a full cache refresh, which overwrites them with the
// authoritative remote values.
type Card struct {
	ID         int64    `json:"id,omitempty"`
	Word       string   `json:"word" validate:"required"`
	Definition string   `json:"definition" validate:"required"`
	Type       CardType `json:"type" validate:"required,oneof=noun verb phrase"`
	Level      string   `json:"level,omitempty"`
	Collection string   `json:"collection,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	// noun
	Gender string `json:"gender,omitempty"`
	Plural string `json:"plural,omitempty"`

	// verb
	VerbType  string       `json:"verbType,omitempty"`
	Auxiliary string       `json:"auxiliary,omitempty"`
	Examples  *VerbExample `json:"examples,omitempty"`

	// phrase
	Context string `json:"context,omitempty"`

	CardScore       int        `json:"cardScore"`
	ViewCount       int        `json:"viewCount" validate:"gte=0"`
	CreatedDate     *time.Time `json:"createdDate,omitempty"`
	LastPracticedAt *time.Time `json:"lastPracticedAt,omitempty"`
}

// VerbExample is a bilingual usage example attached to verb cards.
type VerbExample struct {
	DE string `json:"de"`
	EN string `json:"en"`
}

// HasProgress reports whether the card carries any learning progress,
// i.e. a non-zero score or at least one recorded view. Only such cards are
// eligible for migration to a remote identity.
func (c Card) HasProgress() bool {
	return c.CardScore != 0 || c.ViewCount != 0
}

// HasAnyTag reports whether at least one of tags is present on the card.
func (c Card) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range c.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CardUpdate carries a partial update of a [Card]. Nil fields are left
// untouched. Progress fields are deliberately absent: they change through
// progress deltas only.
type CardUpdate struct {
	Word       *string
	Definition *string
	Type       *CardType
	Level      *string
	Collection *string
	Tags       *[]string
	Gender     *string
	Plural     *string
	VerbType   *string
	Auxiliary  *string
	Examples   *VerbExample
	Context    *string
}

// Apply merges the non-nil fields of u into card and returns the result.
func (u CardUpdate) Apply(card Card) Card {
	if u.Word != nil {
		card.Word = *u.Word
	}
	if u.Definition != nil {
		card.Definition = *u.Definition
	}
	if u.Type != nil {
		card.Type = *u.Type
	}
	if u.Level != nil {
		card.Level = *u.Level
	}
	if u.Collection != nil {
		card.Collection = *u.Collection
	}
	if u.Tags != nil {
		card.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.Gender != nil {
		card.Gender = *u.Gender
	}
	if u.Plural != nil {
		card.Plural = *u.Plural
	}
	if u.VerbType != nil {
		card.VerbType = *u.VerbType
	}
	if u.Auxiliary != nil {
		card.Auxiliary = *u.Auxiliary
	}
	if u.Examples != nil {
		ex := *u.Examples
		card.Examples = &ex
	}
	if u.Context != nil {
		card.Context = *u.Context
	}
	return card
}

// CardFilter selects cards from the local store. All non-empty criteria are
// combined with logical AND; an empty field means "no constraint".
type CardFilter struct {
	// Collection requires an exact collection match.
	Collection string

	// Types requires the card type to be one of the listed values.
	Types []CardType

	// ScoreMin and ScoreMax bound CardScore inclusively.
	ScoreMin *int
	ScoreMax *int

	// Tags requires at least one of the listed tags on the card.
	Tags []string

	// Search is a case-insensitive substring matched against Word and
	// Definition.
	Search string
}

// IsEmpty reports whether the filter has no constraints at all.
func (f CardFilter) IsEmpty() bool {
	return f.Collection == "" && len(f.Types) == 0 && f.ScoreMin == nil &&
		f.ScoreMax == nil && len(f.Tags) == 0 && f.Search == ""
}

// CardRef is the minimal remote projection of a card used to map local words
// onto remote ids.
type CardRef struct {
	ID   int64  `json:"id"`
	Word string `json:"word"`
}

// CardStats summarises the local card collection.
type CardStats struct {
	TotalCards  int              `json:"totalCards"`
	ByType      map[CardType]int `json:"byType"`
	Collections []string         `json:"collections"`
	Tags        []string         `json:"tags"`
}
