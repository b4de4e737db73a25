// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package blocks implements the content-block system used by custom pages:
// a closed set of typed blocks authored in the admin panel, stored as JSON
// arrays per page per language, and rendered into HTML on the public site.
package blocks

import (
	"encoding/json"
	"fmt"
)

// Type identifies a block kind.
type Type string

// Block types offered by the editor.
const (
	TypeHero         Type = "hero"
	TypeText         Type = "text"
	TypeImageGallery Type = "image_gallery"
	TypeCTA          Type = "cta"
	TypeFeatures     Type = "features"
	TypeTestimonial  Type = "testimonial"
	TypeVideo        Type = "video"
	TypeFAQ          Type = "faq"
	TypePricingTable Type = "pricing_table"
	TypeTeamMembers  Type = "team_members"
	TypeStatsCounter Type = "stats_counter"
	TypeContactForm  Type = "contact_form"
)

// TypeHTML is a legacy block kind recognized by the renderer only. It can
// appear in historical data but is never offered by the editor.
const TypeHTML Type = "html"

// Data is the payload of a block. Each block type has its own concrete
// struct; payloads for types outside the known set decode into RawData so
// they survive a read-modify-write cycle unchanged.
type Data interface {
	// BlockType reports which block type this payload belongs to.
	BlockType() Type
}

// Block is one unit of page content: a stable id, a type tag, and
// type-specific data. Array order is display order.
type Block struct {
	ID   string
	Type Type
	Data Data
}

// envelope is the stored JSON shape of a block.
type envelope struct {
	ID   string          `json:"id"`
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON implements json.Marshaler.
func (b Block) MarshalJSON() ([]byte, error) {
	raw, err := encodeData(b.Data)
	if err != nil {
		return nil, fmt.Errorf("encoding %s block data: %w", b.Type, err)
	}
	return json.Marshal(envelope{ID: b.ID, Type: b.Type, Data: raw})
}

// UnmarshalJSON implements json.Unmarshaler. The data payload is decoded
// into the concrete struct for the block's type; unknown types keep their
// raw bytes.
func (b *Block) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	decoded, err := DecodeData(env.Type, env.Data)
	if err != nil {
		return fmt.Errorf("decoding %s block data: %w", env.Type, err)
	}
	b.ID = env.ID
	b.Type = env.Type
	b.Data = decoded
	return nil
}

// DecodeData decodes a raw JSON payload into the concrete data struct for
// the given block type. Missing keys are left at their zero values; a type
// outside the known set yields RawData preserving the original bytes.
func DecodeData(t Type, raw json.RawMessage) (Data, error) {
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}

	var (
		data Data
		err  error
	)
	switch t {
	case TypeHero:
		data, err = decodeInto[HeroData](raw)
	case TypeText:
		data, err = decodeInto[TextData](raw)
	case TypeImageGallery:
		data, err = decodeInto[ImageGalleryData](raw)
	case TypeCTA:
		data, err = decodeInto[CTAData](raw)
	case TypeFeatures:
		data, err = decodeInto[FeaturesData](raw)
	case TypeTestimonial:
		data, err = decodeInto[TestimonialData](raw)
	case TypeVideo:
		data, err = decodeInto[VideoData](raw)
	case TypeFAQ:
		data, err = decodeInto[FAQData](raw)
	case TypePricingTable:
		data, err = decodeInto[PricingTableData](raw)
	case TypeTeamMembers:
		data, err = decodeInto[TeamMembersData](raw)
	case TypeStatsCounter:
		data, err = decodeInto[StatsCounterData](raw)
	case TypeContactForm:
		data, err = decodeInto[ContactFormData](raw)
	case TypeHTML:
		data, err = decodeInto[HTMLData](raw)
	default:
		data = RawData{Tag: t, Raw: append(json.RawMessage(nil), raw...)}
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func decodeInto[T any](raw json.RawMessage) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}

// encodeData marshals a block payload back to JSON. Nil payloads become an
// empty object so stored rows never carry a JSON null.
func encodeData(d Data) (json.RawMessage, error) {
	if d == nil {
		return json.RawMessage("{}"), nil
	}
	if raw, ok := d.(RawData); ok {
		if len(raw.Raw) == 0 {
			return json.RawMessage("{}"), nil
		}
		return raw.Raw, nil
	}
	return json.Marshal(d)
}

// UnmarshalList decodes a stored block array. Empty or absent content yields
// an empty list rather than an error.
func UnmarshalList(data []byte) ([]Block, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var list []Block
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding block list: %w", err)
	}
	return list, nil
}

// MarshalList encodes a block array for storage. A nil list is stored as an
// empty JSON array.
func MarshalList(blocks []Block) ([]byte, error) {
	if blocks == nil {
		blocks = []Block{}
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("encoding block list: %w", err)
	}
	return data, nil
}
