// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"encoding/json"
	"testing"
)

func TestDefaultDataTotalOverRegistry(t *testing.T) {
	for _, def := range Definitions() {
		data := DefaultData(def.Type)
		if data == nil {
			t.Errorf("DefaultData(%q) = nil, want non-nil", def.Type)
			continue
		}
		if data.BlockType() != def.Type {
			t.Errorf("DefaultData(%q).BlockType() = %q", def.Type, data.BlockType())
		}
		// Defaults must serialize cleanly; their keys are fixed by the
		// concrete struct, so they are always a subset of the type's schema.
		if _, err := json.Marshal(data); err != nil {
			t.Errorf("DefaultData(%q) does not marshal: %v", def.Type, err)
		}
	}
}

func TestDefaultDataFAQ(t *testing.T) {
	data := DefaultData(TypeFAQ)
	faq, ok := data.(*FAQData)
	if !ok {
		t.Fatalf("DefaultData(faq) type = %T, want *FAQData", data)
	}
	if faq.Items == nil {
		t.Error("default FAQ items = nil, want empty slice")
	}
	if len(faq.Items) != 0 {
		t.Errorf("default FAQ items length = %d, want 0", len(faq.Items))
	}
}

func TestDefaultDataContactFormRequiredFields(t *testing.T) {
	data := DefaultData(TypeContactForm).(*ContactFormData)
	want := map[string]bool{FieldName: false, FieldEmail: false, FieldMessage: false}
	for _, f := range data.Fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("default contact form missing field %q", f)
		}
	}
}

func TestHTMLTypeNotRegistered(t *testing.T) {
	if IsRegistered(TypeHTML) {
		t.Error("legacy html type must not be offered by the editor")
	}
	if DefaultData(TypeHTML) != nil {
		t.Error("DefaultData(html) should be nil")
	}
}

func TestRegistryLocalizedLabels(t *testing.T) {
	for _, def := range Definitions() {
		if def.Label.EN == "" {
			t.Errorf("type %q has no English label", def.Type)
		}
		if def.Label.In("id") == "" {
			t.Errorf("type %q has no Indonesian label", def.Type)
		}
	}
}

func TestLocalizedTextFallback(t *testing.T) {
	txt := LocalizedText{EN: "Hello"}
	if got := txt.In("id"); got != "Hello" {
		t.Errorf("In(id) with empty ID = %q, want fallback %q", got, "Hello")
	}
	txt = LocalizedText{EN: "Hello", ID: "Halo"}
	if got := txt.In("id"); got != "Halo" {
		t.Errorf("In(id) = %q, want %q", got, "Halo")
	}
}
