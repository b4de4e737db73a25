// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Settings keys. Values live in the settings table as strings; boolean
// settings store "1"/"0".
const (
	SettingSiteName          = "site_name"
	SettingSiteNameID        = "site_name_id"
	SettingSiteDescription   = "site_description"
	SettingSiteDescriptionID = "site_description_id"
	SettingContactEmail      = "contact_email"
	SettingContactPhone      = "contact_phone"
	SettingContactAddress    = "contact_address"
	SettingWhatsAppNumber    = "whatsapp_number"

	// Raw tracking snippets injected into the site head/body.
	SettingHeadScripts = "head_scripts"
	SettingBodyScripts = "body_scripts"

	// Search engine visibility toggles.
	SettingIndexingEnabled     = "indexing_enabled"
	SettingBlogIndexingEnabled = "blog_indexing_enabled"
)

// SettingsKeys lists every editable settings key in admin form order.
var SettingsKeys = []string{
	SettingSiteName,
	SettingSiteNameID,
	SettingSiteDescription,
	SettingSiteDescriptionID,
	SettingContactEmail,
	SettingContactPhone,
	SettingContactAddress,
	SettingWhatsAppNumber,
	SettingHeadScripts,
	SettingBodyScripts,
	SettingIndexingEnabled,
	SettingBlogIndexingEnabled,
}

// SettingsDefaults holds values assumed when a key is missing.
var SettingsDefaults = map[string]string{
	SettingSiteName:            "Kemasindo",
	SettingIndexingEnabled:     "1",
	SettingBlogIndexingEnabled: "1",
}

// BoolSetting interprets a stored settings value as a boolean.
func BoolSetting(value string) bool {
	return value == "1" || value == "true"
}
