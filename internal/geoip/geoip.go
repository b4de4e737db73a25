// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geoip resolves contact submission IPs to a country code using
// a MaxMind GeoLite2-Country database. The lookup degrades gracefully:
// without a configured database every lookup returns "".
package geoip

import (
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/oschwald/maxminddb-golang"
)

var privateCIDRs []*net.IPNet

func init() {
	for _, block := range []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"fc00::/7",
		"fe80::/10",
	} {
		_, cidr, err := net.ParseCIDR(block)
		if err == nil {
			privateCIDRs = append(privateCIDRs, cidr)
		}
	}
}

// Lookup wraps a MaxMind country database with reload support.
type Lookup struct {
	mu        sync.RWMutex
	db        *maxminddb.Reader
	dbPath    string
	dbModTime time.Time
	enabled   bool
}

type geoRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// NewLookup creates an empty, disabled lookup.
func NewLookup() *Lookup {
	return &Lookup{}
}

// Init loads the database at dbPath. Empty path disables lookups without
// error.
func (g *Lookup) Init(dbPath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.dbPath = dbPath
	if dbPath == "" {
		g.enabled = false
		return nil
	}
	return g.loadDatabase()
}

// loadDatabase loads or reloads the database. Caller holds the write lock.
func (g *Lookup) loadDatabase() error {
	info, err := os.Stat(g.dbPath)
	if err != nil {
		g.enabled = false
		return fmt.Errorf("GeoIP database: %w", err)
	}

	if g.db != nil && info.ModTime().Equal(g.dbModTime) {
		return nil
	}

	if g.db != nil {
		_ = g.db.Close()
		g.db = nil
	}

	db, err := maxminddb.Open(g.dbPath)
	if err != nil {
		g.enabled = false
		return fmt.Errorf("opening GeoIP database: %w", err)
	}

	g.db = db
	g.dbModTime = info.ModTime()
	g.enabled = true
	return nil
}

// Reload re-reads the database if its file changed. Safe to call from a
// scheduler job.
func (g *Lookup) Reload() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dbPath == "" {
		return nil
	}
	return g.loadDatabase()
}

// LookupCountry returns the ISO 3166-1 alpha-2 country code for an IP,
// "LOCAL" for private and loopback addresses, and "" when the address is
// invalid or the database is unavailable.
func (g *Lookup) LookupCountry(ip string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return ""
	}
	if parsedIP.IsLoopback() || isPrivateIP(parsedIP) {
		return "LOCAL"
	}
	if !g.enabled || g.db == nil {
		return ""
	}

	var record geoRecord
	if err := g.db.Lookup(parsedIP, &record); err != nil {
		return ""
	}
	return record.Country.ISOCode
}

// IsEnabled reports whether database lookups are available.
func (g *Lookup) IsEnabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.enabled
}

// Close releases the database.
func (g *Lookup) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db != nil {
		err := g.db.Close()
		g.db = nil
		g.enabled = false
		return err
	}
	return nil
}

func isPrivateIP(ip net.IP) bool {
	for _, cidr := range privateCIDRs {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// countryNames covers the markets the sales team actually sees; anything
// else falls back to the raw code.
var countryNames = map[string]string{
	"LOCAL": "Local Network",
	"ID":    "Indonesia",
	"MY":    "Malaysia",
	"SG":    "Singapore",
	"TH":    "Thailand",
	"VN":    "Vietnam",
	"PH":    "Philippines",
	"AU":    "Australia",
	"NZ":    "New Zealand",
	"JP":    "Japan",
	"KR":    "South Korea",
	"CN":    "China",
	"HK":    "Hong Kong",
	"TW":    "Taiwan",
	"IN":    "India",
	"US":    "United States",
	"CA":    "Canada",
	"GB":    "United Kingdom",
	"DE":    "Germany",
	"NL":    "Netherlands",
	"FR":    "France",
	"AE":    "United Arab Emirates",
	"SA":    "Saudi Arabia",
}

// CountryName returns a display name for a country code.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	if code == "" {
		return "Unknown"
	}
	return code
}
