package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/drawer/internal/domain"
)

// DrawerSettings is the typed view of the config the demo and the drawer
// need. Invalid values fall back to the key's default.
type DrawerSettings struct {
	Side                string
	AnimationDelay      time.Duration
	WidthPercent        int
	RefocusBlocklist    []string
	SwipeCommitFraction float64
	SwipeCommitVelocity float64
	SettleFPS           int
	Theme               string
	EnableLog           bool
	LogLevel            string
	Journal             bool
}

// LoadSettings reads the effective settings through provider.
func LoadSettings(provider domain.ConfigProvider) DrawerSettings {
	values, err := provider.GetAll()
	if err != nil || values == nil {
		values = map[string]string{}
	}
	return SettingsFrom(values)
}

// SettingsFrom converts raw values into DrawerSettings.
func SettingsFrom(values map[string]string) DrawerSettings {
	get := func(key string) string {
		if v, ok := values[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		d, _ := domain.GetDefaultValue(key)
		return d
	}
	def := func(key string) string {
		d, _ := domain.GetDefaultValue(key)
		return d
	}

	s := DrawerSettings{
		Side:      strings.ToLower(get("side")),
		Theme:     get("theme"),
		LogLevel:  get("log_level"),
		EnableLog: parseBool(get("enable_log"), parseBool(def("enable_log"), true)),
		Journal:   parseBool(get("journal"), parseBool(def("journal"), true)),
	}
	if s.Side != "left" && s.Side != "right" {
		s.Side = def("side")
	}

	ms := intIn(get("animation_ms"), 0, 60_000, intIn(def("animation_ms"), 0, 60_000, 1000))
	s.AnimationDelay = time.Duration(ms) * time.Millisecond
	s.WidthPercent = intIn(get("drawer_width_percent"), 10, 90, intIn(def("drawer_width_percent"), 10, 90, 40))
	s.SettleFPS = intIn(get("settle_fps"), 1, 240, intIn(def("settle_fps"), 1, 240, 60))
	s.SwipeCommitFraction = floatIn(get("swipe_commit_fraction"), 0.01, 1, floatIn(def("swipe_commit_fraction"), 0.01, 1, 0.5))
	s.SwipeCommitVelocity = floatIn(get("swipe_commit_velocity"), 0.1, 10_000, floatIn(def("swipe_commit_velocity"), 0.1, 10_000, 40))

	blocklist, set := values["refocus_blocklist"]
	if !set {
		blocklist = def("refocus_blocklist")
	}
	for _, p := range strings.Split(blocklist, ",") {
		if p = strings.TrimSpace(p); p != "" {
			s.RefocusBlocklist = append(s.RefocusBlocklist, p)
		}
	}
	return s
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func intIn(v string, lo, hi, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return fallback
	}
	return n
}

func floatIn(v string, lo, hi, fallback float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < lo || f > hi {
		return fallback
	}
	return f
}
