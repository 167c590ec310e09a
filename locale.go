package label

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag is a hyphen-delimited locale identifier such as "zh-Hant-TW".
type Tag string

// Chain is an ordered locale fallback sequence, most specific and highest
// priority first, with no repeated entries. A Chain is built once per
// locale-change event and read-only afterwards.
type Chain []Tag

// First returns the highest-priority tag, or "" for an empty chain.
func (c Chain) First() Tag {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Contains reports whether tag is already part of the chain.
func (c Chain) Contains(tag Tag) bool {
	for _, t := range c {
		if t == tag {
			return true
		}
	}
	return false
}

// ParseOverride splits a raw comma-separated locale override. A nil input
// means no override was supplied; an explicit empty override yields an empty
// non-nil slice so callers can tell the two apart before the agent-locale
// fallback is applied.
func ParseOverride(raw *string) []string {
	if raw == nil {
		return nil
	}

	locales := make([]string, 0, 4)
	for _, part := range strings.Split(*raw, ",") {
		if normalized := normalizeLocale(part); normalized != "" {
			locales = append(locales, normalized)
		}
	}
	return locales
}

// ResolveChain builds the fallback chain from an override list and the
// agent-reported locales. When the override is empty or absent the agent list
// is used instead. Each base tag expands to itself plus every
// progressively-less-specific parent, appended in first-seen order with
// duplicates dropped across the whole chain.
func ResolveChain(override []string, agent []string) Chain {
	base := override
	if len(base) == 0 {
		base = agent
	}

	chain := make(Chain, 0, len(base)*2)
	seen := make(map[Tag]struct{}, len(base)*2)

	appendTag := func(tag Tag) {
		if tag == "" {
			return
		}
		if _, exists := seen[tag]; exists {
			return
		}
		seen[tag] = struct{}{}
		chain = append(chain, tag)
	}

	for _, raw := range base {
		locale := normalizeLocale(raw)
		if locale == "" {
			continue
		}
		appendTag(Tag(locale))
		for parent := localeParentTag(locale); parent != ""; parent = localeParentTag(parent) {
			appendTag(Tag(parent))
		}
	}

	return chain
}

// normalizeLocale trims whitespace, replaces underscores with hyphens and
// canonicalizes casing when the tag is well formed (pt-br becomes pt-BR).
func normalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		if value := tag.String(); value != "" && value != "und" {
			return value
		}
	}
	return locale
}

// localeParentTag drops the last hyphen-delimited component, so zh-Hant-TW
// yields zh-Hant. The literal component drop keeps the chain aligned with the
// name:<tag> field naming rather than CLDR parent inheritance.
func localeParentTag(locale string) string {
	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}
