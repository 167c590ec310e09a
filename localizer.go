package label

import "fmt"

const defaultListSeparator = " • "

// Config captures localizer setup.
type Config struct {
	// Override holds the raw locale override, usually read from an
	// application-controlled source such as a URL fragment key named
	// "language". nil means no override was supplied at all; a pointer to an
	// empty string is an explicit empty override. Both fall back to the
	// agent locales, but the distinction stays observable to callers.
	Override *string

	// AgentLocales is the ordered locale list reported by the user agent.
	AgentLocales []string

	// LegacyFields opts into the underscore name-field forms carried by a
	// few layers of the tile schema.
	LegacyFields bool

	// ListSeparator joins the values of multi-valued name fields.
	ListSeparator string
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{ListSeparator: defaultListSeparator}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithLocaleOverride supplies the raw override value. Passing an empty string
// records an explicit empty override, which is distinguishable from never
// calling this option.
func WithLocaleOverride(raw string) Option {
	return func(c *Config) error {
		c.Override = &raw
		return nil
	}
}

// WithAgentLocales registers the agent-reported locale list.
func WithAgentLocales(locales ...string) Option {
	return func(c *Config) error {
		c.AgentLocales = append(c.AgentLocales, locales...)
		return nil
	}
}

// WithLegacyNameFields enables the underscore field forms.
func WithLegacyNameFields() Option {
	return func(c *Config) error {
		c.LegacyFields = true
		return nil
	}
}

// WithListSeparator overrides the multi-value separator.
func WithListSeparator(separator string) Option {
	return func(c *Config) error {
		if separator == "" {
			return ErrEmptySeparator
		}
		c.ListSeparator = separator
		return nil
	}
}

// Localizer compiles localized-label expressions for one resolved locale
// chain. It holds no shared mutable state: every method returns a fresh,
// structurally independent tree, so successive builds triggered by locale
// changes never observe each other.
type Localizer struct {
	chain         Chain
	legacyFields  bool
	listSeparator string
}

// BuildLocalizer resolves the locale chain and assembles the compiler
// pipeline. Called once per locale-change event.
func (cfg *Config) BuildLocalizer() (*Localizer, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	separator := cfg.ListSeparator
	if separator == "" {
		separator = defaultListSeparator
	}

	return &Localizer{
		chain:         ResolveChain(ParseOverride(cfg.Override), cfg.AgentLocales),
		legacyFields:  cfg.LegacyFields,
		listSeparator: separator,
	}, nil
}

// Chain returns a copy of the resolved fallback chain.
func (l *Localizer) Chain() Chain {
	if l == nil || len(l.chain) == 0 {
		return nil
	}
	out := make(Chain, len(l.chain))
	copy(out, l.chain)
	return out
}

// NameExpression builds the per-locale field fallback expression.
func (l *Localizer) NameExpression() Expression {
	return LocalizedNameExpression(l.chain, l.legacyFields)
}

// NameWithGlossExpression builds the bilingual name/gloss composition.
func (l *Localizer) NameWithGlossExpression() Expression {
	return NameWithLocalGloss(l.NameExpression(), l.chain, l.listSeparator)
}

// Collator returns the comparison configuration for the resolved chain:
// case-insensitive, diacritic-sensitive, collating in the chain's first
// locale.
func (l *Localizer) Collator() CollatorOptions {
	return CollatorOptions{DiacriticSensitive: true, Locale: l.chain.First()}
}

// ApplyToTemplate splices the localized-name expression and the collator
// configuration into a template's pre-declared slots. Substitution is
// update-only, so a template missing either slot is reported rather than
// silently extended.
func (l *Localizer) ApplyToTemplate(root Expression) error {
	if !SubstituteVariable(root, LocalizedNameSlot, l.NameExpression()) {
		return fmt.Errorf("%w: %q", ErrMissingSlot, LocalizedNameSlot)
	}
	if !SubstituteVariable(root, LocalizedCollatorSlot, l.Collator().Expression()) {
		return fmt.Errorf("%w: %q", ErrMissingSlot, LocalizedCollatorSlot)
	}
	return nil
}
