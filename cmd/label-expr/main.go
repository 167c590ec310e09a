// Command label-expr compiles a localized-label expression for the given
// locale preferences and prints its JSON form, which is handy when debugging
// what the style hands to the engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	label "github.com/aaroads-wiki/openstreetmap-americana"
)

func main() {
	var (
		language  = flag.String("language", "", "comma-separated locale override; passing an empty value records an explicit empty override")
		agent     = flag.String("agent", "en", "comma-separated agent-reported locales")
		gloss     = flag.Bool("gloss", false, "compose the bilingual name/gloss expression instead of the plain fallback chain")
		legacy    = flag.Bool("legacy", false, "include the legacy underscore name fields")
		separator = flag.String("separator", "", "multi-value list separator override")
		compact   = flag.Bool("compact", false, "print compact JSON")
	)
	flag.Parse()

	opts := []label.Option{
		label.WithAgentLocales(splitList(*agent)...),
	}
	// A flag value of "" only counts as an explicit empty override when the
	// flag was actually passed.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "language" {
			opts = append(opts, label.WithLocaleOverride(*language))
		}
	})
	if *legacy {
		opts = append(opts, label.WithLegacyNameFields())
	}
	if *separator != "" {
		opts = append(opts, label.WithListSeparator(*separator))
	}

	cfg, err := label.NewConfig(opts...)
	if err != nil {
		fatal(err)
	}
	localizer, err := cfg.BuildLocalizer()
	if err != nil {
		fatal(err)
	}

	expr := localizer.NameExpression()
	if *gloss {
		expr = localizer.NameWithGlossExpression()
	}

	var out []byte
	if *compact {
		out, err = json.Marshal(expr)
	} else {
		out, err = json.MarshalIndent(expr, "", "  ")
	}
	if err != nil {
		fatal(err)
	}

	fmt.Fprintf(os.Stderr, "chain: %v\n", localizer.Chain())
	fmt.Println(string(out))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
