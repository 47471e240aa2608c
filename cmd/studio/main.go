package main

import (
	"os"
	"strings"

	"itinerary-studio/internal/cli"
	"itinerary-studio/internal/store"
)

func isItineraryCode(s string) bool {
	return store.ValidItineraryCode(strings.ToUpper(strings.TrimSpace(s)))
}

// rewriteDirectLookupArgs makes `studio <code>` behave like
// `studio itineraries show <code>`. Cobra treats the first positional token as
// a subcommand, so argv is rewritten before parsing. Persistent flags may come
// first, so the first positional token is searched for, not argv[1].
func rewriteDirectLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":        true,
		"--format":     true,
		"--log-level":  true,
		"--log-format": true,
		"--export-dir": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	insert := func(i int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "itineraries", "show")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isItineraryCode(argv[i+1]) {
				return insert(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			// Unknown flags are skipped without consuming a value.
			continue
		}
		if isItineraryCode(a) {
			return insert(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
