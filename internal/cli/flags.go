package cli

import "github.com/spf13/pflag"

// flagOr returns the named string flag when it was set on the command line,
// otherwise fallback.
func flagOr(fs *pflag.FlagSet, name, fallback string) string {
	if !fs.Changed(name) {
		return fallback
	}
	v, err := fs.GetString(name)
	if err != nil {
		return fallback
	}
	return v
}
