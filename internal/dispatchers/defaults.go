package dispatchers

import (
	"strconv"

	"github.com/spf13/pflag"
)

// applyConfigDefaults overwrites schema defaults with values from the
// node's config section. Two typed lookups dispatched on the flag's
// value kind: Get for strings, GetBool for booleans. Writing Value and
// DefValue together keeps Changed false, so a config default still
// loses to argv and to values already in the shared namespace.
func applyConfigDefaults(cfg Config, fs *pflag.FlagSet, section string, logger Logger) {
	if cfg == nil {
		return
	}

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Value.Type() == "bool" {
			v, ok := cfg.GetBool(section, f.Name)
			if !ok {
				return
			}
			s := strconv.FormatBool(v)
			_ = f.Value.Set(s)
			f.DefValue = s
			return
		}

		v, ok := cfg.Get(section, f.Name)
		if !ok {
			return
		}
		if err := f.Value.Set(v); err != nil {
			logger.Warn("config: %s.%s: %v", section, f.Name, err)
			return
		}
		f.DefValue = v
	})
}
