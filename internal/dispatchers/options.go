package dispatchers

import (
	"sort"
	"strconv"

	"github.com/spf13/pflag"
)

// Options is the mutable namespace a resolved chain shares. The caller
// creates it once; every node merges its parsed flags in, so a flag
// set at any ancestor is visible to all descendants.
type Options struct {
	values map[string]any
}

// NewOptions creates an empty namespace.
func NewOptions() *Options {
	return &Options{values: make(map[string]any)}
}

// Has reports whether any node on the chain has set name.
func (o *Options) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// String returns the value for name, or "" when unset or not a string.
func (o *Options) String(name string) string {
	v, _ := o.values[name].(string)
	return v
}

// Bool returns the value for name, or false when unset or not a bool.
func (o *Options) Bool(name string) bool {
	v, _ := o.values[name].(bool)
	return v
}

// Set stores a string value for name.
func (o *Options) Set(name, value string) {
	o.values[name] = value
}

// SetBool stores a boolean value for name.
func (o *Options) SetBool(name string, value bool) {
	o.values[name] = value
}

// Names returns the set keys in sorted order.
func (o *Options) Names() []string {
	names := make([]string, 0, len(o.values))
	for name := range o.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mergeOptions folds one parsed flag set into the shared namespace.
// Explicit argv values always win; defaults only fill keys no ancestor
// has set; an inherited value survives a child redeclaring the flag.
// The implicit help flag never enters the namespace.
func mergeOptions(opts *Options, fs *pflag.FlagSet, skipHelp bool) {
	fs.VisitAll(func(f *pflag.Flag) {
		if skipHelp && f.Name == "help" {
			return
		}
		if !f.Changed && opts.Has(f.Name) {
			return
		}
		if f.Value.Type() == "bool" {
			if v, err := strconv.ParseBool(f.Value.String()); err == nil {
				opts.SetBool(f.Name, v)
			}
			return
		}
		opts.Set(f.Name, f.Value.String())
	})
}
