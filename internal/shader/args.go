package shader

import "github.com/tliron/commonlog"

// Args is an ordered descriptor list. Order is the declaration order in the
// source and is significant to binders.
type Args []Arg

// Lookup returns the first descriptor with the given name.
func (a Args) Lookup(name string) (Arg, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg, true
		}
	}
	return Arg{}, false
}

func (a Args) Names() []string {
	names := make([]string, len(a))
	for i, arg := range a {
		names[i] = arg.Name
	}
	return names
}

// Uniforms returns the descriptors bound through uniform locations.
func (a Args) Uniforms() Args {
	return a.filter(Arg.IsUniform)
}

// Attributes returns the descriptors bound through attribute locations.
func (a Args) Attributes() Args {
	return a.filter(Arg.IsAttribute)
}

func (a Args) filter(keep func(Arg) bool) Args {
	var out Args
	for _, arg := range a {
		if keep(arg) {
			out = append(out, arg)
		}
	}
	return out
}

// LogArgs writes one debug line per descriptor.
func LogArgs(log commonlog.Logger, prefix string, args Args) {
	if len(args) == 0 {
		log.Debugf("%sno shader args", prefix)
		return
	}
	for i, arg := range args {
		log.Debugf("%sarg %d: %s (type=%s qualifier=%s direction=%s)",
			prefix, i, arg.Name, arg.Type, arg.Qualifier, arg.Direction)
	}
}
