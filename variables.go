package propcat

//go:generate mockgen -source=$GOFILE -package mock_propcat -destination=test/mock/$GOFILE

// LocaleVariable is the variable name queried for the ambient locale.
const LocaleVariable = "locale"

// VariableResolver exposes ambient rendering variables, such as the current
// locale of a template engine.
type VariableResolver interface {
	Get(name string) (any, bool)
}

// ResolverFunc adapts a function to VariableResolver.
type ResolverFunc func(name string) (any, bool)

func (f ResolverFunc) Get(name string) (any, bool) {
	return f(name)
}

// MapResolver resolves variables from a fixed map.
type MapResolver map[string]any

func (m MapResolver) Get(name string) (any, bool) {
	value, ok := m[name]
	return value, ok
}

// ambientLocale returns the resolver's locale as its textual form.
func ambientLocale(resolver VariableResolver) (string, bool) {
	if resolver == nil {
		return "", false
	}
	value, ok := resolver.Get(LocaleVariable)
	if !ok {
		return "", false
	}
	return localeString(value)
}
