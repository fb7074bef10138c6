package kova

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// DefaultLocale is the locale assumed when none has been set.
const DefaultLocale = "en"

// ResolveFunc looks up the display template for a constraint identifier in a
// given locale. It reports false when no template is registered, in which
// case the message falls back to the English template it was built with.
//
// The pkg/i18n Bundle provides a ResolveFunc backed by YAML locale files.
type ResolveFunc func(constraintID, locale string) (string, bool)

var (
	resolveMu sync.RWMutex
	resolveFn ResolveFunc
	locale    = DefaultLocale
)

// SetResolver installs the process-wide template resolver used by resource
// and composite messages. A nil resolver removes the current one.
func SetResolver(f ResolveFunc) {
	resolveMu.Lock()
	defer resolveMu.Unlock()
	resolveFn = f
}

// SetLocale sets the ambient locale consulted when message text is resolved.
// Messages created before the change render in the new locale, since text
// resolution happens at read time.
func SetLocale(l string) {
	if l == "" {
		l = DefaultLocale
	}
	resolveMu.Lock()
	defer resolveMu.Unlock()
	locale = l
}

// CurrentLocale returns the ambient locale.
func CurrentLocale() string {
	resolveMu.RLock()
	defer resolveMu.RUnlock()
	return locale
}

func lookupTemplate(constraintID string) (string, bool) {
	resolveMu.RLock()
	f, l := resolveFn, locale
	resolveMu.RUnlock()
	if f == nil {
		return "", false
	}
	return f(constraintID, l)
}

// Placeholders take the form %{name}. A numeric name addresses a positional
// argument, anything else a named parameter.
var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []any, params map[string]any) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if i, err := strconv.Atoi(name); err == nil {
			if i >= 0 && i < len(args) {
				return fmt.Sprint(args[i])
			}
			return match
		}
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		// Unknown placeholders stay verbatim so broken templates are visible.
		return match
	})
}
