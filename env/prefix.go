package env

import (
	"os"
	"strconv"
	"strings"
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" by [Prefix.Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" by [Prefix.Bool], and can be changed.
)

// Prefix scopes environment lookups to variables sharing a common prefix.
// A Prefix of "MODES" will resolve the name "log_level" to the variable MODES_LOG_LEVEL.
// The empty Prefix resolves names as-is, apart from upper-casing them.
type Prefix string

// Key returns the full environment variable name for the given name.
func (p Prefix) Key(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(p) == 0 {
		return name
	}
	return strings.ToUpper(string(p)) + "_" + name
}

// IsSet reports whether the variable is present in the environment, even if it's empty.
func (p Prefix) IsSet(name string) bool {
	_, ok := os.LookupEnv(p.Key(name))
	return ok
}

// Val returns the trimmed value of the variable, or defaultVal if it isn't set or is blank.
func (p Prefix) Val(name string, defaultVal string) string {
	val, ok := os.LookupEnv(p.Key(name))
	if !ok {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

// Bool interprets the variable using [DefaultTrue] and [DefaultFalse], compared case-insensitive.
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func (p Prefix) Bool(name string, defaultVal bool) bool {
	sval := strings.ToLower(p.Val(name, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, t := range DefaultTrue {
		if sval == strings.ToLower(t) {
			return true
		}
	}
	for _, f := range DefaultFalse {
		if sval == strings.ToLower(f) {
			return false
		}
	}
	return defaultVal
}

// Int interprets the variable as a base 10 integer, returning defaultVal if that isn't possible.
func (p Prefix) Int(name string, defaultVal int64) int64 {
	sval := p.Val(name, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}
