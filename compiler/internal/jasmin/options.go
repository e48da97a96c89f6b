package jasmin

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultLimit is written for both .limit stack and .limit locals. It isn't computed from the code,
// it's just large enough for the methods this language can express.
const DefaultLimit = 99

const defaultIndent = "   "

type Options struct {
	StackLimit  int
	LocalsLimit int
	// BytecodeVersion, when set, is written as a .bytecode directive ahead of the class,
	// e.g. "49.0" or "52". Only major and minor are used.
	BytecodeVersion string
	Indent          string
}

func DefaultOptions() Options {
	return Options{
		StackLimit:  DefaultLimit,
		LocalsLimit: DefaultLimit,
		Indent:      defaultIndent,
	}
}

func (options Options) withDefaults() Options {
	if options.StackLimit <= 0 {
		options.StackLimit = DefaultLimit
	}
	if options.LocalsLimit <= 0 {
		options.LocalsLimit = DefaultLimit
	}
	if options.Indent == "" {
		options.Indent = defaultIndent
	}
	return options
}

func (options Options) bytecodeDirective() (string, error) {
	if options.BytecodeVersion == "" {
		return "", nil
	}
	v, err := semver.NewVersion(options.BytecodeVersion)
	if err != nil {
		return "", fmt.Errorf("invalid bytecode version %q: %w", options.BytecodeVersion, err)
	}
	return fmt.Sprintf(".bytecode %d.%d\n", v.Major(), v.Minor()), nil
}
