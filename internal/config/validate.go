package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks settings and screen.
func (c MergelistConfig) Validate() error {
	var errs []error
	if err := validate.Struct(c.Settings); err != nil {
		errs = append(errs, fmt.Errorf("settings: log level %q is not one of debug, info, warn, error", c.Settings.LogLevel))
	}
	if err := c.Screen.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks the screen for unusable blocks.
func (s Screen) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Blocks))
	for i, b := range s.Blocks {
		if err := validate.Struct(b); err != nil {
			errs = append(errs, blockErrors(i, b, err)...)
			continue
		}
		if seen[b.Name] {
			errs = append(errs, fmt.Errorf("block name %q is used more than once", b.Name))
		}
		seen[b.Name] = true

		if (b.Type == BlockTypeHeader || b.Type == BlockTypeFooter) && len(b.Lines) == 0 {
			errs = append(errs, fmt.Errorf("block %q: %s needs at least one line", b.Name, b.Type))
		}
	}
	return errors.Join(errs...)
}

// blockErrors turns validator field errors into messages naming the block.
func blockErrors(i int, b Block, err error) []error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{fmt.Errorf("block %d: %w", i, err)}
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Name":
			out = append(out, fmt.Errorf("block %d has no name", i))
		case "Type":
			out = append(out, fmt.Errorf("block %d (%q): unknown type %q", i, b.Name, b.Type))
		default:
			out = append(out, fmt.Errorf("block %d (%q): %s fails %q", i, b.Name, fe.Field(), fe.Tag()))
		}
	}
	return out
}
