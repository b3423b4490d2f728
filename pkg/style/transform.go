package style

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/outstanding/pkg/markup"
)

// Mode selects what a transform does with markup tags.
type Mode int

const (
	// ModeKeep passes tags through untouched, for output that a later
	// stage styles itself.
	ModeKeep Mode = iota
	// ModeRemove strips tags, leaving plain text.
	ModeRemove
	// ModeApply replaces tags with the ANSI sequences of their styles.
	ModeApply
)

func (m Mode) String() string {
	switch m {
	case ModeKeep:
		return "keep"
	case ModeRemove:
		return "remove"
	case ModeApply:
		return "apply"
	}
	return "unknown"
}

// DetectMode picks the transform for a destination file: apply styles
// on interactive terminals, strip them for pipes and files. NO_COLOR
// and friends are honored.
func DetectMode(f *os.File) Mode {
	if termenv.EnvNoColor() {
		return ModeRemove
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return ModeRemove
	}
	return ModeApply
}

// Transform resolves markup in fully laid-out text according to a
// mode. The zero value keeps tags; NewTransform with ModeApply styles
// them through a registry.
type Transform struct {
	mode Mode
	reg  *Registry
}

// NewTransform builds a transform. A nil registry falls back to the
// embedded default stylesheet.
func NewTransform(mode Mode, reg *Registry) *Transform {
	if reg == nil {
		reg = Default()
	}
	return &Transform{mode: mode, reg: reg}
}

// Mode returns the transform's mode.
func (t *Transform) Mode() Mode {
	return t.mode
}

// Apply transforms one line of rendered output. Text styled by nested
// tags gets the merged style of every tag open around it, innermost
// last. Unknown tag names degrade to plain text.
func (t *Transform) Apply(s string) (string, error) {
	if t.mode == ModeKeep || !strings.ContainsRune(s, '[') {
		return s, nil
	}
	if t.mode == ModeRemove {
		return markup.Strip(s)
	}
	spans, err := markup.Parse(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var open []string
	for _, sp := range spans {
		if sp.Tag {
			if sp.Close {
				open = open[:len(open)-1]
			} else {
				open = append(open, sp.Name)
			}
			continue
		}
		if len(open) == 0 {
			b.WriteString(sp.Text)
			continue
		}
		// innermost first, so inner tags override outer ones
		names := make([]string, len(open))
		for i := range open {
			names[i] = open[len(open)-1-i]
		}
		b.WriteString(t.reg.Merge(names...).Render(sp.Text))
	}
	return b.String(), nil
}

// ApplyAll transforms a multi-line block, line by line, so styling
// never bleeds across line breaks.
func (t *Transform) ApplyAll(text string) (string, error) {
	if t.mode == ModeKeep {
		return text, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		out, err := t.Apply(line)
		if err != nil {
			return "", err
		}
		lines[i] = out
	}
	return strings.Join(lines, "\n"), nil
}
