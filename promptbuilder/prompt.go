/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// Prompt represents an instruction template with bindable placeholders.
type Prompt struct {
	template string
	bound    map[string]string
}

// NewPrompt parses template and returns a Prompt with all placeholders
// unbound. Placeholders use {{name}} syntax where name is an identifier
// (letters, digits, underscores).
func NewPrompt(template string) (*Prompt, error) {
	if _, err := placeholders(template); err != nil {
		return nil, err
	}
	return &Prompt{
		template: template,
		bound:    map[string]string{},
	}, nil
}

// Names returns the set of placeholder names in the template.
func (p *Prompt) Names() map[string]struct{} {
	names, _ := placeholders(p.template)
	return names
}

// BindString binds a verbatim string value to a placeholder.
// Returns a new Prompt with the binding applied.
func (p *Prompt) BindString(name, value string) (*Prompt, error) {
	names, _ := placeholders(p.template)
	if _, ok := names[name]; !ok {
		return nil, fmt.Errorf("template has no placeholder %q", name)
	}
	if _, ok := p.bound[name]; ok {
		return nil, fmt.Errorf("placeholder %q is already bound", name)
	}
	next := &Prompt{
		template: p.template,
		bound:    maps.Clone(p.bound),
	}
	next.bound[name] = value
	return next, nil
}

// BindCode binds a value wrapped in a markdown code fence. The fence grows
// as needed so a value that itself contains backtick runs stays intact.
// Returns a new Prompt with the binding applied.
func (p *Prompt) BindCode(name, value string) (*Prompt, error) {
	fence := "```"
	for strings.Contains(value, fence) {
		fence += "`"
	}
	body := strings.TrimRight(value, "\n")
	return p.BindString(name, fence+"\n"+body+"\n"+fence)
}

// Build renders the template, returning an error if any placeholder is
// still unbound.
func (p *Prompt) Build() (string, error) {
	return substitute(p.template, func(name string) (string, error) {
		value, ok := p.bound[name]
		if !ok {
			return "", fmt.Errorf("placeholder %q is unbound", name)
		}
		return value, nil
	})
}

// placeholders collects placeholder names, validating the template as it goes.
func placeholders(template string) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	_, err := substitute(template, func(name string) (string, error) {
		names[name] = struct{}{}
		// Re-emit the placeholder so validation leaves the template as-is.
		return "{{" + name + "}}", nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// substitute walks the template and replaces each placeholder with the
// value returned by resolve.
func substitute(template string, resolve func(name string) (string, error)) (string, error) {
	var out strings.Builder

	for len(template) > 0 {
		open := strings.Index(template, "{{")
		if open == -1 {
			out.WriteString(template)
			break
		}
		out.WriteString(template[:open])
		template = template[open:]

		end := strings.Index(template, "}}")
		if end == -1 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}

		name := strings.TrimSpace(template[2:end])
		if !isIdentifier(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
		value, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(value)
		template = template[end+2:]
	}

	return out.String(), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
