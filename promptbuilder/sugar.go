/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Must wraps a call returning (*Prompt, error) and panics on error. Intended
// for package-level template variables:
//
//	var p = promptbuilder.Must(promptbuilder.NewPrompt(`Hello {{name}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt parses a template and panics on error.
func MustNewPrompt(template string) *Prompt {
	return Must(NewPrompt(template))
}

// MustBindString binds a verbatim string value and panics on error.
func (p *Prompt) MustBindString(name, value string) *Prompt {
	return Must(p.BindString(name, value))
}

// MustBindCode binds a fenced value and panics on error.
func (p *Prompt) MustBindCode(name, value string) *Prompt {
	return Must(p.BindCode(name, value))
}
