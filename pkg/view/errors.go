package view

import "errors"

var (
	// ErrTemplateNotFound indicates the view or page file was not found.
	ErrTemplateNotFound = errors.New("view: template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("view: layout not found")

	// ErrRenderFailed indicates template parsing or execution failed.
	ErrRenderFailed = errors.New("view: failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("view: invalid frontmatter")

	// ErrInvalidFunc indicates a registration with an empty name or a value
	// that cannot be called from templates.
	ErrInvalidFunc = errors.New("view: invalid template function")

	// ErrUnknownMethod indicates a call to an instance method that was never registered.
	ErrUnknownMethod = errors.New("view: unknown instance method")
)
