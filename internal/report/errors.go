package report

import (
	"errors"
	"fmt"
)

var (
	// ErrRender wraps every failure raised while building a document.
	ErrRender = errors.New("document render failed")

	// ErrNoProjects is returned by renderers that need at least one project.
	ErrNoProjects = errors.New("no project to render")
)

// Guard runs build and turns a panic inside it into an ErrRender error, so a
// render either returns complete bytes or an error and nothing else.
func Guard(format string, build func() ([]byte, error)) (out []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = nil
			err = fmt.Errorf("%w: %s: panic: %v", ErrRender, format, p)
		}
	}()

	out, err = build()
	if err != nil {
		if errors.Is(err, ErrRender) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, format, err)
	}
	return out, nil
}
