package policy

import (
	"github.com/arthur-debert/xsltview/pkg/paths"
)

// Validator is the part of paths.Resolver the policy needs.
type Validator interface {
	Validate(candidate string, base paths.Location) (paths.ValidatedPath, error)
}

// ResolveEffectiveOutput picks the output path for a run:
//   - Explicit intent uses the user's text verbatim;
//   - otherwise a non-empty document default wins over whatever is shown;
//   - otherwise the result is empty and the engine chooses.
//
// Validation errors are returned unchanged (ErrInvalidPath).
func ResolveEffectiveOutput(v Validator, userOutputText string, intent Intent, documentDefaultOutput string, base paths.Location) (paths.ValidatedPath, error) {
	switch {
	case intent.IsExplicit():
		return v.Validate(userOutputText, base)
	case documentDefaultOutput != "":
		return v.Validate(documentDefaultOutput, base)
	default:
		return paths.ValidatedPath{}, nil
	}
}
