package builder

import (
	"fmt"
	"slices"
)

// validate checks def and its subtree.
//
// path holds the names from the root to def's parent. onPath tracks the
// definitions currently being visited so that a definition nested inside
// itself is reported as a cycle instead of recursing forever.
func validate(def *Definition, path []string, onPath map[*Definition]bool) error {
	here := append(slices.Clone(path), def.Name)

	if onPath[def] {
		return &DefinitionError{
			Code:    ErrCodeCycle,
			Message: fmt.Sprintf("definition %q is nested inside itself", def.Name),
			Path:    here,
		}
	}
	if def.Name == "" {
		return &DefinitionError{
			Code:    ErrCodeEmptyName,
			Message: "context name is required",
			Path:    here,
		}
	}

	onPath[def] = true
	defer delete(onPath, def)

	for i, ex := range def.Examples {
		if ex == nil {
			return &DefinitionError{
				Code:    ErrCodeNilExample,
				Message: fmt.Sprintf("examples[%d] is nil", i),
				Path:    here,
			}
		}
		if ex.Description == "" {
			return &DefinitionError{
				Code:    ErrCodeEmptyDescription,
				Message: fmt.Sprintf("examples[%d]: description is required", i),
				Path:    here,
			}
		}
	}

	for i, child := range def.Contexts {
		if child == nil {
			return &DefinitionError{
				Code:    ErrCodeNilDefinition,
				Message: fmt.Sprintf("contexts[%d] is nil", i),
				Path:    here,
			}
		}
		if err := validate(child, here, onPath); err != nil {
			return err
		}
	}
	return nil
}

func rootLabel(i int) string {
	return fmt.Sprintf("roots[%d]", i)
}
