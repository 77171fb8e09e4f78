package catalog

import "fmt"

// PlayerNotFoundError reports a lookup that matched no catalog entry
type PlayerNotFoundError struct {
	Name string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %q not found", e.Name)
}

// DuplicateKeyError reports an explicit add for a name already in the catalog
type DuplicateKeyError struct {
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("player %q already exists (use setrank or tag to update)", e.Name)
}

// InvalidRankError reports a rank value that is not a positive integer
type InvalidRankError struct {
	Source Source
	Value  int
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("invalid %s rank %d: must be a positive integer", e.Source, e.Value)
}
