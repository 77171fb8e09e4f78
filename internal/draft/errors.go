package draft

import "fmt"

// InvalidConfigError reports draft parameters that cannot start a draft
type InvalidConfigError struct {
	Field string
	Value int
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid draft config: %s=%d", e.Field, e.Value)
}

// AlreadyTakenError reports a pick of a player someone already owns
type AlreadyTakenError struct {
	Name     string
	TeamSlot int
	Overall  int
}

func (e *AlreadyTakenError) Error() string {
	return fmt.Sprintf("%s is already taken by team %d (pick #%d)", e.Name, e.TeamSlot, e.Overall)
}

// NoHistoryError reports an undo with nothing to undo
type NoHistoryError struct{}

func (e *NoHistoryError) Error() string {
	return "no picks to undo"
}

// DraftCompleteError reports an operation that needs a pick still on the board
type DraftCompleteError struct{}

func (e *DraftCompleteError) Error() string {
	return "draft is complete"
}
