package game

import (
	"errors"
	"fmt"
)

// Per-move validation failures. All of them are recoverable: the move is
// rejected with no state change and the actor forfeits its action for the
// tick.
var (
	// ErrOccupiedCell means the target cell already holds another entity.
	ErrOccupiedCell = errors.New("cell is occupied")

	// ErrOutOfBounds means the target cell lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIntoWall means the target cell is wall terrain.
	ErrIntoWall = errors.New("position is a wall")

	// ErrUnknownEntity means no entity with the given id exists.
	ErrUnknownEntity = errors.New("unknown entity id")
)

// MalformedLevelError is a load-time validation failure. It is fatal to the
// level load: no partial level is ever constructed.
type MalformedLevelError struct {
	Code    string
	Message string
}

func (e MalformedLevelError) Error() string {
	return fmt.Sprintf("malformed level [%s] %s", e.Code, e.Message)
}

// Malformed level codes.
const (
	CodeTooSmall           = "TOO_SMALL"
	CodeRaggedRows         = "RAGGED_ROWS"
	CodeOpenBorder         = "OPEN_BORDER"
	CodeNoPlayer           = "NO_PLAYER"
	CodeDuplicatePlayer    = "DUPLICATE_PLAYER"
	CodePlacementCollision = "PLACEMENT_COLLISION"
	CodePlacementOnWall    = "PLACEMENT_ON_WALL"
	CodeUnknownGlyph       = "UNKNOWN_GLYPH"
)

func malformed(code, format string, args ...any) error {
	return MalformedLevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}
