// Package errors provides sentinel errors and error types for the move generator.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a board that cannot be set up or played from.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoHistory indicates an undo with no committed move to take back.
	ErrNoHistory = errors.New("no move to undo")

	// ErrPerftMismatch indicates a node count that disagrees with the
	// reference generator.
	ErrPerftMismatch = errors.New("perft count mismatch")

	// The errors below describe programming errors. They are raised as
	// panics carrying an *InvariantError, never returned.

	// ErrRollbackWithoutApply indicates a rollback of a move that is not applied.
	ErrRollbackWithoutApply = errors.New("rollback without matching apply")

	// ErrMoveAlreadyApplied indicates a second apply without a rollback in between.
	ErrMoveAlreadyApplied = errors.New("move already applied")

	// ErrEmptySquare indicates a piece was expected on a square that is empty.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrOffBoard indicates a write to a hedge square.
	ErrOffBoard = errors.New("square is off the board")

	// ErrCastlingUnderflow indicates more castling restores than forfeits.
	ErrCastlingUnderflow = errors.New("castling right restored more often than forfeited")
)

// PositionError wraps errors found while building a position, with the
// rank and file where the problem was seen.
type PositionError struct {
	Err    error  // The underlying error
	Rank   int    // Zero-based rank (-1 if not applicable)
	File   int    // Zero-based file
	Detail string // Human-readable description
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Rank >= 0 {
		parts = append(parts, fmt.Sprintf("%c%c", 'a'+e.File, '1'+e.Rank))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// InvariantError is the panic value for broken move-generation contracts,
// such as rolling back a move twice.
type InvariantError struct {
	Err    error  // The underlying error
	Op     string // The operation that detected the problem
	Square int    // Board index involved (0 if not applicable)
}

// Error returns a formatted error message.
func (e *InvariantError) Error() string {
	msg := "invariant violated"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Square != 0 {
		msg += fmt.Sprintf(" at index %d", e.Square)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
