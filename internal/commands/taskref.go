package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"caseshop/internal/service"
)

// TaskRef is a parsed task reference: a 1-based position in the dashboard
// list or a literal task id.
type TaskRef struct {
	Num int    // 0 if ID is set
	ID  string // "" if Num is set
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a single task reference from args.
//
// An all-digit argument is a position; anything else is taken as an id.
// Extra arguments are an error.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 || args[0] == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := args[0]
	if !isAllDigits(arg) {
		return TaskRef{ID: arg}, nil
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	if num < 1 {
		return TaskRef{}, fmt.Errorf("task number out of range: %d", num)
	}
	return TaskRef{Num: num}, nil
}

// Resolve finds the referenced task in list, the order the tasks command
// prints.
func (r TaskRef) Resolve(list []service.Task) (service.Task, error) {
	if r.ID != "" {
		for _, t := range list {
			if t.ID == r.ID {
				return t, nil
			}
		}
		return service.Task{}, fmt.Errorf("task not found: %s", r.ID)
	}
	if r.Num < 1 || r.Num > len(list) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", r.Num)
	}
	return list[r.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
