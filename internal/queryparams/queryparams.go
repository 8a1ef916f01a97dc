// Package queryparams parses the optional query-string filters into
// store-level predicates. Ownership is never decided here: repositories
// AND the owner condition in unconditionally, whatever these parsers
// produce.
package queryparams

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadParam = errors.New("malformed query parameter")

// StateIDs parses the court-district "state" parameter. A present value
// is a single integer id, always returned as a one-element membership
// set, never a bare equality value. Absent means no restriction.
func StateIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: state=%q", ErrBadParam, raw)
	}
	return []int64{id}, nil
}

// IDList parses a comma-separated list of integer ids ("tags",
// "ingredients"). A malformed entry is an error, not a silent empty
// result.
func IDList(name, raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrBadParam, name, raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AssignedOnly parses the "assigned_only" flag: absent or 0 is false,
// any other parseable integer is true.
func AssignedOnly(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, fmt.Errorf("%w: assigned_only=%q", ErrBadParam, raw)
	}
	return n != 0, nil
}
