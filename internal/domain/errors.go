package domain

import "fmt"

// NotFoundError reports a member identifier the workspace API could not
// resolve. It is the only error the pipeline surfaces to the HTTP caller.
type NotFoundError struct {
	MemberID string
}

func (e NotFoundError) Error() string {
	if e.MemberID == "" {
		return "member not found"
	}
	return fmt.Sprintf("member %s not found", e.MemberID)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for unresolvable members.
var ErrNotFound = NotFoundError{}
