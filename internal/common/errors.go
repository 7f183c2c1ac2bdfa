package common

import (
	"errors"
	"fmt"
)

// Expected, recoverable-by-caller outcomes. Handlers map these to specific
// user-facing responses; everything else is a generic failure.
var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrGroupInactive      = errors.New("group is not active")
	ErrMediaNotFound      = errors.New("media not found")
	ErrMemberNotFound     = errors.New("membership not found")
	ErrAlreadyMember      = errors.New("user is already a member of this group")
	ErrGroupFull          = errors.New("group has reached its member limit")
	ErrUnauthorized       = errors.New("caller lacks the required role")
	ErrLastAdmin          = errors.New("group would be left without an admin")
	ErrCodeSpaceExhausted = errors.New("join code allocation attempts exhausted")
	ErrGroupStillActive   = errors.New("group must be deactivated before purge")
)

// PartialCreateError reports a group row that was committed before the
// creator's admin membership could be inserted. The caller owns the
// compensating cleanup of the orphaned group.
type PartialCreateError struct {
	GroupID int64
	Err     error
}

func (e *PartialCreateError) Error() string {
	return fmt.Sprintf("group %d created but admin membership failed: %v", e.GroupID, e.Err)
}

func (e *PartialCreateError) Unwrap() error { return e.Err }

// PartialUploadError reports blobs that were stored before the catalog row
// could be inserted. Orphaned blobs are invisible to readers but the failure
// must still reach the caller.
type PartialUploadError struct {
	StoragePath   string
	ThumbnailPath string
	Err           error
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("blob %s stored but catalog insert failed: %v", e.StoragePath, e.Err)
}

func (e *PartialUploadError) Unwrap() error { return e.Err }

// UpstreamError wraps a store or gateway failure. The core never retries
// these; bounded retries belong in the store clients.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Op: op, Err: err}
}
