package common

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MaxGroupNameLength   = 60
	MaxDisplayNameLength = 60
	MaxCaptionLength     = 280
)

var joinCodeRegex = regexp.MustCompile(`^[0-9]{4}$`)

func ValidateGroupName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("group name is required")
	}
	if len(name) > MaxGroupNameLength {
		return errors.New("group name is too long")
	}
	return nil
}

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("display name is required")
	}
	if len(name) > MaxDisplayNameLength {
		return errors.New("display name is too long")
	}
	return nil
}

func ValidateCaption(caption string) error {
	if len(caption) > MaxCaptionLength {
		return errors.New("caption is too long")
	}
	return nil
}

func ValidateJoinCode(code string) error {
	if !joinCodeRegex.MatchString(code) {
		return errors.New("join code must be 4 digits")
	}
	return nil
}
