package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"technews/internal/markup"
)

// User-facing validation messages, in the order they are reported.
const (
	msgUsernameRequired  = "You must provide a username."
	msgUsernameTooShort  = "Username must be at least 3 characters."
	msgUsernameTooLong   = "Username can't exceed 10 characters."
	msgUsernameCharset   = "Username can only contain letters and numbers."
	MsgUsernameTaken     = "username already taken."
	msgPasswordRequired  = "You must provide a password."
	msgPasswordTooShort  = "Password must be at least 7 characters."
	msgPasswordTooLong   = "Password can't exceed 17 characters."
	msgTitleRequired     = "You must provide a title."
	msgContentRequired   = "You must provide a content."
	MsgInvalidCredential = "Invalid username/password"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 10
	passwordMinLen = 7
	passwordMaxLen = 17
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidationError carries every failed rule of a submission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// usernameRules checks an already trimmed username, excluding uniqueness.
func usernameRules(username string) []string {
	if username == "" {
		return []string{msgUsernameRequired}
	}
	var msgs []string
	n := utf8.RuneCountInString(username)
	if n < usernameMinLen {
		msgs = append(msgs, msgUsernameTooShort)
	}
	if n > usernameMaxLen {
		msgs = append(msgs, msgUsernameTooLong)
	}
	if !usernamePattern.MatchString(username) {
		msgs = append(msgs, msgUsernameCharset)
	}
	return msgs
}

// passwordRules checks the raw, untrimmed password.
func passwordRules(password string) []string {
	if password == "" {
		return []string{msgPasswordRequired}
	}
	var msgs []string
	n := utf8.RuneCountInString(password)
	if n < passwordMinLen {
		msgs = append(msgs, msgPasswordTooShort)
	}
	if n > passwordMaxLen {
		msgs = append(msgs, msgPasswordTooLong)
	}
	return msgs
}

// PostInput is the editable part of a post as submitted by a user.
type PostInput struct {
	Title   string
	Content string
}

// normalizePostInput strips all markup from both fields and reports the
// fields left empty.
func normalizePostInput(in PostInput) (PostInput, []string) {
	out := PostInput{
		Title:   strings.TrimSpace(markup.StripAllTags(strings.TrimSpace(in.Title))),
		Content: strings.TrimSpace(markup.StripAllTags(strings.TrimSpace(in.Content))),
	}
	var msgs []string
	if out.Title == "" {
		msgs = append(msgs, msgTitleRequired)
	}
	if out.Content == "" {
		msgs = append(msgs, msgContentRequired)
	}
	return out, msgs
}
