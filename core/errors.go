package core

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a capsule could not produce a document.
type FailureKind string

const (
	FailureParse       FailureKind = "parse"
	FailureTreeSitter  FailureKind = "tree_sitter"
	FailureQuery       FailureKind = "query"
	FailureInvalidAST  FailureKind = "invalid_ast"
	FailureUTF8        FailureKind = "utf8"
	FailureJSON        FailureKind = "json"
	FailureUnsupported FailureKind = "unsupported"
	FailureTooLarge    FailureKind = "too_large"
	FailureUnknown     FailureKind = "unknown"
)

// UnknownLanguageError reports a lookup for a language id that no capsule
// was registered under.
type UnknownLanguageError struct {
	ID LanguageID
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q", e.ID)
}

// NoMatchingCapsuleError reports that hint, extension, and fallback chain all
// failed to resolve a capsule for a descriptor.
type NoMatchingCapsuleError struct {
	Path string
}

func (e *NoMatchingCapsuleError) Error() string {
	return fmt.Sprintf("no matching capsule for %s", e.Path)
}

// FileTooLargeError is raised before any content is read.
type FileTooLargeError struct {
	Path string
	Size int64
	Max  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s is %d bytes (max %d)", e.Path, e.Size, e.Max)
}

// IOError wraps a filesystem failure with the path it occurred on.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error on %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CapsuleError is a failure inside a language capsule. Capsule errors
// propagate to the caller verbatim and are never retried.
type CapsuleError struct {
	Language LanguageID
	Kind     FailureKind
	Message  string
}

func (e *CapsuleError) Error() string {
	return fmt.Sprintf("%s capsule failed (%s): %s", e.Language, e.Kind, e.Message)
}

// InternalError reports a broken invariant inside this package family.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}

// IsFileTooLarge reports whether err is a FileTooLargeError anywhere in its
// chain.
func IsFileTooLarge(err error) bool {
	var target *FileTooLargeError
	return errors.As(err, &target)
}

// IsNoMatchingCapsule reports whether err is a NoMatchingCapsuleError
// anywhere in its chain.
func IsNoMatchingCapsule(err error) bool {
	var target *NoMatchingCapsuleError
	return errors.As(err, &target)
}
