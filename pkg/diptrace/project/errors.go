package project

import (
	"errors"
	"fmt"
)

var (
	ErrReferenceAlreadyExists = errors.New("reference already exists")
	ErrNetNameAlreadyExists   = errors.New("net name already exists")
)

// ReferenceExistsError is returned when a component reference is taken in
// either document.
type ReferenceExistsError struct {
	Name string
}

func (e *ReferenceExistsError) Error() string {
	return fmt.Sprintf("reference %q is already in use", e.Name)
}

func (e *ReferenceExistsError) Is(target error) bool { return target == ErrReferenceAlreadyExists }

// NetNameExistsError is returned when a net name is taken in either document.
type NetNameExistsError struct {
	Name string
}

func (e *NetNameExistsError) Error() string {
	return fmt.Sprintf("net name %q is already in use", e.Name)
}

func (e *NetNameExistsError) Is(target error) bool { return target == ErrNetNameAlreadyExists }
