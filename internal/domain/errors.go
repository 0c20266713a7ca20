package domain

import "errors"

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDocumentExists    = errors.New("document already exists")
	ErrDocumentClaimed   = errors.New("document already claimed by another worker")
	ErrClaimFailed       = errors.New("failed to claim document")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoText            = errors.New("no text extracted from document")
	ErrNoBenefits        = errors.New("no benefits found in document")
)
