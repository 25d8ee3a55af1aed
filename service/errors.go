package service

import "errors"

// Messages returned to callers. They are part of the public contract of
// POST /api/contact and must not change.
const (
	MsgMissingFields = "Missing required fields."
	MsgNotConfigured = "Email service not configured."
	MsgUnableToSend  = "Unable to send message."
)

var (
	ErrValidation    = errors.New(MsgMissingFields)
	ErrNotConfigured = errors.New(MsgNotConfigured)
	ErrDelivery      = errors.New(MsgUnableToSend)
)
