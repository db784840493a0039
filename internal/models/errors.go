package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrMonthFileCorrupt = errors.New("the persisted data for this month could not be parsed")
	ErrSettingsCorrupt  = errors.New("the settings file could not be parsed")
)
