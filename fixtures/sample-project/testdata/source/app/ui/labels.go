package ui

type Labels string

const (
	TITLE    Labels = "title"
	SUBTITLE Labels = "subtitle"
)
