package tui

type state int

const (
	loadingState state = iota
	errorState
	galleryState
	tagsState
	detailState
)
