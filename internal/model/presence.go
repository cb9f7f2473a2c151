package model

const (
	StatusWaiting = "waiting"
	StatusInCall  = "in_call"
	StatusOffline = "offline"
)

const (
	MediaKindAudio = "audio"
	MediaKindVideo = "video"
)
