package study

import (
	"time"

	"github.com/ashwinkumar/biotutor/internal/tutor"
)

// classifiedMsg is sent when the tutor has judged whether the entered
// topic is a biotech subject.
type classifiedMsg struct {
	Topic string
	Valid bool
	Err   error
}

// explanationMsg is sent when the topic explanation has been generated.
type explanationMsg struct {
	Topic string
	Text  string
	Err   error
}

// followupMsg is sent when a follow-up question has been answered.
type followupMsg struct {
	Question string
	Answer   string
	Err      error
}

// resourcesMsg is sent when study resources have been generated.
type resourcesMsg struct {
	Resources []tutor.Resource
	Err       error
}

// nextTopicsMsg is sent when related-topic suggestions have been generated.
type nextTopicsMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
