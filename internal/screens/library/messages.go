package library

import (
	"time"

	"github.com/ashwinkumar/biotutor/internal/document"
	"github.com/ashwinkumar/biotutor/internal/tutor"
)

// documentLoadedMsg is sent when a PDF has been extracted and summarized.
type documentLoadedMsg struct {
	Doc     *document.Document
	Summary string
	Err     error
}

// answerMsg is sent when the tutor has answered a document question.
type answerMsg struct {
	Question string
	Answer   *tutor.DocAnswer
	Err      error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
