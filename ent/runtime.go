// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ashwinkumar/biotutor/ent/llmrequestevent"
	"github.com/ashwinkumar/biotutor/ent/quizevent"
	"github.com/ashwinkumar/biotutor/ent/schema"
	"github.com/ashwinkumar/biotutor/ent/sessionevent"
	"github.com/ashwinkumar/biotutor/ent/topicevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[0].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[1].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescTopic is the schema descriptor for topic field.
	quizeventDescTopic := quizeventFields[2].Descriptor()
	// quizevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizevent.TopicValidator = quizeventDescTopic.Validators[0].(func(string) error)
	// quizeventDescKind is the schema descriptor for kind field.
	quizeventDescKind := quizeventFields[3].Descriptor()
	// quizevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	quizevent.KindValidator = quizeventDescKind.Validators[0].(func(string) error)
	// quizeventDescDifficulty is the schema descriptor for difficulty field.
	quizeventDescDifficulty := quizeventFields[4].Descriptor()
	// quizevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizevent.DifficultyValidator = quizeventDescDifficulty.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescSessionName is the schema descriptor for session_name field.
	sessioneventDescSessionName := sessioneventFields[1].Descriptor()
	// sessionevent.SessionNameValidator is a validator for the "session_name" field. It is called by the builders before save.
	sessionevent.SessionNameValidator = sessioneventDescSessionName.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDetail is the schema descriptor for detail field.
	sessioneventDescDetail := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDetail holds the default value on creation for the detail field.
	sessionevent.DefaultDetail = sessioneventDescDetail.Default.(string)
	topiceventMixin := schema.TopicEvent{}.Mixin()
	topiceventMixinFields0 := topiceventMixin[0].Fields()
	_ = topiceventMixinFields0
	topiceventFields := schema.TopicEvent{}.Fields()
	_ = topiceventFields
	// topiceventDescTimestamp is the schema descriptor for timestamp field.
	topiceventDescTimestamp := topiceventMixinFields0[1].Descriptor()
	// topicevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	topicevent.DefaultTimestamp = topiceventDescTimestamp.Default.(func() time.Time)
	// topiceventDescSessionID is the schema descriptor for session_id field.
	topiceventDescSessionID := topiceventFields[0].Descriptor()
	// topicevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	topicevent.SessionIDValidator = topiceventDescSessionID.Validators[0].(func(string) error)
	// topiceventDescTopic is the schema descriptor for topic field.
	topiceventDescTopic := topiceventFields[1].Descriptor()
	// topicevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topicevent.TopicValidator = topiceventDescTopic.Validators[0].(func(string) error)
}
