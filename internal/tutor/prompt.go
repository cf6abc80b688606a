package tutor

import (
	"fmt"
	"strings"

	"github.com/ashwinkumar/biotutor/internal/analytics"
	"github.com/ashwinkumar/biotutor/internal/document"
	"github.com/ashwinkumar/biotutor/internal/registry"
)

const tutorSystem = `You are a biotechnology tutor for an undergraduate-level student. Be accurate, concise, and encouraging. Use plain text, no markdown tables.`

const classifySystem = `You are a strict classifier. Answer with exactly one word: "yes" or "no".`

const containsSystem = `You are a strict document checker. Answer with exactly one word: "yes" if the document text contains enough information to answer the question, "no" otherwise.`

const pageRefsSystem = `You are a strict extractor. Answer with only the comma-separated page numbers, or "none".`

func classifyPrompt(topic string) string {
	return fmt.Sprintf("Is %q a topic related to biotechnology, molecular biology, genetics, or the life sciences?", topic)
}

func explainPrompt(topic string) string {
	return fmt.Sprintf(`Explain the biotechnology topic %q for a student encountering it in coursework.

Cover: what it is, how it works, why it matters, and one or two real applications. Keep it under 400 words.`, topic)
}

func containsPrompt(docText, question string) string {
	return fmt.Sprintf("Document:\n%s\n\nQuestion: %s", docText, question)
}

func docAnswerPrompt(docText, question string) string {
	return fmt.Sprintf(`Answer the question using only the document below. Quote or paraphrase the relevant passages.

Document:
%s

Question: %s`, docText, question)
}

func generalAnswerPrompt(question string) string {
	return fmt.Sprintf(`The student's document does not cover this, so answer from general biotechnology knowledge. Start your answer by noting that the document does not cover it.

Question: %s`, question)
}

func pageRefsPrompt(doc *document.Document, question string, maxChars int) string {
	var b strings.Builder
	b.WriteString("For each page below, the text is prefixed with its page number. ")
	b.WriteString("List the page numbers most relevant to the question as a comma-separated list (e.g. \"2, 5\"). ")
	b.WriteString("If none are relevant, answer \"none\".\n\n")

	written := 0
	for _, p := range doc.Pages {
		if maxChars > 0 && written+len(p.Text) > maxChars {
			break
		}
		fmt.Fprintf(&b, "[Page %d]\n%s\n\n", p.Number, p.Text)
		written += len(p.Text)
	}
	fmt.Fprintf(&b, "Question: %s", question)
	return b.String()
}

func summaryPrompt(docText string) string {
	return fmt.Sprintf(`Summarize the document below in 5-8 sentences, focusing on its main biotechnology concepts.

Document:
%s`, docText)
}

func askTopicPrompt(topic string, conversation []registry.Exchange, question string, maxExchanges int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student is studying %q and has a follow-up question.\n", topic)

	if len(conversation) > 0 {
		if maxExchanges > 0 && len(conversation) > maxExchanges {
			conversation = conversation[len(conversation)-maxExchanges:]
		}
		b.WriteString("\nRecent conversation:\n")
		for _, ex := range conversation {
			fmt.Fprintf(&b, "Student: %s\nTutor: %s\n", ex.Question, ex.Answer)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s", question)
	return b.String()
}

func resourcesPrompt(topic string) string {
	return fmt.Sprintf("Suggest learning resources for the biotechnology topic %q.", topic)
}

func nextTopicsPrompt(studied []string) string {
	return fmt.Sprintf(`The student has studied these biotechnology topics: %s.

Suggest 3 related topics to study next, one per line, each with a one-sentence reason.`, strings.Join(studied, ", "))
}

func feedbackPrompt(summary analytics.Summary, breakdown []analytics.TopicScore) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Overall: %d quizzes, %d of %d questions correct (%.0f%% average).\n",
		summary.Quizzes, summary.Correct, summary.Questions, summary.Average)

	if len(breakdown) > 0 {
		b.WriteString("\nPer-topic latest scores:\n")
		for _, ts := range breakdown {
			fmt.Fprintf(&b, "- %s: %.0f%% (%s)\n", ts.Topic, ts.Percent, ts.Tier)
		}
	}

	b.WriteString("\nGive the student brief, encouraging feedback: what is going well, what to review, and one concrete next step.")
	return b.String()
}
