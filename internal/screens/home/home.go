package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ashwinkumar/biotutor/internal/analytics"
	"github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
	analyticsscreen "github.com/ashwinkumar/biotutor/internal/screens/analytics"
	"github.com/ashwinkumar/biotutor/internal/screens/library"
	quizscreen "github.com/ashwinkumar/biotutor/internal/screens/quiz"
	"github.com/ashwinkumar/biotutor/internal/screens/sessions"
	"github.com/ashwinkumar/biotutor/internal/screens/study"
	"github.com/ashwinkumar/biotutor/internal/store"
	"github.com/ashwinkumar/biotutor/internal/topics"
	"github.com/ashwinkumar/biotutor/internal/tutor"
	"github.com/ashwinkumar/biotutor/internal/ui/components"
)

// HomeScreen is the main menu of the application. It reads the current
// session's counters live, so returning from a child screen always
// shows fresh numbers.
type HomeScreen struct {
	registry   *registry.Registry
	tutorSvc   *tutor.Service
	generator  quiz.Generator
	tracker    *topics.Tracker
	events     store.EventRepo
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. tutorSvc and generator may be nil when
// no LLM API key is configured; the menu items that need them are
// disabled and a hint banner is shown.
func New(reg *registry.Registry, tutorSvc *tutor.Service, generator quiz.Generator, tracker *topics.Tracker, events store.EventRepo) *HomeScreen {
	menuLabels := []string{"STUDY TOPIC", "DOCUMENT LIBRARY", "TAKE QUIZ", "ANALYTICS", "SESSIONS", "EXIT"}

	disabled := map[int]bool{
		0: tutorSvc == nil,
		1: tutorSvc == nil,
		2: generator == nil,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: disabled[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(reg, tutorSvc, tracker)}
			}
		}},
		{Label: menuLabels[1], Disabled: disabled[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(reg, tutorSvc)}
			}
		}},
		{Label: menuLabels[2], Disabled: disabled[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(reg, generator, events)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analyticsscreen.New(reg, tutorSvc)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessions.New(reg)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		registry:   reg,
		tutorSvc:   tutorSvc,
		generator:  generator,
		tracker:    tracker,
		events:     events,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	current := h.registry.Current()

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(current), cw))
	}

	sections = append(sections, renderStatsBar(
		current.Name, len(current.Topics), len(current.QuizHistory), cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.tutorSvc == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotVariant picks the flask mood from the session's quiz history:
// celebrating after a good-tier quiz, alert when the session average
// sits in the poor tier.
func (h *HomeScreen) mascotVariant(s *registry.Session) MascotVariant {
	if len(s.QuizHistory) == 0 {
		return MascotIdle
	}
	last := s.QuizHistory[len(s.QuizHistory)-1]
	if analytics.TierFor(last.Percent()) == analytics.TierGood {
		return MascotCelebrating
	}
	summary := analytics.Summarize(s.QuizHistory)
	if summary.Available && analytics.TierFor(summary.Average) == analytics.TierPoor {
		return MascotAlert
	}
	return MascotIdle
}
