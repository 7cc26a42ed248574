package experience

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/eduforge/eduforge/internal/pipeline"
	"github.com/eduforge/eduforge/internal/quiz"
	"github.com/eduforge/eduforge/internal/ui/components"
	"github.com/eduforge/eduforge/internal/ui/theme"
)

func (s *ExperienceScreen) View(width, height int) string {
	switch s.ctl.Stage() {
	case pipeline.StageIdle:
		return s.renderContentError(width, height)
	case pipeline.StageContentPending:
		return s.renderGenerating(width, height)
	}

	body := ""
	switch s.tabs.Active {
	case tabObjectives:
		body = s.renderObjectives(width)
	case tabQuiz:
		body = s.renderQuiz(width)
	case tabFlashcards:
		body = s.renderFlashcards(width)
	case tabVideo:
		body = s.renderVideoTab(width)
	}

	content := s.tabs.View() + "\n\n" + body
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(content)
}

func (s *ExperienceScreen) renderGenerating(width, height int) string {
	msg := theme.Title.Render("Building your learning experience...") + "\n\n" +
		theme.Subtitle.Render(fmt.Sprintf("Topic: %s (%s, %s)",
			s.ctl.Request().Topic, s.ctl.Request().LearnerLevel, s.ctl.Request().Style))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (s *ExperienceScreen) renderContentError(width, height int) string {
	msg := theme.Incorrect.Render("Generation failed") + "\n\n" +
		theme.Body.Render(s.contentErr) + "\n\n" +
		theme.Hint.Render("Press Esc to go back and try again.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (s *ExperienceScreen) renderObjectives(width int) string {
	ct := s.ctl.Content()
	if ct == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Learning Objectives") + "\n\n")
	for i, obj := range ct.LearningObjectives {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, obj)) + "\n")
	}
	return b.String()
}

func (s *ExperienceScreen) renderQuiz(width int) string {
	ct := s.ctl.Content()
	if ct == nil || len(s.questions) == 0 {
		return theme.Hint.Render("No quiz for this topic.")
	}

	if s.score != nil {
		return s.renderScore(*s.score)
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d  •  %d answered",
		s.qIndex+1, len(s.questions), s.answers.Count())) + "\n\n")
	b.WriteString(s.questions[s.qIndex].View())

	ids := make([]string, len(ct.Quiz))
	for i, q := range ct.Quiz {
		ids[i] = q.ID
	}
	if s.answers.Complete(ids) && !s.answers.Locked() {
		b.WriteString("\n" + theme.Notice.Render("All answered. Press S to submit."))
	}
	return b.String()
}

func (s *ExperienceScreen) renderScore(sc quiz.Score) string {
	var b strings.Builder

	verdict := theme.Correct.Render("Passed!")
	if !sc.Passed() {
		verdict = theme.Incorrect.Render("Not quite.")
	}

	b.WriteString(theme.Title.Render("Quiz Results") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d%%  (%d/%d correct)", sc.Percentage, sc.Correct, sc.Total)) + "\n")
	b.WriteString(verdict + "\n")
	if sc.RetakeOffered() {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("You need %d%% to pass. Press R to retake.", quiz.PassThreshold)))
	}
	return theme.Card.Render(b.String())
}

func (s *ExperienceScreen) renderFlashcards(width int) string {
	ct := s.ctl.Content()
	if ct == nil || len(ct.Flashcards) == 0 {
		return theme.Hint.Render("No flashcards for this topic.")
	}

	card := ct.Flashcards[s.cardIndex]
	revealed := s.cards.Revealed(card.ID)

	side := "Front"
	text := card.Front
	if revealed {
		side = "Back"
		text = card.Back
	}

	cardWidth := width - 12
	if cardWidth > 60 {
		cardWidth = 60
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	face := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(
		theme.Subtitle.Render(side) + "\n\n" + theme.Body.Render(text))

	counter := theme.Subtitle.Render(fmt.Sprintf("Card %d of %d  •  %d flipped",
		s.cardIndex+1, len(ct.Flashcards), s.cards.Count()))

	return counter + "\n\n" + face
}

func (s *ExperienceScreen) renderVideoTab(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Explainer Video") + "\n\n")

	switch {
	case s.ctl.Stage() == pipeline.StageVideoPending:
		bar := components.NewProgressBar("Rendering", float64(s.ctl.VideoProgress())/100, true, width-8)
		b.WriteString(bar.View() + "\n\n")
		b.WriteString(theme.Hint.Render("The rest of the experience is already available — switch tabs while you wait."))

	case s.ctl.Asset() != nil:
		a := s.ctl.Asset()
		b.WriteString(theme.Correct.Render("Video ready") + "\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Saved to: %s", a.Path())) + "\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%.1f MB", float64(a.Size())/(1024*1024))) + "\n")

	case s.videoErr != "":
		b.WriteString(theme.Incorrect.Render("Video unavailable") + "\n\n")
		b.WriteString(theme.Body.Render(s.videoErr) + "\n")

	default:
		b.WriteString(theme.Hint.Render("No video for this topic."))
	}

	if ct := s.ctl.Content(); ct != nil && ct.VideoScript != "" {
		b.WriteString("\n\n" + theme.Subtitle.Render("Script") + "\n")
		b.WriteString(theme.Body.Render(wrap(ct.VideoScript, width-8)))
	}

	return b.String()
}

// wrap is a cheap word wrapper for the script text.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	var b strings.Builder
	line := 0
	for _, w := range words {
		if line+len(w)+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
