package api

// CreateSlideshowRequest represents the request body for generating a slideshow
type CreateSlideshowRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=300"`
}

// SlideResponse represents one slide in a generated slideshow
type SlideResponse struct {
	Text          string `json:"text"`
	Index         int    `json:"index"`
	RevealAfterMS int64  `json:"reveal_after_ms"`
}

// ResourceResponse represents one further-reading entry
type ResourceResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// SlideshowResponse represents the response data for a generated slideshow.
// Resources are included only when the follow-up call finished within the
// request window. Notice is set when generation legitimately produced
// nothing.
type SlideshowResponse struct {
	Topic     string             `json:"topic"`
	Slides    []SlideResponse    `json:"slides"`
	Resources []ResourceResponse `json:"resources,omitempty"`
	Notice    string             `json:"notice,omitempty"`
}

// CreateQuizRequest represents the request body for starting a quiz.
// Topic is a shorthand for category; empty fields fall back to the default
// category and grade band.
type CreateQuizRequest struct {
	Topic    string `json:"topic" validate:"omitempty,max=300"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Grade    string `json:"grade" validate:"omitempty,max=50"`
}

// QuestionResponse represents the question currently displayed in a quiz
// session. The correct answer is never included.
type QuestionResponse struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizSessionResponse represents the observable state of a quiz session
type QuizSessionResponse struct {
	SessionID string            `json:"session_id"`
	State     string            `json:"state"`
	Score     int               `json:"score"`
	Total     int               `json:"total"`
	Question  *QuestionResponse `json:"question,omitempty"`
}

// SubmitAnswerRequest represents the request body for answering the current
// quiz question. Option is a pointer so index 0 survives required validation.
type SubmitAnswerRequest struct {
	Option *int `json:"option" validate:"required,min=0"`
}

// AnswerResponse represents the locked state after a submission. CorrectIndex
// is omitted when the generated answer matched no option; that question can
// never score. NextQuestion is omitted on the final question, where Completed
// is true and Score is final.
type AnswerResponse struct {
	Correct       bool              `json:"correct"`
	SelectedIndex int               `json:"selected_index"`
	CorrectIndex  *int              `json:"correct_index,omitempty"`
	Score         int               `json:"score"`
	Completed     bool              `json:"completed"`
	NextQuestion  *QuestionResponse `json:"next_question,omitempty"`
}

// CreateFlashcardsRequest represents the request body for generating flashcards
type CreateFlashcardsRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=300"`
}

// FlashcardResponse represents one term/definition card
type FlashcardResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// FlashcardsResponse represents the response data for a generated deck
type FlashcardsResponse struct {
	Topic string              `json:"topic"`
	Cards []FlashcardResponse `json:"cards"`
}
