package dto

import "time"

// QuestionResponseDTO is a bank question as shown inside an exam. The
// correct answer is never serialized here.
type QuestionResponseDTO struct {
	ID         uint     `json:"id"`
	Text       string   `json:"text"`
	Subject    string   `json:"subject"`
	ClassLevel string   `json:"class_level"`
	Difficulty string   `json:"difficulty"`
	Options    []string `json:"options,omitempty"`
}

// ExamResponseDTO is a full exam with its ordered questions.
type ExamResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	ClassLevel  string                `json:"class_level"`
	Duration    int                   `json:"duration"`
	Status      string                `json:"status"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ExamSummaryDTO is used when listing exams.
type ExamSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	ClassLevel    string    `json:"class_level"`
	Duration      int       `json:"duration"`
	Status        string    `json:"status"`
	QuestionCount int       `json:"question_count"`
	ResultCount   int       `json:"result_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitResultDTO is returned right after scoring a submission.
type SubmitResultDTO struct {
	Score      int      `json:"score"`
	WeakTopics []string `json:"weak_topics"`
}

// ResultResponseDTO is a stored result as listed per exam.
type ResultResponseDTO struct {
	ID           uint      `json:"id"`
	ExamID       uint      `json:"exam_id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	WeakTopics   []string  `json:"weak_topics"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalysisDTO combines the stored result, the exam's difficulty
// distribution and the generated commentary. It is derived per request and
// never persisted.
type AnalysisDTO struct {
	Score        int      `json:"score"`
	CorrectCount int      `json:"correct_count"`
	WrongCount   int      `json:"wrong_count"`
	BlankCount   int      `json:"blank_count"`
	EasyCount    int      `json:"easy_count"`
	MediumCount  int      `json:"medium_count"`
	HardCount    int      `json:"hard_count"`
	WeakTopics   []string `json:"weak_topics"`
	AIFeedback   string   `json:"ai_feedback"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
