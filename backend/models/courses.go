package models

// Course status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusLocked    = "locked"
)

// Lesson content types.
const (
	LessonVideo   = "video"
	LessonQuiz    = "quiz"
	LessonReading = "reading"
)

// Resource types.
const (
	ResourcePDF  = "pdf"
	ResourceLink = "link"
	ResourceCode = "code"
)

type Course struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail"`
	Instructor    string `json:"instructor"`
	EstimatedTime string `json:"estimatedTime"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	// Progress is the stored percentage for courses without modules. When
	// modules are present the progress package derives the value from
	// lesson completion instead.
	Progress   int        `json:"progress"`
	Bookmarked bool       `json:"bookmarked"`
	Overview   string     `json:"overview,omitempty"`
	Modules    []Module   `json:"modules,omitempty"`
	Resources  []Resource `json:"resources,omitempty"`
}

type Module struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Duration  string   `json:"duration"`
	Completed bool     `json:"completed"`
	Lessons   []Lesson `json:"lessons"`
}

type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
}

type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}
