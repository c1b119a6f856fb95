package models

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Instructor  string   `json:"instructor"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"` // Beginner, Intermediate, Advanced
	Modules     []Module `json:"modules"`
	Quizzes     []Quiz   `json:"quizzes"`
	Labs        []Lab    `json:"labs"`
}

type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Lesson struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type Lab struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
