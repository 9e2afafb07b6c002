package catalog

import "github.com/dsgnbruno/member-area-v2/backend/models"

// Seed returns the sample catalog the portal ships with. Course and
// lesson completion flags here are external ground truth; nothing in
// the app flips them.
func Seed() []models.Course {
	return []models.Course{
		{
			ID:            "1",
			Title:         "Web Development Fundamentals",
			Description:   "Learn the core concepts of web development including HTML, CSS, and JavaScript.",
			Thumbnail:     "https://images.unsplash.com/photo-1547658719-da2b51169166?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Instructor:    "Sarah Johnson",
			EstimatedTime: "12 hours",
			Category:      "Web Development",
			Status:        models.StatusActive,
			Progress:      75,
			Bookmarked:    true,
			Overview:      "This comprehensive course covers all the essential concepts of modern web development. You'll learn how to create responsive websites using HTML5, CSS3, and JavaScript. By the end of this course, you'll be able to build your own web applications from scratch.",
			Modules: []models.Module{
				{
					ID:        "m1",
					Title:     "Introduction to HTML",
					Duration:  "2 hours",
					Completed: true,
					Lessons: []models.Lesson{
						{ID: "l1", Title: "HTML Document Structure", Duration: "15 min", Type: models.LessonVideo, Completed: true},
						{ID: "l2", Title: "Working with Text Elements", Duration: "20 min", Type: models.LessonVideo, Completed: true},
						{ID: "l3", Title: "HTML Forms and Inputs", Duration: "25 min", Type: models.LessonVideo, Completed: true},
						{ID: "l4", Title: "HTML Quiz", Duration: "15 min", Type: models.LessonQuiz, Completed: true},
					},
				},
				{
					ID:        "m2",
					Title:     "CSS Styling",
					Duration:  "3 hours",
					Completed: true,
					Lessons: []models.Lesson{
						{ID: "l5", Title: "CSS Selectors", Duration: "20 min", Type: models.LessonVideo, Completed: true},
						{ID: "l6", Title: "Box Model and Layout", Duration: "25 min", Type: models.LessonVideo, Completed: true},
						{ID: "l7", Title: "Flexbox and Grid", Duration: "30 min", Type: models.LessonVideo, Completed: true},
						{ID: "l8", Title: "Responsive Design", Duration: "25 min", Type: models.LessonVideo, Completed: true},
						{ID: "l9", Title: "CSS Quiz", Duration: "15 min", Type: models.LessonQuiz, Completed: true},
					},
				},
				{
					ID:        "m3",
					Title:     "JavaScript Basics",
					Duration:  "4 hours",
					Completed: false,
					Lessons: []models.Lesson{
						{ID: "l10", Title: "Variables and Data Types", Duration: "20 min", Type: models.LessonVideo, Completed: true},
						{ID: "l11", Title: "Functions and Scope", Duration: "25 min", Type: models.LessonVideo, Completed: true},
						{ID: "l12", Title: "DOM Manipulation", Duration: "30 min", Type: models.LessonVideo, Completed: true},
						{ID: "l13", Title: "Events and Event Handling", Duration: "25 min", Type: models.LessonVideo, Completed: false},
						{ID: "l14", Title: "Asynchronous JavaScript", Duration: "35 min", Type: models.LessonVideo, Completed: false},
						{ID: "l15", Title: "JavaScript Quiz", Duration: "20 min", Type: models.LessonQuiz, Completed: false},
					},
				},
				{
					ID:        "m4",
					Title:     "Building a Project",
					Duration:  "3 hours",
					Completed: false,
					Lessons: []models.Lesson{
						{ID: "l16", Title: "Project Planning", Duration: "15 min", Type: models.LessonReading, Completed: false},
						{ID: "l17", Title: "Setting Up the Project", Duration: "20 min", Type: models.LessonVideo, Completed: false},
						{ID: "l18", Title: "Implementing Features", Duration: "45 min", Type: models.LessonVideo, Completed: false},
						{ID: "l19", Title: "Styling the Project", Duration: "30 min", Type: models.LessonVideo, Completed: false},
						{ID: "l20", Title: "Testing and Deployment", Duration: "25 min", Type: models.LessonVideo, Completed: false},
						{ID: "l21", Title: "Final Project Submission", Duration: "10 min", Type: models.LessonQuiz, Completed: false},
					},
				},
			},
			Resources: []models.Resource{
				{ID: "r1", Title: "HTML Cheat Sheet", Type: models.ResourcePDF, URL: "#"},
				{ID: "r2", Title: "CSS Reference Guide", Type: models.ResourcePDF, URL: "#"},
				{ID: "r3", Title: "JavaScript Documentation", Type: models.ResourceLink, URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
				{ID: "r4", Title: "Project Starter Files", Type: models.ResourceCode, URL: "#"},
			},
		},
		{
			ID:            "2",
			Title:         "React.js for Beginners",
			Description:   "Start your journey with React.js and learn to build modern user interfaces.",
			Thumbnail:     "https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Instructor:    "Michael Chen",
			EstimatedTime: "10 hours",
			Category:      "JavaScript Frameworks",
			Status:        models.StatusActive,
			Progress:      30,
		},
		{
			ID:            "3",
			Title:         "Advanced JavaScript Patterns",
			Description:   "Dive deep into advanced JavaScript concepts and design patterns.",
			Thumbnail:     "https://images.unsplash.com/photo-1627398242454-45a1465c2479?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Instructor:    "David Wilson",
			EstimatedTime: "8 hours",
			Category:      "JavaScript",
			Status:        models.StatusActive,
		},
		{
			ID:            "4",
			Title:         "Mobile App Development with React Native",
			Description:   "Learn to build native mobile apps using React Native framework.",
			Thumbnail:     "https://images.unsplash.com/photo-1526498460520-4c246339dccb?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Instructor:    "Alex Johnson",
			EstimatedTime: "15 hours",
			Category:      "Mobile Development",
			Status:        models.StatusActive,
			Progress:      10,
			Bookmarked:    true,
		},
		{
			ID:            "5",
			Title:         "Node.js Backend Development",
			Description:   "Build scalable backend services with Node.js and Express.",
			Thumbnail:     "https://images.unsplash.com/photo-1627398242454-45a1465c2479?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Instructor:    "Emily Davis",
			EstimatedTime: "12 hours",
			Category:      "Backend Development",
			Status:        models.StatusActive,
		},
		{
			ID:            "6",
			Title:         "Python for Data Science",
			Description:   "Learn Python programming for data analysis and visualization.",
			Thumbnail:     "https://images.unsplash.com/photo-1526379879527-8559ecfcb0c8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Instructor:    "Robert Smith",
			EstimatedTime: "14 hours",
			Category:      "Data Science",
			Status:        models.StatusLocked,
		},
	}
}
