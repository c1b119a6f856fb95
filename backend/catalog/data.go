package catalog

import "mlacademy/backend/models"

// Default returns the built-in catalog, used when no catalog file is
// configured.
func Default() *Catalog {
	return &Catalog{Courses: []models.Course{
		{
			ID:          "ml-basics",
			Title:       "Machine Learning Basics",
			Description: "Learn the fundamentals of machine learning, including supervised and unsupervised learning, model evaluation, and practical applications.",
			Instructor:  "Dr. Sarah Johnson",
			Duration:    "8 weeks",
			Level:       "Beginner",
			Modules: []models.Module{
				{
					ID:    "module-1",
					Title: "Introduction to Machine Learning",
					Lessons: []models.Lesson{
						{ID: "lesson-1-1", Title: "What is Machine Learning?"},
						{ID: "lesson-1-2", Title: "The Machine Learning Workflow"},
					},
				},
				{
					ID:    "module-2",
					Title: "Supervised Learning",
					Lessons: []models.Lesson{
						{ID: "lesson-2-1", Title: "Linear Regression"},
						{ID: "lesson-2-2", Title: "Classification Algorithms"},
					},
				},
			},
			Quizzes: []models.Quiz{
				{
					ID:    "quiz-1",
					Title: "ML Basics Quiz",
					Questions: []models.Question{
						{
							ID:       "q1",
							Question: "What is the main difference between supervised and unsupervised learning?",
							Options: []string{
								"Supervised learning uses labeled data, unsupervised uses unlabeled data",
								"Supervised learning is faster than unsupervised learning",
								"Unsupervised learning always produces better results",
								"There is no difference between them",
							},
							CorrectAnswer: 0,
						},
						{
							ID:       "q2",
							Question: "Which of the following is an example of classification?",
							Options: []string{
								"Predicting house prices",
								"Grouping customers by behavior",
								"Identifying spam emails",
								"Reducing image dimensions",
							},
							CorrectAnswer: 2,
						},
						{
							ID:            "q3",
							Question:      "Machine learning models improve automatically with more data.",
							Options:       []string{"True", "False"},
							CorrectAnswer: 0,
						},
					},
				},
			},
			Labs: []models.Lab{
				{
					ID:          "lab-1",
					Title:       "Your First ML Model",
					Description: "Build a simple linear regression model to predict house prices.",
				},
			},
		},
		{
			ID:          "deep-learning",
			Title:       "Deep Learning Fundamentals",
			Description: "Dive deep into neural networks, convolutional neural networks, and recurrent neural networks for advanced AI applications.",
			Instructor:  "Prof. Michael Chen",
			Duration:    "10 weeks",
			Level:       "Intermediate",
			Modules: []models.Module{
				{
					ID:    "module-1",
					Title: "Neural Networks Basics",
					Lessons: []models.Lesson{
						{ID: "lesson-1-1", Title: "Introduction to Neural Networks"},
						{ID: "lesson-1-2", Title: "Backpropagation"},
					},
				},
			},
			Quizzes: []models.Quiz{
				{
					ID:    "quiz-1",
					Title: "Neural Networks Quiz",
					Questions: []models.Question{
						{
							ID:       "q1",
							Question: "What is the purpose of activation functions in neural networks?",
							Options: []string{
								"To increase computation speed",
								"To introduce non-linearity",
								"To reduce memory usage",
								"To simplify the network",
							},
							CorrectAnswer: 1,
						},
					},
				},
			},
			Labs: []models.Lab{
				{
					ID:          "lab-1",
					Title:       "Building Your First Neural Network",
					Description: "Create a simple neural network using TensorFlow/Keras.",
				},
			},
		},
		{
			ID:          "nlp",
			Title:       "Natural Language Processing",
			Description: "Master text processing, sentiment analysis, language models, and transformer architectures.",
			Instructor:  "Dr. Emily Rodriguez",
			Duration:    "12 weeks",
			Level:       "Advanced",
			Modules: []models.Module{
				{
					ID:    "module-1",
					Title: "Text Preprocessing",
					Lessons: []models.Lesson{
						{ID: "lesson-1-1", Title: "Tokenization and Text Cleaning"},
					},
				},
			},
			Quizzes: []models.Quiz{
				{
					ID:    "quiz-1",
					Title: "NLP Basics Quiz",
					Questions: []models.Question{
						{
							ID:       "q1",
							Question: "What is tokenization?",
							Options: []string{
								"Converting text to numbers",
								"Breaking text into smaller units",
								"Removing punctuation",
								"Translating text",
							},
							CorrectAnswer: 1,
						},
					},
				},
			},
			Labs: []models.Lab{
				{
					ID:          "lab-1",
					Title:       "Sentiment Analysis Project",
					Description: "Build a sentiment analysis model to classify text as positive or negative.",
				},
			},
		},
	}}
}
