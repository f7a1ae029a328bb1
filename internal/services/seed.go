package services

import (
	"github.com/lernify-road/roadmap-service/internal/models"
)

// SeedRoadmaps returns the built-in domain roadmaps applied on startup via
// RoadmapService.SeedIfAbsent.
func SeedRoadmaps() map[string][]models.RoadmapStep {
	return map[string][]models.RoadmapStep{
		"frontend": {
			{
				Order:       1,
				Title:       "HTML & CSS Basics",
				Description: "Learn HTML structure and CSS styling.",
				Videos: []string{
					"https://www.youtube.com/watch?v=G3e-cpL7ofc",
					"https://www.youtube.com/watch?v=mU6anWqZJcc",
				},
				Questions: []models.Question{
					{
						Prompt:      "What tag defines a hyperlink?",
						Options:     []string{"<a>", "<link>", "<href>"},
						AnswerIndex: 0,
					},
					{
						Prompt:      "Which property changes text color?",
						Options:     []string{"font", "color", "text"},
						AnswerIndex: 1,
					},
				},
			},
			{
				Order:       2,
				Title:       "JavaScript Fundamentals",
				Description: "Variables, functions, DOM.",
				Videos: []string{
					"https://www.youtube.com/watch?v=PkZNo7MFNFg",
				},
				Questions: []models.Question{
					{
						Prompt:      "Which declares a block-scoped variable?",
						Options:     []string{"var", "let", "function"},
						AnswerIndex: 1,
					},
					{
						Prompt:      "DOM stands for?",
						Options:     []string{"Document Object Model", "Data Object Method", "Display Object Map"},
						AnswerIndex: 0,
					},
				},
			},
			{
				Order:       3,
				Title:       "React Basics",
				Description: "Components, state, props.",
				Videos: []string{
					"https://www.youtube.com/watch?v=bMknfKXIFA8",
				},
				Questions: []models.Question{
					{
						Prompt:      "State is used to?",
						Options:     []string{"Style components", "Manage dynamic data", "Route pages"},
						AnswerIndex: 1,
					},
				},
			},
		},
		"backend": {
			{
				Order:       1,
				Title:       "Programming & Git",
				Description: "Language basics and version control.",
				Videos: []string{
					"https://www.youtube.com/watch?v=SWYqp7iY_Tc",
				},
				Questions: []models.Question{
					{
						Prompt:      "git commit does?",
						Options:     []string{"Send to remote", "Save snapshot", "Create branch"},
						AnswerIndex: 1,
					},
				},
			},
			{
				Order:       2,
				Title:       "Node.js & Express",
				Description: "APIs, routing, middleware.",
				Videos: []string{
					"https://www.youtube.com/watch?v=L72fhGm1tfE",
				},
				Questions: []models.Question{
					{
						Prompt:      "Express is?",
						Options:     []string{"DB", "Framework", "Language"},
						AnswerIndex: 1,
					},
				},
			},
			{
				Order:       3,
				Title:       "Databases",
				Description: "SQL/NoSQL basics.",
				Videos: []string{
					"https://www.youtube.com/watch?v=E-1xI85Zog8",
				},
				Questions: []models.Question{
					{
						Prompt:      "NoSQL example?",
						Options:     []string{"MongoDB", "MySQL", "PostgreSQL"},
						AnswerIndex: 0,
					},
				},
			},
		},
		"ai-ml": {
			{
				Order:       1,
				Title:       "Python & Numpy",
				Description: "Python essentials, arrays.",
				Videos: []string{
					"https://www.youtube.com/watch?v=_uQrJ0TkZlc",
				},
				Questions: []models.Question{
					{
						Prompt:      "Numpy is used for?",
						Options:     []string{"Web", "Arrays & math", "OS"},
						AnswerIndex: 1,
					},
				},
			},
			{
				Order:       2,
				Title:       "Pandas & Data",
				Description: "Dataframes, cleaning.",
				Videos: []string{
					"https://www.youtube.com/watch?v=vmEHCJofslg",
				},
				Questions: []models.Question{
					{
						Prompt:      "Pandas DataFrame is?",
						Options:     []string{"2D table", "1D list", "3D cube"},
						AnswerIndex: 0,
					},
				},
			},
			{
				Order:       3,
				Title:       "ML Basics",
				Description: "Supervised vs unsupervised.",
				Videos: []string{
					"https://www.youtube.com/watch?v=Gv9_4yMHFhI",
				},
				Questions: []models.Question{
					{
						Prompt:      "Supervised uses?",
						Options:     []string{"Labels", "No data", "Only images"},
						AnswerIndex: 0,
					},
				},
			},
		},
	}
}
