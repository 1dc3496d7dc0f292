package diagnosis

import "coachdiag/internal/model"

// Archetype ids of the default catalog
const (
	TypeExplorer   = "explorer"
	TypeStrategist = "strategist"
	TypeAchiever   = "achiever"
	TypeChallenger = "challenger"
	TypePartner    = "partner"
	TypePragmatist = "pragmatist"
)

func defaultTypes() []model.DiagnosisType {
	return []model.DiagnosisType{
		{
			ID:             TypeExplorer,
			DisplayName:    "Explorer",
			ScientificName: "Intrinsic inquirer",
			Description:    "Driven by curiosity, discovery and the joy of understanding.",
			Characteristics: []string{
				"Asks why before asking how",
				"Loses track of time in topics they love",
			},
			Strengths:             []string{"Deep understanding", "Self-starting", "Creative connections"},
			Weaknesses:            []string{"Neglects subjects that feel dull", "Can drift from the syllabus"},
			RecommendedStrategies: []string{"Start each topic from an open question", "Tie exam material back to an interest"},
			CoachingStyle: model.CoachingStyle{
				CommunicationStyle: "intellectual guide",
				LanguagePatterns:   []string{"What do you think is happening here?", "Here is an interesting angle"},
				MotivationApproach: "intrinsic",
				LearningStyle:      "discovery-based",
			},
			Formula: model.ScoreWeights{
				DimIntrinsicMotivation: 1.5,
				DimOpenness:            1.3,
				DimAutonomy:            1.2,
				DimDeepExploration:     1.1,
			},
		},
		{
			ID:             TypeStrategist,
			DisplayName:    "Strategist",
			ScientificName: "Goal-oriented planner",
			Description:    "Values planning, logic and reaching set goals.",
			Characteristics: []string{
				"Works back from a target date",
				"Tracks progress against a plan",
			},
			Strengths:             []string{"Consistency", "Time management", "Clear priorities"},
			Weaknesses:            []string{"Thrown off when plans break", "Can over-plan"},
			RecommendedStrategies: []string{"Weekly milestones with buffers", "Review the plan, not just the content"},
			CoachingStyle: model.CoachingStyle{
				CommunicationStyle: "logical partner",
				LanguagePatterns:   []string{"Let's break this into steps", "Here is where you are against the goal"},
				MotivationApproach: "goal-oriented",
				LearningStyle:      "structured",
			},
			Formula: model.ScoreWeights{
				DimIdentifiedRegulation: 1.5,
				DimConscientiousness:    1.4,
				DimAutonomy:             1.2,
				DimCompetence:           1.1,
			},
		},
		{
			ID:             TypeAchiever,
			DisplayName:    "Achiever",
			ScientificName: "Recognition-driven striver",
			Description:    "Puts in the effort and wants that effort to be seen.",
			Characteristics: []string{
				"Works hardest when someone is watching",
				"Remembers praise for a long time",
			},
			Strengths:             []string{"Perseverance", "Responsiveness to feedback"},
			Weaknesses:            []string{"Sensitive to criticism", "Motivation dips without recognition"},
			RecommendedStrategies: []string{"Make progress visible", "Celebrate small wins"},
			CoachingStyle: model.CoachingStyle{
				CommunicationStyle: "encouraging coach",
				LanguagePatterns:   []string{"You have really improved here", "Your effort is paying off"},
				MotivationApproach: "recognition-based",
				LearningStyle:      "collaborative",
			},
			Formula: model.ScoreWeights{
				DimIntrojectedRegulation: 1.5,
				DimRelatednessNeed:       1.3,
				DimConscientiousness:     1.2,
				DimCollaborativeSupport:  1.1,
			},
		},
		{
			ID:             TypeChallenger,
			DisplayName:    "Challenger",
			ScientificName: "Competitive challenger",
			Description:    "Chases competition, speed and winning.",
			Characteristics: []string{
				"Turns practice into a race",
				"Energised by rankings",
			},
			Strengths:             []string{"Drive under pressure", "Fast execution"},
			Weaknesses:            []string{"Skips fundamentals", "Discouraged by losses"},
			RecommendedStrategies: []string{"Timed drills with personal bests", "Friendly rivalries"},
			CoachingStyle: model.CoachingStyle{
				CommunicationStyle: "competitive partner",
				LanguagePatterns:   []string{"Can you beat your last time?", "Here is the next level"},
				MotivationApproach: "competition-based",
				LearningStyle:      "challenge-driven",
			},
			Formula: model.ScoreWeights{
				DimExternalRegulation:     1.3,
				DimExtraversion:           1.4,
				DimCompetitiveOrientation: 1.5,
				DimEfficientProcessing:    1.1,
			},
		},
		{
			ID:             TypePartner,
			DisplayName:    "Partner",
			ScientificName: "Relationship-oriented collaborator",
			Description:    "Values peers, mutual support and a sense of safety.",
			Characteristics: []string{
				"Studies best alongside others",
				"Explains things to friends to learn them",
			},
			Strengths:             []string{"Teamwork", "Empathy", "Learning by teaching"},
			Weaknesses:            []string{"Struggles studying alone", "Easily swayed by the group"},
			RecommendedStrategies: []string{"Study groups with clear roles", "Teach back what you learned"},
			CoachingStyle: model.CoachingStyle{
				CommunicationStyle: "empathetic mentor",
				LanguagePatterns:   []string{"We can work through this together", "How are you feeling about it?"},
				MotivationApproach: "relationship-based",
				LearningStyle:      "supportive",
			},
			Formula: model.ScoreWeights{
				DimRelatednessNeed:        1.5,
				DimAgreeableness:          1.3,
				DimCooperativeOrientation: 1.4,
				DimCollaborativeSupport:   1.2,
			},
		},
		{
			ID:             TypePragmatist,
			DisplayName:    "Pragmatist",
			ScientificName: "Efficiency-minded realist",
			Description:    "Pursues practicality, efficiency and results.",
			Characteristics: []string{
				"Asks whether it will be tested",
				"Prefers proven methods",
			},
			Strengths:             []string{"Efficiency", "Focus on outcomes"},
			Weaknesses:            []string{"Shallow understanding", "Low tolerance for open-ended tasks"},
			RecommendedStrategies: []string{"Past-paper driven study", "Short spaced repetition blocks"},
			CoachingStyle: model.CoachingStyle{
				CommunicationStyle: "practical consultant",
				LanguagePatterns:   []string{"Here is the fastest route", "This is what matters for the exam"},
				MotivationApproach: "result-oriented",
				LearningStyle:      "practical",
			},
			Formula: model.ScoreWeights{
				DimExternalRegulation:  1.2,
				DimConscientiousness:   1.1,
				DimEfficientProcessing: 1.4,
				DimDirectiveSupport:    1.3,
			},
		},
	}
}
