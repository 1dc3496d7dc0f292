package diagnosis

import "coachdiag/internal/model"

// Score dimensions used by the default catalog
const (
	DimIntrinsicMotivation    = "intrinsic_motivation"
	DimIdentifiedRegulation   = "identified_regulation"
	DimIntrojectedRegulation  = "introjected_regulation"
	DimExternalRegulation     = "external_regulation"
	DimOpenness               = "openness"
	DimConscientiousness      = "conscientiousness"
	DimExtraversion           = "extraversion"
	DimAgreeableness          = "agreeableness"
	DimNeuroticism            = "neuroticism"
	DimAutonomy               = "autonomy"
	DimCompetence             = "competence"
	DimRelatednessNeed        = "relatedness_need"
	DimDeepExploration        = "deep_exploration"
	DimBroadExploration       = "broad_exploration"
	DimCompetitiveOrientation = "competitive_orientation"
	DimCooperativeOrientation = "cooperative_orientation"
	DimCollaborativeSupport   = "collaborative_support"
	DimDirectiveSupport       = "directive_support"
	DimEfficientProcessing    = "efficient_processing"
	DimDeepProcessing         = "deep_processing"
)

// DefaultCatalog returns the production question bank: six core questions,
// four follow-ups and six archetypes. Each call builds fresh values.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultCoreQuestions(), defaultFollowupQuestions(), defaultTypes())
}

func options(a, b, c, d string) []model.Option {
	return []model.Option{
		{Label: model.AnswerA, Text: a},
		{Label: model.AnswerB, Text: b},
		{Label: model.AnswerC, Text: c},
		{Label: model.AnswerD, Text: d},
	}
}

func defaultCoreQuestions() []model.Question {
	return []model.Question{
		{
			ID:    "motivation_source",
			Kind:  model.QuestionKindCore,
			Text:  "What is the biggest reason you study?",
			Order: 1,
			Options: options(
				"Learning new things is simply fun",
				"I need it to reach my future goals",
				"I want good grades so people recognise me",
				"Bad grades get me into trouble",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimIntrinsicMotivation: 3, DimOpenness: 1},
				model.AnswerB: {DimIdentifiedRegulation: 3, DimConscientiousness: 1},
				model.AnswerC: {DimIntrojectedRegulation: 3, DimRelatednessNeed: 1},
				model.AnswerD: {DimExternalRegulation: 3, DimNeuroticism: 1},
			},
		},
		{
			ID:    "challenge_attitude",
			Kind:  model.QuestionKindCore,
			Text:  "How do you feel when you hit a hard problem?",
			Order: 2,
			Options: options(
				"Excited, I want to crack it",
				"I make a plan and work through it steadily",
				"Anxious, but I know I have to try",
				"Honestly, I would rather avoid it",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimOpenness: 3, DimIntrinsicMotivation: 2, DimCompetence: 2},
				model.AnswerB: {DimConscientiousness: 3, DimIdentifiedRegulation: 2},
				model.AnswerC: {DimIntrojectedRegulation: 2, DimNeuroticism: 2},
				model.AnswerD: {DimNeuroticism: 3, DimCompetence: -2},
			},
		},
		{
			ID:    "learning_environment",
			Kind:  model.QuestionKindCore,
			Text:  "Where do you concentrate best?",
			Order: 3,
			Options: options(
				"Somewhere quiet where I can work alone, like a library",
				"With friends, teaching each other",
				"At home with family nearby",
				"Somewhere with a little background bustle, like a cafe",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimExtraversion: -2, DimAutonomy: 2},
				model.AnswerB: {DimExtraversion: 3, DimAgreeableness: 3, DimRelatednessNeed: 3},
				model.AnswerC: {DimRelatednessNeed: 3, DimNeuroticism: 1},
				model.AnswerD: {DimExtraversion: 1, DimOpenness: 1},
			},
		},
		{
			ID:    "planning_style",
			Kind:  model.QuestionKindCore,
			Text:  "How do you prepare for a test?",
			Order: 4,
			Options: options(
				"A detailed plan, followed to the letter",
				"A rough goal, adjusted to how I feel each day",
				"I start solving problems and figure it out from there",
				"I cram right before",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimConscientiousness: 3, DimIdentifiedRegulation: 2},
				model.AnswerB: {DimConscientiousness: 1, DimOpenness: 1},
				model.AnswerC: {DimOpenness: 2, DimConscientiousness: -1},
				model.AnswerD: {DimConscientiousness: -2, DimExternalRegulation: 2},
			},
		},
		{
			ID:    "learning_depth",
			Kind:  model.QuestionKindCore,
			Text:  "What catches your interest in class?",
			Order: 5,
			Options: options(
				"Why things work the way they do",
				"How I can actually use it",
				"How to memorise it efficiently",
				"Whether it will be on the test",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimOpenness: 3, DimIntrinsicMotivation: 2},
				model.AnswerB: {DimIdentifiedRegulation: 2, DimOpenness: 1},
				model.AnswerC: {DimConscientiousness: 2, DimExternalRegulation: 1},
				model.AnswerD: {DimExternalRegulation: 3},
			},
		},
		{
			ID:    "achievement_source",
			Kind:  model.QuestionKindCore,
			Text:  "What made you happiest in your studies recently?",
			Order: 6,
			Options: options(
				"The moment a new idea clicked",
				"Sticking to the plan I made",
				"Being praised by a teacher or parent",
				"Getting a good test score",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimIntrinsicMotivation: 3, DimOpenness: 2, DimCompetence: 2},
				model.AnswerB: {DimConscientiousness: 3, DimIdentifiedRegulation: 2, DimCompetence: 1},
				model.AnswerC: {DimIntrojectedRegulation: 3, DimRelatednessNeed: 2},
				model.AnswerD: {DimExternalRegulation: 3, DimCompetence: 1},
			},
		},
	}
}

func defaultFollowupQuestions() []model.Question {
	return []model.Question{
		{
			ID:    "exploration_depth",
			Kind:  model.QuestionKindFollowUp,
			Text:  "When you look into a subject that interests you...",
			Order: 1,
			Options: options(
				"I want to dig deep into one field",
				"I want to find links between many fields",
				"I get the big picture first, then go into detail",
				"I learn best through real examples",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimDeepExploration: 2, DimConscientiousness: 1},
				model.AnswerB: {DimBroadExploration: 2, DimOpenness: 1},
				model.AnswerC: {DimDeepExploration: 1, DimBroadExploration: 1},
				model.AnswerD: {DimIdentifiedRegulation: 2, DimOpenness: 1},
			},
			Condition: &model.Condition{Ranges: map[string]model.Range{
				DimIntrinsicMotivation: model.Min(4),
				DimOpenness:            model.Min(4),
			}},
		},
		{
			ID:    "competition_cooperation",
			Kind:  model.QuestionKindFollowUp,
			Text:  "What matters most with your classmates?",
			Order: 2,
			Options: options(
				"Competing so we push each other",
				"Cooperating so we grow together",
				"Playing to each other's strengths",
				"Sharing information to study efficiently",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimCompetitiveOrientation: 3, DimExtraversion: 1},
				model.AnswerB: {DimCooperativeOrientation: 3, DimAgreeableness: 1},
				model.AnswerC: {DimCooperativeOrientation: 2, DimCollaborativeSupport: 1},
				model.AnswerD: {DimEfficientProcessing: 2, DimCollaborativeSupport: 1},
			},
			Condition: &model.Condition{Ranges: map[string]model.Range{
				DimExternalRegulation: model.Min(3),
				DimExtraversion:       model.Min(2),
			}},
		},
		{
			ID:    "support_preference",
			Kind:  model.QuestionKindFollowUp,
			Text:  "When you are stuck, what kind of support do you want?",
			Order: 3,
			Options: options(
				"Someone to work out a solution with me",
				"Concrete step-by-step instructions",
				"Words of encouragement",
				"Someone quietly keeping an eye on me",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimCollaborativeSupport: 2, DimRelatednessNeed: 1},
				model.AnswerB: {DimDirectiveSupport: 2, DimExternalRegulation: 1},
				model.AnswerC: {DimRelatednessNeed: 2, DimIntrojectedRegulation: 1},
				model.AnswerD: {DimAutonomy: 2, DimRelatednessNeed: 1},
			},
			Condition: &model.Condition{Ranges: map[string]model.Range{
				DimNeuroticism:     model.Min(2),
				DimRelatednessNeed: model.Min(3),
			}},
		},
		{
			ID:    "learning_pace",
			Kind:  model.QuestionKindFollowUp,
			Text:  "Which study pace suits you?",
			Order: 4,
			Options: options(
				"Slow and steady, thinking things through",
				"Brisk, moving quickly from one thing to the next",
				"All at once whenever I can focus",
				"A little every day",
			),
			ScoringWeights: map[model.Answer]model.ScoreWeights{
				model.AnswerA: {DimDeepProcessing: 2, DimConscientiousness: 1},
				model.AnswerB: {DimEfficientProcessing: 2, DimExtraversion: 1},
				model.AnswerC: {DimCompetitiveOrientation: 1, DimEfficientProcessing: 1},
				model.AnswerD: {DimConscientiousness: 2, DimDeepProcessing: 1},
			},
			// only worth asking when the top two types are within 3 points
			Condition: &model.Condition{ScoreGap: &model.GapLimit{Max: 3}},
		},
	}
}
