package domain

const (
	// MinLevel and MaxLevel bound the validated competency tiers.
	// Level 0 means "not yet assessed" and triggers the self-assessment gate.
	MinLevel = 1
	MaxLevel = 20
)

// LevelDescriptor documents one competency tier for level pickers and the
// self-assessment gate's hover previews.
type LevelDescriptor struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LevelCatalog is the static catalog of the 20 competency tiers.
var LevelCatalog = []LevelDescriptor{
	{1, "Curious", "Has heard of AI tools and tried one at least once."},
	{2, "Explorer", "Uses a chatbot occasionally for simple questions."},
	{3, "Prompter", "Writes multi-sentence prompts and iterates on answers."},
	{4, "Assistant user", "Uses AI weekly for writing or summarizing tasks."},
	{5, "Structured prompter", "Gives role, context and format instructions."},
	{6, "Critical reader", "Spots hallucinations and verifies AI output."},
	{7, "Daily user", "AI is part of the daily workflow for several tasks."},
	{8, "Tool picker", "Chooses between tools depending on the task."},
	{9, "Data-aware", "Knows what data may and may not be shared with AI."},
	{10, "Workflow builder", "Chains prompts into repeatable workflows."},
	{11, "Template author", "Writes prompt templates colleagues reuse."},
	{12, "Automation user", "Connects AI to documents, mail or spreadsheets."},
	{13, "Evaluator", "Compares models and measures output quality."},
	{14, "Coach", "Trains colleagues on effective AI usage."},
	{15, "Process designer", "Redesigns team processes around AI assistance."},
	{16, "Integrator", "Uses APIs or scripts to embed AI in internal tools."},
	{17, "Governance-aware", "Applies company AI policy and risk assessment."},
	{18, "Champion", "Leads AI adoption initiatives across departments."},
	{19, "Strategist", "Shapes the organisation's AI roadmap."},
	{20, "Expert", "Reference point for AI practice in the company."},
}

// IsValidLevel reports whether level is a validated competency tier.
func IsValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// IsValidSelfAssessment additionally allows the explicit "still level 0" choice.
func IsValidSelfAssessment(level int) bool {
	return level == 0 || IsValidLevel(level)
}
