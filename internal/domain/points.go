package domain

// ActionKey identifies one point-earning action in the participation catalog.
type ActionKey string

const (
	ActionClick          ActionKey = "click"
	ActionMenuOrButton   ActionKey = "menu_or_button"
	ActionKnowledgeView  ActionKey = "knowledge_view"
	ActionUseCaseView    ActionKey = "usecase_view"
	ActionForumPost      ActionKey = "forum_post"
	ActionTechTipView    ActionKey = "tech_tip_view"
	ActionBacklogVote    ActionKey = "backlog_vote"
	ActionSelfAssessment ActionKey = "self_assessment"
	ActionQuizComplete   ActionKey = "quiz_complete"
)

// PointAction is one entry of the static participation catalog. The catalog
// is documentation-grade configuration: end users never mutate it.
type PointAction struct {
	Key         ActionKey `json:"key"`
	Points      int       `json:"points"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
}

// PointCatalog maps every known action to its fixed point value.
var PointCatalog = map[ActionKey]PointAction{
	ActionClick: {
		Key: ActionClick, Points: 1, Label: "Click",
		Description: "Any repeat interaction with a tracked element.",
	},
	ActionMenuOrButton: {
		Key: ActionMenuOrButton, Points: 5, Label: "First discovery",
		Description: "First interaction with a navigation menu or button this session.",
	},
	ActionKnowledgeView: {
		Key: ActionKnowledgeView, Points: 3, Label: "Knowledge viewed",
		Description: "Opened a training content page.",
	},
	ActionUseCaseView: {
		Key: ActionUseCaseView, Points: 3, Label: "Use case viewed",
		Description: "Opened a community use case.",
	},
	ActionForumPost: {
		Key: ActionForumPost, Points: 10, Label: "Forum post",
		Description: "Posted a message or reply in the forum.",
	},
	ActionTechTipView: {
		Key: ActionTechTipView, Points: 3, Label: "Tech tip viewed",
		Description: "Opened a tech tip.",
	},
	ActionBacklogVote: {
		Key: ActionBacklogVote, Points: 5, Label: "Backlog vote",
		Description: "Voted on a backlog idea.",
	},
	ActionSelfAssessment: {
		Key: ActionSelfAssessment, Points: 10, Label: "Self-assessment",
		Description: "Declared a starting level during onboarding.",
	},
	ActionQuizComplete: {
		Key: ActionQuizComplete, Points: 20, Label: "Quiz completed",
		Description: "Finished a level quiz, pass or fail.",
	},
}

// LookupAction resolves an action key against the catalog.
func LookupAction(key ActionKey) (PointAction, bool) {
	action, ok := PointCatalog[key]
	return action, ok
}
