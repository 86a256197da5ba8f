// Package live fans board events out to websocket subscribers.
package live

// Event types published on a board.
const (
	TypeIdeaCreated   = "idea_created"
	TypeIdeaDeleted   = "idea_deleted"
	TypeIdeaUpvoted   = "idea_upvoted"
	TypeIdeaUnvoted   = "idea_unvoted"
	TypeIdeaFlagged   = "idea_flagged"
	TypeIdeaUnflagged = "idea_unflagged"
	TypeIdeaExplained = "idea_explained"
	TypeBoardRenamed  = "board_renamed"
	TypeBoardDeleted  = "board_deleted"
)

type Event struct {
	Type  string `json:"type"`
	Board string `json:"board"`
	Data  any    `json:"data,omitempty"`
}
